package availability

import (
	"context"
	"time"

	commitmentRepo "campusbook/database/repository/commitment"
	"campusbook/models"
	"campusbook/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityEngine is the production engine: cache-backed busy
// aggregation over the commitment store, base-grid filtering, duration
// composition.
type DefaultAvailabilityEngine struct {
	Repo  commitmentRepo.CommitmentRepository
	Cache *BusyCache
	Rules Rules

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (e *DefaultAvailabilityEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *DefaultAvailabilityEngine) GetAvailableSlots(ctx context.Context, date string, durationMinutes int, scope models.ResourceScope, forceRefresh bool) ([]string, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, invalidInputf("malformed date %q, want 2006-01-02", date)
	}
	if durationMinutes <= 0 || durationMinutes%e.Rules.BaseUnitMinutes != 0 {
		return nil, invalidInputf("duration %d is not a positive multiple of the %d-minute base unit", durationMinutes, e.Rules.BaseUnitMinutes)
	}
	if scope.IsEmpty() {
		return nil, invalidInputf("scope must be all resources or a non-empty workspace set")
	}

	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) || day.After(today.AddDate(0, 0, e.Rules.BookingWindowDays)) {
		return nil, invalidInputf("date %s is outside the %d-day booking window", date, e.Rules.BookingWindowDays)
	}

	// Closed-day policy lives here, never in the slot generator.
	if e.Rules.isClosed(day.Weekday()) {
		return []string{}, nil
	}

	busy, err := e.Cache.GetOrFetch(ctx, date, scope, forceRefresh, func(ctx context.Context) ([]models.BusyInterval, error) {
		return e.fetchBusy(ctx, day, date, scope)
	})
	if err != nil {
		return nil, err
	}

	base := GenerateBaseSlots(day, e.Rules.FirstStartMinute, e.Rules.LastStartMinute, e.Rules.BaseUnitMinutes)
	free := FilterSlots(base, busy, e.Rules.BaseUnitMinutes, now, true)

	labels := make([]string, len(free))
	for i, slot := range free {
		labels[i] = FormatSlot(slot)
	}
	return ComposeForDuration(labels, durationMinutes, e.Rules.BaseUnitMinutes)
}

func (e *DefaultAvailabilityEngine) RevalidateBeforeCommit(ctx context.Context, date string, durationMinutes int, scope models.ResourceScope, chosenSlot string) (*RevalidationResult, error) {
	if _, err := time.Parse("15:04", chosenSlot); err != nil {
		return nil, invalidInputf("malformed slot %q, want HH:mm", chosenSlot)
	}

	fresh, err := e.GetAvailableSlots(ctx, date, durationMinutes, scope, true)
	if err != nil {
		return nil, err
	}

	ok := false
	for _, s := range fresh {
		if s == chosenSlot {
			ok = true
			break
		}
	}
	if !ok {
		utils.GetLogger().Info("chosen slot lost between query and commit",
			zap.String("date", date), zap.String("slot", chosenSlot),
			zap.String("scope", scope.Signature()))
	}
	return &RevalidationResult{OK: ok, FreshSlots: fresh}, nil
}

// fetchBusy pulls fresh commitments and normalizes them into busy intervals.
// A wholesale fetch failure is fatal to the call; record-level problems are
// handled inside BuildBusyIntervals.
func (e *DefaultAvailabilityEngine) fetchBusy(ctx context.Context, day time.Time, date string, scope models.ResourceScope) ([]models.BusyInterval, error) {
	bookings, err := e.Repo.FetchBookings(ctx, date, scope)
	if err != nil {
		return nil, upstreamFetchf("bookings for %s: %v", date, err)
	}
	events, err := e.Repo.FetchEvents(ctx, date, scope)
	if err != nil {
		return nil, upstreamFetchf("events for %s: %v", date, err)
	}
	return BuildBusyIntervals(day, bookings, events, e.Rules.nonBlockingSet()), nil
}
