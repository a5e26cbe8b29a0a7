package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusbook/models"
)

// fakeCommitmentRepo serves canned commitments and counts fetches.
type fakeCommitmentRepo struct {
	bookings   []models.Booking
	events     []models.Event
	err        error
	fetchCalls int
}

func (f *fakeCommitmentRepo) FetchBookings(ctx context.Context, date string, scope models.ResourceScope) ([]models.Booking, error) {
	f.fetchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func (f *fakeCommitmentRepo) FetchEvents(ctx context.Context, date string, scope models.ResourceScope) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

// newTestEngine fixes "now" to Sunday 2026-03-01 noon, so the reference
// Wednesday 2026-03-04 is a future day inside the booking window.
func newTestEngine(repo *fakeCommitmentRepo) *DefaultAvailabilityEngine {
	return &DefaultAvailabilityEngine{
		Repo:  repo,
		Cache: NewBusyCache(),
		Rules: DefaultRules(),
		Now: func() time.Time {
			return time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
		},
	}
}

func TestGetAvailableSlots_FreeDayFullGrid(t *testing.T) {
	engine := newTestEngine(&fakeCommitmentRepo{})

	slots, err := engine.GetAvailableSlots(context.Background(), "2026-03-04", 30, models.AllResources(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 16 {
		t.Fatalf("expected all 16 base slots on a free day, got %d: %v", len(slots), slots)
	}
	if slots[0] != "10:00" || slots[len(slots)-1] != "17:30" {
		t.Fatalf("unexpected grid bounds: %v", slots)
	}
}

func TestGetAvailableSlots_SixtyMinutesDropsLastStart(t *testing.T) {
	engine := newTestEngine(&fakeCommitmentRepo{})

	slots, err := engine.GetAvailableSlots(context.Background(), "2026-03-04", 60, models.AllResources(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 17:30 has no free 18:00 successor on the grid.
	if len(slots) != 15 {
		t.Fatalf("expected 15 one-hour starts, got %d: %v", len(slots), slots)
	}
	if slots[len(slots)-1] != "17:00" {
		t.Fatalf("expected last one-hour start 17:00, got %s", slots[len(slots)-1])
	}
}

func TestGetAvailableSlots_BookingBlocksAndBreaksComposition(t *testing.T) {
	repo := &fakeCommitmentRepo{
		bookings: []models.Booking{{
			ID:            1,
			WorkspaceID:   1,
			Status:        models.StatusApproved,
			DateScheduled: "2026-03-04",
			StartTime:     "11:00",
			EndTime:       "11:30",
		}},
	}
	engine := newTestEngine(repo)

	slots, err := engine.GetAvailableSlots(context.Background(), "2026-03-04", 60, models.AllResources(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range slots {
		// 11:00 itself is busy; 10:30 would run into it.
		if s == "11:00" || s == "10:30" {
			t.Fatalf("slot %s must not be offered around a busy 11:00-11:30, got %v", s, slots)
		}
	}
	found := false
	for _, s := range slots {
		if s == "11:30" {
			found = true
		}
	}
	if !found {
		t.Fatalf("11:30 should be free once the booking ends, got %v", slots)
	}
}

func TestGetAvailableSlots_ReleasedHoldsDoNotBlock(t *testing.T) {
	repo := &fakeCommitmentRepo{
		bookings: []models.Booking{
			{ID: 1, Status: models.StatusRejected, DateScheduled: "2026-03-04", StartTime: "10:00", EndTime: "10:30"},
			{ID: 2, Status: models.StatusNoShow, DateScheduled: "2026-03-04", StartTime: "11:00", EndTime: "11:30"},
			{ID: 3, Status: models.StatusCancelled, DateScheduled: "2026-03-04", StartTime: "12:00", EndTime: "12:30"},
		},
	}
	engine := newTestEngine(repo)

	slots, err := engine.GetAvailableSlots(context.Background(), "2026-03-04", 30, models.AllResources(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("released holds must not block, got %d slots: %v", len(slots), slots)
	}
}

func TestGetAvailableSlots_InvalidInputs(t *testing.T) {
	engine := newTestEngine(&fakeCommitmentRepo{})
	ctx := context.Background()

	if _, err := engine.GetAvailableSlots(ctx, "04/03/2026", 30, models.AllResources(), false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed date, got %v", err)
	}
	if _, err := engine.GetAvailableSlots(ctx, "2026-03-04", 45, models.AllResources(), false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-multiple duration, got %v", err)
	}
	if _, err := engine.GetAvailableSlots(ctx, "2026-03-04", 30, models.ResourceScope{}, false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty scope, got %v", err)
	}
}

func TestGetAvailableSlots_OutsideBookingWindow(t *testing.T) {
	engine := newTestEngine(&fakeCommitmentRepo{})
	ctx := context.Background()

	if _, err := engine.GetAvailableSlots(ctx, "2026-02-27", 30, models.AllResources(), false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a past date, got %v", err)
	}
	// 91 days past the fixed "today" of 2026-03-01.
	if _, err := engine.GetAvailableSlots(ctx, "2026-06-01", 30, models.AllResources(), false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput past the booking window, got %v", err)
	}
}

func TestGetAvailableSlots_ClosedWeekdayShortCircuits(t *testing.T) {
	repo := &fakeCommitmentRepo{}
	engine := newTestEngine(repo)

	// 2026-03-07 is a Saturday.
	slots, err := engine.GetAvailableSlots(context.Background(), "2026-03-07", 30, models.AllResources(), false)
	if err != nil {
		t.Fatalf("closed day is not an error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %v", slots)
	}
	if repo.fetchCalls != 0 {
		t.Fatalf("closed day must not hit the commitment store, got %d fetches", repo.fetchCalls)
	}
}

func TestGetAvailableSlots_RepeatQueriesHitCache(t *testing.T) {
	repo := &fakeCommitmentRepo{}
	engine := newTestEngine(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := engine.GetAvailableSlots(ctx, "2026-03-04", 30, models.AllResources(), false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if repo.fetchCalls != 1 {
		t.Fatalf("expected one upstream fetch across repeat queries, got %d", repo.fetchCalls)
	}

	if _, err := engine.GetAvailableSlots(ctx, "2026-03-04", 30, models.AllResources(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.fetchCalls != 2 {
		t.Fatalf("forceRefresh must refetch, got %d fetches", repo.fetchCalls)
	}
}

func TestGetAvailableSlots_UpstreamFailure(t *testing.T) {
	repo := &fakeCommitmentRepo{err: errors.New("primary unreachable")}
	engine := newTestEngine(repo)

	_, err := engine.GetAvailableSlots(context.Background(), "2026-03-04", 30, models.AllResources(), false)
	if !errors.Is(err, ErrUpstreamFetchFailed) {
		t.Fatalf("expected ErrUpstreamFetchFailed, got %v", err)
	}
}

func TestGetAvailableSlots_PastSlotsDroppedToday(t *testing.T) {
	engine := newTestEngine(&fakeCommitmentRepo{})
	engine.Now = func() time.Time {
		return time.Date(2026, 3, 4, 10, 15, 0, 0, time.Local)
	}

	slots, err := engine.GetAvailableSlots(context.Background(), "2026-03-04", 30, models.AllResources(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) == 0 || slots[0] != "10:30" {
		t.Fatalf("expected the day to start at 10:30 after 10:15, got %v", slots)
	}
	for _, s := range slots {
		if s == "10:00" {
			t.Fatalf("10:00 already started and must be dropped, got %v", slots)
		}
	}
}

func TestRevalidateBeforeCommit_SlotStillFree(t *testing.T) {
	repo := &fakeCommitmentRepo{}
	engine := newTestEngine(repo)

	res, err := engine.RevalidateBeforeCommit(context.Background(), "2026-03-04", 30, models.AllResources(), "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK {
		t.Fatalf("expected the slot to survive revalidation, fresh: %v", res.FreshSlots)
	}
	if repo.fetchCalls != 1 {
		t.Fatalf("revalidation must force a fresh fetch, got %d", repo.fetchCalls)
	}
}

func TestRevalidateBeforeCommit_SlotLostIsNotAnError(t *testing.T) {
	repo := &fakeCommitmentRepo{}
	engine := newTestEngine(repo)
	ctx := context.Background()

	// Warm the cache with a free day, then let someone take 10:00 upstream.
	if _, err := engine.GetAvailableSlots(ctx, "2026-03-04", 30, models.AllResources(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.bookings = []models.Booking{{
		ID:            7,
		Status:        models.StatusScheduled,
		DateScheduled: "2026-03-04",
		StartTime:     "10:00",
		EndTime:       "10:30",
	}}

	res, err := engine.RevalidateBeforeCommit(ctx, "2026-03-04", 30, models.AllResources(), "10:00")
	if err != nil {
		t.Fatalf("a lost slot must not surface as an error: %v", err)
	}
	if res.OK {
		t.Fatal("expected the taken slot to fail revalidation")
	}
	for _, s := range res.FreshSlots {
		if s == "10:00" {
			t.Fatalf("fresh slots must not contain the taken slot, got %v", res.FreshSlots)
		}
	}
	if len(res.FreshSlots) != 15 {
		t.Fatalf("expected 15 remaining fresh slots, got %d", len(res.FreshSlots))
	}
}

func TestRevalidateBeforeCommit_RejectsMalformedSlot(t *testing.T) {
	engine := newTestEngine(&fakeCommitmentRepo{})

	_, err := engine.RevalidateBeforeCommit(context.Background(), "2026-03-04", 30, models.AllResources(), "10h00")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed slot, got %v", err)
	}
}
