package availability

import (
	"context"

	"campusbook/models"
)

// AvailabilityEngine computes bookable start times and re-checks them right
// before a reservation is committed.
type AvailabilityEngine interface {
	// GetAvailableSlots returns the ordered "HH:mm" start times free for a
	// booking of durationMinutes on the given "2006-01-02" date within the
	// scope. forceRefresh bypasses the day's cached busy intervals.
	GetAvailableSlots(ctx context.Context, date string, durationMinutes int, scope models.ResourceScope, forceRefresh bool) ([]string, error)

	// RevalidateBeforeCommit re-fetches fresh commitments and reports
	// whether chosenSlot is still free. A lost slot is a normal outcome,
	// not an error: the caller re-prompts with FreshSlots.
	RevalidateBeforeCommit(ctx context.Context, date string, durationMinutes int, scope models.ResourceScope, chosenSlot string) (*RevalidationResult, error)
}

// RevalidationResult is the outcome of a pre-commit availability check.
type RevalidationResult struct {
	OK         bool     `json:"ok"`
	FreshSlots []string `json:"freshSlots"`
}
