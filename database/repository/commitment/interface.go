package commitmentRepo

import (
	"context"

	"campusbook/models"
)

// CommitmentRepository reads the external commitment store: the bookings and
// events already holding workspaces. The store is owned elsewhere; this
// module never writes to it.
type CommitmentRepository interface {
	// FetchBookings returns booking records scheduled on the given
	// "2006-01-02" date, restricted to the scope's workspaces. Status
	// filtering is the caller's concern.
	FetchBookings(ctx context.Context, date string, scope models.ResourceScope) ([]models.Booking, error)

	// FetchEvents returns event records overlapping the given date,
	// restricted to the scope's workspaces.
	FetchEvents(ctx context.Context, date string, scope models.ResourceScope) ([]models.Event, error)
}
