package calendarRepo

import (
	"context"

	"enersense/models"
)

// BookingRepository is the consultation record store: an append-only table
// of booking rows. Rows are never rewritten or deleted; per-date occupancy
// is reconstructed by scanning.
type BookingRepository interface {
	// Append writes exactly one new booking row. The write is all-or-nothing:
	// on error no partial row is left behind.
	Append(ctx context.Context, booking models.Booking) error

	// ListByDate returns every booking row recorded for the given date, in
	// store order. A date with no bookings yields an empty slice.
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
}
