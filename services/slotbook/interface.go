package slotbook

import (
	"context"

	"enersense/models"
)

// SlotBookService owns the set of booked consultation slots. It enforces
// the one-booking-per-slot invariant and answers availability queries.
// Results are structured; user-facing wording is the caller's job.
type SlotBookService interface {
	// Schedule books the given slot. It fails with *SlotConflictError when
	// the slot is taken, *MalformedDateError / *InvalidTimeError on bad
	// input, and performs no write in any failure case.
	Schedule(ctx context.Context, date, timeLabel, clientName, topic string) (*models.Booking, error)

	// ListAvailable returns the free hourly labels for the date in
	// canonical ascending order. A fully booked day yields an empty slice.
	ListAvailable(ctx context.Context, date string) ([]string, error)
}
