package calendarRepo

import (
	"context"
	"sync"

	"enersense/models"
)

// MemoryBookingRepo is an in-process record store. State is lost on
// restart, so it is only suitable for tests and throwaway deployments.
type MemoryBookingRepo struct {
	mu   sync.RWMutex
	rows []models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) Append(ctx context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, booking)
	return nil
}

func (r *MemoryBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bookings := []models.Booking{}
	for _, row := range r.rows {
		if row.Date == date {
			bookings = append(bookings, row)
		}
	}
	return bookings, nil
}
