// File: enersense/services/slotbook/slotbook.go
package slotbook

import (
	"context"
	"fmt"
	"sync"
	"time"

	calendarRepo "enersense/database/repository/calendar"
	"enersense/models"
	"enersense/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// SlotLabels is the fixed set of hourly consultation slots in canonical
// ascending order. Availability is always reported in this order, never in
// record-store insertion order.
var SlotLabels = []string{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00",
}

// DefaultSlotBook implements SlotBookService over a BookingRepository.
type DefaultSlotBook struct {
	Repo calendarRepo.BookingRepository

	// mu serializes the scan-then-append sequence. The repository itself is
	// a dumb append+scan store, so without this two concurrent Schedule
	// calls could both observe a slot as free before either writes.
	mu sync.Mutex
}

func NewDefaultSlotBook(repo calendarRepo.BookingRepository) *DefaultSlotBook {
	return &DefaultSlotBook{Repo: repo}
}

func validSlot(timeLabel string) bool {
	for _, label := range SlotLabels {
		if label == timeLabel {
			return true
		}
	}
	return false
}

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return &MalformedDateError{Date: date}
	}
	return nil
}

func (s *DefaultSlotBook) Schedule(ctx context.Context, date, timeLabel, clientName, topic string) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	if !validSlot(timeLabel) {
		return nil, &InvalidTimeError{Time: timeLabel}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.Repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("scan bookings for %s: %w", date, err)
	}
	for _, row := range existing {
		if row.Time == timeLabel {
			logger.Info("Consultation slot conflict",
				zap.String("date", date),
				zap.String("time", timeLabel),
				zap.String("heldBy", row.ClientName))
			return nil, &SlotConflictError{Date: date, Time: timeLabel}
		}
	}

	booking := models.Booking{
		ID:         uuid.New().String(),
		Date:       date,
		Time:       timeLabel,
		ClientName: clientName,
		Topic:      topic,
		BookedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Append(ctx, booking); err != nil {
		return nil, fmt.Errorf("append booking: %w", err)
	}

	logger.Info("Consultation scheduled",
		zap.String("date", date),
		zap.String("time", timeLabel),
		zap.String("client", clientName))
	return &booking, nil
}

func (s *DefaultSlotBook) ListAvailable(ctx context.Context, date string) ([]string, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	existing, err := s.Repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("scan bookings for %s: %w", date, err)
	}

	booked := make(map[string]bool, len(existing))
	for _, row := range existing {
		booked[row.Time] = true
	}

	available := []string{}
	for _, label := range SlotLabels {
		if !booked[label] {
			available = append(available, label)
		}
	}
	return available, nil
}
