package slotbook

import (
	"context"
	"errors"
	"testing"

	calendarRepo "enersense/database/repository/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}

func newTestSlotBook() (*DefaultSlotBook, *calendarRepo.MemoryBookingRepo) {
	repo := calendarRepo.NewMemoryBookingRepo()
	return NewDefaultSlotBook(repo), repo
}

func TestListAvailableEmptyDay(t *testing.T) {
	svc, _ := newTestSlotBook()

	slots, err := svc.ListAvailable(context.Background(), "2025-10-22")
	require.NoError(t, err)
	assert.Equal(t, allSlots, slots)
}

func TestScheduleThenConflict(t *testing.T) {
	svc, repo := newTestSlotBook()
	ctx := context.Background()

	booking, err := svc.Schedule(ctx, "2025-10-22", "11:00", "Sarah Nader", "energy optimization")
	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "2025-10-22", booking.Date)
	assert.Equal(t, "11:00", booking.Time)

	_, err = svc.Schedule(ctx, "2025-10-22", "11:00", "Hadi Nader", "solar setup")
	var conflict *SlotConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "2025-10-22", conflict.Date)
	assert.Equal(t, "11:00", conflict.Time)

	// The conflicting attempt must not have written anything.
	rows, err := repo.ListByDate(ctx, "2025-10-22")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Sarah Nader", rows[0].ClientName)

	slots, err := svc.ListAvailable(ctx, "2025-10-22")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, slots)
}

func TestAvailabilityIgnoresInsertionOrder(t *testing.T) {
	svc, _ := newTestSlotBook()
	ctx := context.Background()

	// Book out of chronological order; the output stays canonical.
	for _, label := range []string{"15:00", "09:00", "12:00"} {
		_, err := svc.Schedule(ctx, "2025-10-22", label, "Client", "topic")
		require.NoError(t, err)
	}

	slots, err := svc.ListAvailable(ctx, "2025-10-22")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "11:00", "13:00", "14:00", "16:00"}, slots)
}

func TestBookingsAreIndependentPerDate(t *testing.T) {
	svc, _ := newTestSlotBook()
	ctx := context.Background()

	_, err := svc.Schedule(ctx, "2025-10-22", "11:00", "Sarah Nader", "energy optimization")
	require.NoError(t, err)

	// Same slot on another date is still free.
	_, err = svc.Schedule(ctx, "2025-10-23", "11:00", "Hadi Nader", "solar setup")
	require.NoError(t, err)

	slots, err := svc.ListAvailable(ctx, "2025-10-24")
	require.NoError(t, err)
	assert.Equal(t, allSlots, slots)
}

func TestIdempotentReads(t *testing.T) {
	svc, _ := newTestSlotBook()
	ctx := context.Background()

	_, err := svc.Schedule(ctx, "2025-10-22", "10:00", "Client", "topic")
	require.NoError(t, err)

	first, err := svc.ListAvailable(ctx, "2025-10-22")
	require.NoError(t, err)
	second, err := svc.ListAvailable(ctx, "2025-10-22")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFullDay(t *testing.T) {
	svc, _ := newTestSlotBook()
	ctx := context.Background()

	for _, label := range allSlots {
		_, err := svc.Schedule(ctx, "2025-10-22", label, "Client", "topic")
		require.NoError(t, err)
	}

	slots, err := svc.ListAvailable(ctx, "2025-10-22")
	require.NoError(t, err)
	assert.Empty(t, slots)

	// Every further attempt conflicts; no slot remains.
	for _, label := range allSlots {
		_, err := svc.Schedule(ctx, "2025-10-22", label, "Late Client", "topic")
		var conflict *SlotConflictError
		assert.True(t, errors.As(err, &conflict), "expected conflict for %s", label)
	}
}

func TestMalformedDate(t *testing.T) {
	svc, repo := newTestSlotBook()
	ctx := context.Background()

	_, err := svc.Schedule(ctx, "October 22", "11:00", "Client", "topic")
	var badDate *MalformedDateError
	require.True(t, errors.As(err, &badDate))

	_, err = svc.ListAvailable(ctx, "not-a-date")
	require.True(t, errors.As(err, &badDate))

	rows, err := repo.ListByDate(ctx, "October 22")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestInvalidTime(t *testing.T) {
	svc, repo := newTestSlotBook()
	ctx := context.Background()

	for _, label := range []string{"08:00", "17:00", "11:30", "nine"} {
		_, err := svc.Schedule(ctx, "2025-10-22", label, "Client", "topic")
		var badTime *InvalidTimeError
		require.True(t, errors.As(err, &badTime), "expected invalid time for %q", label)
	}

	rows, err := repo.ListByDate(ctx, "2025-10-22")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestScheduleAgainstCSVStore(t *testing.T) {
	repo, err := calendarRepo.NewCSVBookingRepo(t.TempDir())
	require.NoError(t, err)
	svc := NewDefaultSlotBook(repo)
	ctx := context.Background()

	_, err = svc.Schedule(ctx, "2025-10-22", "11:00", "Sarah Nader", "energy optimization")
	require.NoError(t, err)

	_, err = svc.Schedule(ctx, "2025-10-22", "11:00", "Hadi Nader", "solar setup")
	var conflict *SlotConflictError
	require.True(t, errors.As(err, &conflict))

	slots, err := svc.ListAvailable(ctx, "2025-10-22")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, slots)
}
