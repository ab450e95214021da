package calendarRepo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"enersense/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking(date, timeLabel, client string) models.Booking {
	return models.Booking{
		ID:         "b-" + timeLabel,
		Date:       date,
		Time:       timeLabel,
		ClientName: client,
		Topic:      "energy audit",
		BookedAt:   time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestListByDateMissingFile(t *testing.T) {
	repo, err := NewCSVBookingRepo(t.TempDir())
	require.NoError(t, err)

	rows, err := repo.ListByDate(context.Background(), "2025-10-22")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewCSVBookingRepo(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testBooking("2025-10-22", "09:00", "Sarah Nader")))
	require.NoError(t, repo.Append(ctx, testBooking("2025-10-22", "10:00", "Hadi Nader")))

	data, err := os.ReadFile(filepath.Join(dir, "consultations_calendar.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,date,time,client_name,topic,booked_at", lines[0])
}

func TestAppendAndScanRoundtrip(t *testing.T) {
	repo, err := NewCSVBookingRepo(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	want := models.Booking{
		ID:         "abc-123",
		Date:       "2025-10-22",
		Time:       "11:00",
		ClientName: "Sarah Nader",
		Topic:      "energy optimization, phase 2",
		BookedAt:   time.Date(2025, 10, 1, 8, 30, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Append(ctx, want))
	require.NoError(t, repo.Append(ctx, testBooking("2025-10-23", "11:00", "Other Client")))

	rows, err := repo.ListByDate(ctx, "2025-10-22")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, want, rows[0])
}

func TestScanSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewCSVBookingRepo(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, testBooking("2025-10-22", "14:00", "Sarah Nader")))

	// A fresh repo over the same directory sees the same rows.
	reopened, err := NewCSVBookingRepo(dir)
	require.NoError(t, err)
	rows, err := reopened.ListByDate(ctx, "2025-10-22")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "14:00", rows[0].Time)
}
