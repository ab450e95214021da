package calendarRepo

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"enersense/models"
)

// csvTimeLayout is the format used for the booked_at column.
const csvTimeLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"id", "date", "time", "client_name", "topic", "booked_at"}

// CSVBookingRepo persists bookings as an append-only comma-separated file,
// one row per booking, with a header row written on first use.
type CSVBookingRepo struct {
	path string
}

// NewCSVBookingRepo returns a repository backed by
// <dir>/consultations_calendar.csv, creating the directory if needed.
func NewCSVBookingRepo(dir string) (*CSVBookingRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &CSVBookingRepo{path: filepath.Join(dir, "consultations_calendar.csv")}, nil
}

func (r *CSVBookingRepo) Append(ctx context.Context, booking models.Booking) error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open calendar file: %w", err)
	}
	defer f.Close()

	// Encode the full row (plus the header when the file is new) into a
	// buffer first so the append lands in a single write. A failed write
	// must not leave a partial row behind.
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat calendar file: %w", err)
	}
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("encode calendar header: %w", err)
		}
	}

	record := []string{
		booking.ID,
		booking.Date,
		booking.Time,
		booking.ClientName,
		booking.Topic,
		booking.BookedAt.UTC().Format(csvTimeLayout),
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("encode booking row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode booking row: %w", err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("append booking row: %w", err)
	}
	return nil
}

func (r *CSVBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		// No file yet means nothing has ever been booked.
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open calendar file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read calendar file: %w", err)
	}

	bookings := []models.Booking{}
	for i, row := range rows {
		if i == 0 || len(row) < 6 {
			continue
		}
		if row[1] != date {
			continue
		}
		bookedAt, _ := time.Parse(csvTimeLayout, row[5])
		bookings = append(bookings, models.Booking{
			ID:         row[0],
			Date:       row[1],
			Time:       row[2],
			ClientName: row[3],
			Topic:      row[4],
			BookedAt:   bookedAt,
		})
	}
	return bookings, nil
}
