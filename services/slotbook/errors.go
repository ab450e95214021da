package slotbook

import "fmt"

// SlotConflictError reports that the requested (date, time) pair is already
// booked. No write happens on conflict.
type SlotConflictError struct {
	Date string
	Time string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %s on %s is already booked", e.Time, e.Date)
}

// InvalidTimeError reports a time label outside the fixed hourly set.
type InvalidTimeError struct {
	Time string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("%q is not a bookable slot", e.Time)
}

// MalformedDateError reports a date string that does not parse as YYYY-MM-DD.
type MalformedDateError struct {
	Date string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("%q is not a valid date (expected YYYY-MM-DD)", e.Date)
}
