package models

import "time"

// Booking represents one committed consultation reservation. The pair
// (Date, Time) is unique across the whole record store; bookings are never
// mutated or deleted once written.
type Booking struct {
	ID         string    `bson:"id" json:"id"`                   // Unique booking identifier (UUID)
	Date       string    `bson:"date" json:"date"`               // Consultation date in "YYYY-MM-DD" format
	Time       string    `bson:"time" json:"time"`               // Hourly slot label, e.g. "11:00"
	ClientName string    `bson:"client_name" json:"client_name"` // Client's full name
	Topic      string    `bson:"topic" json:"topic"`             // Consultation subject
	BookedAt   time.Time `bson:"booked_at" json:"booked_at"`     // UTC timestamp when the booking was written
}
