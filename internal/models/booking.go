package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a reservation of one space for one half-open time interval
// [StartTime, EndTime). IDs share a namespace with the remote visit records.
type Booking struct {
	ID        string        `json:"id"`
	SpaceID   string        `json:"space_id"`
	UserID    string        `json:"user_id"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	IsVisited bool          `json:"is_visited"`
}

// IsActive reports whether the booking is still current at the given instant.
// A booking ending exactly now is still active.
func (b Booking) IsActive(now time.Time) bool {
	return !b.EndTime.Before(now)
}
