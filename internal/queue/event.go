// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// BookingCreatedEvent is published when a booking is successfully
// created. It carries enough for downstream consumers to log or
// notify without querying the primary database.
type BookingCreatedEvent struct {
	BookingID uint64 `json:"booking_id"`
	ShowName  string `json:"show_name"`
	UserEmail string `json:"user_email"`
	SeatID    uint64 `json:"seat_id"`
	VenueArea string `json:"venue_area"`
	CreatedAt string `json:"created_at"`
}

// BookingCancelledEvent is published when a booking is deleted and
// its seat freed.
type BookingCancelledEvent struct {
	BookingID   uint64 `json:"booking_id"`
	SeatID      uint64 `json:"seat_id"`
	CancelledAt string `json:"cancelled_at"`
}
