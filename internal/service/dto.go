package service

import (
	"time"

	"venue-booking/internal/model"
)

// BookingRequest is the inbound shape for creating or updating a
// booking. The show id is opaque; only user and seat are resolved
// locally.
type BookingRequest struct {
	ShowID uint64 `json:"show_id"`
	UserID uint64 `json:"user_id"`
	SeatID uint64 `json:"seat_id"`
}

// BookingResponse is the enriched, read-only projection of a booking
// returned to callers. ShowName comes from the external show catalog
// and is empty when the catalog cannot be reached.
type BookingResponse struct {
	BookingID uint64          `json:"booking_id"`
	ShowName  string          `json:"show_name"`
	UserEmail string          `json:"user_email"`
	SeatID    uint64          `json:"seat_id"`
	VenueArea model.VenueArea `json:"venue_area"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserBookingsResponse groups a user's bookings under their id.
type UserBookingsResponse struct {
	UserID   uint64            `json:"user_id"`
	Bookings []BookingResponse `json:"bookings"`
}
