package model

import "time"

// Booking ties one user to one seat for an externally catalogued
// show. The show id is opaque and not validated locally. Booking is
// the owning side of both relations: it references user and seat by
// id, and the reverse directions (a seat's booking, a user's
// bookings) are always derived by query. A seat is referenced by at
// most one booking at a time; the `booked` flag on the seat is kept
// in sync procedurally by the booking service.
//
// Fields:
//  ID        – primary key identifier.
//  ShowID    – opaque external show identifier.
//  UserID    – owning user (required).
//  SeatID    – reserved seat (required, unique among bookings).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Booking struct {
	ID        uint64    // bookings.id
	ShowID    uint64    // bookings.show_id
	UserID    uint64    // bookings.user_id
	SeatID    uint64    // bookings.seat_id
	CreatedAt time.Time // bookings.created_at
	UpdatedAt time.Time // bookings.updated_at
}
