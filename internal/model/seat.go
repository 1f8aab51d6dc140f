package model

import "time"

// VenueArea is the seating zone a seat belongs to. Values are stored
// as strings in the seats table.
type VenueArea string

const (
	AreaFloor  VenueArea = "FLOOR"
	AreaLevel1 VenueArea = "LEVEL_1"
	AreaLevel2 VenueArea = "LEVEL_2"
)

// Valid reports whether the area is one of the known zones.
func (a VenueArea) Valid() bool {
	switch a {
	case AreaFloor, AreaLevel1, AreaLevel2:
		return true
	}
	return false
}

// Seat describes a single seat in the venue. Enabled marks a seat as
// usable at all; Booked marks it as held by an active booking.
// Seats are provisioned up front and never created through the
// booking flow.
//
// Fields:
//  ID        – primary key identifier.
//  VenueArea – seating zone (FLOOR, LEVEL_1, LEVEL_2).
//  Enabled   – whether the seat is usable.
//  Booked    – whether an active booking holds the seat.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Seat struct {
	ID        uint64    // seats.id
	VenueArea VenueArea // seats.venue_area
	Enabled   bool      // seats.enabled
	Booked    bool      // seats.booked
	CreatedAt time.Time // seats.created_at
	UpdatedAt time.Time // seats.updated_at
}
