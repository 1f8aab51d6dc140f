package model

import "time"

// Venue holds the single venue record. Exactly one row exists; it is
// created by the seeder and addressed through the venue store rather
// than by scattering its id around.
//
// SoldOut is a cached projection of seat occupancy. It is recomputed
// after booking creation and may be briefly stale in between; it is
// not enforced by any database constraint.
type Venue struct {
	ID        uint64    // venues.id
	Name      string    // venues.name
	Address   string    // venues.address
	Capacity  int       // venues.capacity
	SoldOut   bool      // venues.sold_out
	CreatedAt time.Time // venues.created_at
	UpdatedAt time.Time // venues.updated_at
}
