// Package service holds the business rules that keep bookings, seats
// and the venue's cached sold-out flag consistent with one another.
// Services consume the narrow store interfaces below; the repository
// package provides the MySQL implementations and the sentinel errors
// the contracts refer to.
package service

import (
	"context"

	"venue-booking/internal/model"
)

// SeatStore is the persistence surface the seat service needs.
// Implementations return repository.ErrSeatNotFound for missing ids.
type SeatStore interface {
	GetByID(ctx context.Context, id uint64) (model.Seat, error)
	ListAll(ctx context.Context) ([]model.Seat, error)
	SetBooked(ctx context.Context, id uint64, booked bool) error
}

// VenueStore reads and updates the singleton venue row.
// Implementations return repository.ErrVenueNotFound when the row is absent.
type VenueStore interface {
	Get(ctx context.Context) (model.Venue, error)
	SetSoldOut(ctx context.Context, soldOut bool) error
}

// UserStore is the persistence surface for users. Create returns
// repository.ErrEmailExists on a duplicate email; lookups return
// repository.ErrUserNotFound.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uint64) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id uint64) error
}

// BookingStore is the persistence surface for bookings. Create and
// UpdateSeat return repository.ErrSeatTaken when the seat is already
// referenced by another booking; lookups return
// repository.ErrBookingNotFound.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error)
	UpdateSeat(ctx context.Context, id, seatID uint64) error
	Delete(ctx context.Context, id uint64) error
}

// ShowCatalog resolves an opaque show id to its display name.
type ShowCatalog interface {
	ShowName(ctx context.Context, showID uint64) (string, error)
}
