package service

import (
	"context"
	"errors"

	"venue-booking/internal/model"
	"venue-booking/internal/repository"
)

// SeatService answers whether seats can take a new booking and flips
// their booked flag on behalf of the booking service.
type SeatService struct {
	seats SeatStore
}

// NewSeatService constructs a SeatService over the given store.
func NewSeatService(seats SeatStore) *SeatService {
	return &SeatService{seats: seats}
}

// GetSeat retrieves a seat by id. Returns repository.ErrSeatNotFound
// when no such seat exists.
func (s *SeatService) GetSeat(ctx context.Context, id uint64) (model.Seat, error) {
	return s.seats.GetByID(ctx, id)
}

// IsSeatAvailable reports whether the seat exists, is enabled and is
// not booked. An unknown id yields false with a nil error, so
// availability checks never fail on ids that simply don't exist.
func (s *SeatService) IsSeatAvailable(ctx context.Context, id uint64) (bool, error) {
	seat, err := s.seats.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return false, nil
		}
		return false, err
	}
	return seat.Enabled && !seat.Booked, nil
}

// AvailableSeats returns every seat that is enabled and not booked,
// in store scan order.
func (s *SeatService) AvailableSeats(ctx context.Context) ([]model.Seat, error) {
	all, err := s.seats.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]model.Seat, 0, len(all))
	for _, seat := range all {
		if seat.Enabled && !seat.Booked {
			available = append(available, seat)
		}
	}
	return available, nil
}

// ChangeBookingStatus persists a new booked value for the seat.
// Returns repository.ErrSeatNotFound when the seat is missing. There
// is no guard against redundant toggles; callers sequence their own
// calls.
func (s *SeatService) ChangeBookingStatus(ctx context.Context, id uint64, booked bool) error {
	return s.seats.SetBooked(ctx, id, booked)
}
