package service

import (
	"context"
	"errors"

	"venue-booking/internal/model"
	"venue-booking/internal/repository"
)

// VenueService reports the venue's capacity and cached sold-out flag
// and recomputes the flag after seat-state changes.
type VenueService struct {
	venues VenueStore
	seats  *SeatService
}

// NewVenueService constructs a VenueService over the given store and
// seat service.
func NewVenueService(venues VenueStore, seats *SeatService) *VenueService {
	return &VenueService{venues: venues, seats: seats}
}

// Venue returns the venue row as stored.
func (s *VenueService) Venue(ctx context.Context) (model.Venue, error) {
	return s.venues.Get(ctx)
}

// Capacity returns the venue's fixed capacity. A missing venue row is
// a degraded state, not an error: it yields 0.
func (s *VenueService) Capacity(ctx context.Context) (int, error) {
	v, err := s.venues.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return v.Capacity, nil
}

// SoldOut returns the cached sold-out flag. Unlike Capacity, a
// missing venue row propagates as an error: this sits on the booking
// hot path and a vanished venue is not something to paper over.
func (s *VenueService) SoldOut(ctx context.Context) (bool, error) {
	v, err := s.venues.Get(ctx)
	if err != nil {
		return false, err
	}
	return v.SoldOut, nil
}

// RefreshAvailability recomputes and persists the sold-out flag. The
// flag trips when the count of currently available seats equals the
// venue capacity.
func (s *VenueService) RefreshAvailability(ctx context.Context) error {
	available, err := s.seats.AvailableSeats(ctx)
	if err != nil {
		return err
	}
	v, err := s.venues.Get(ctx)
	if err != nil {
		return err
	}
	return s.venues.SetSoldOut(ctx, len(available) == v.Capacity)
}
