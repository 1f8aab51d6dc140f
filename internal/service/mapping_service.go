package service

import (
	"context"
	"log"

	"venue-booking/internal/model"
)

// MappingService shapes bookings for output and resolves inbound
// requests into persistable bookings. Seat and user snapshots are
// fetched fresh from their stores as value copies; nothing here hands
// out shared mutable state.
type MappingService struct {
	users   UserStore
	seats   SeatStore
	catalog ShowCatalog
}

// NewMappingService constructs a MappingService.
func NewMappingService(users UserStore, seats SeatStore, catalog ShowCatalog) *MappingService {
	return &MappingService{users: users, seats: seats, catalog: catalog}
}

// ToResponse composes the display record for a booking. The show name
// is looked up in the external catalog; any catalog failure degrades
// to an empty name rather than failing the mapping. Seat and user
// lookups do propagate errors; a booking always references existing
// rows, so a miss there is a real store fault.
func (m *MappingService) ToResponse(ctx context.Context, b model.Booking) (BookingResponse, error) {
	seat, err := m.seats.GetByID(ctx, b.SeatID)
	if err != nil {
		return BookingResponse{}, err
	}
	user, err := m.users.GetByID(ctx, b.UserID)
	if err != nil {
		return BookingResponse{}, err
	}

	showName, err := m.catalog.ShowName(ctx, b.ShowID)
	if err != nil {
		log.Printf("show catalog: lookup for show %d failed: %v", b.ShowID, err)
		showName = ""
	}

	return BookingResponse{
		BookingID: b.ID,
		ShowName:  showName,
		UserEmail: user.Email,
		SeatID:    seat.ID,
		VenueArea: seat.VenueArea,
		CreatedAt: b.CreatedAt,
	}, nil
}

// ToBooking resolves the request's seat and user and builds an
// unsaved booking. Missing seat or user propagates the store's
// not-found error.
func (m *MappingService) ToBooking(ctx context.Context, req BookingRequest) (model.Booking, error) {
	seat, err := m.seats.GetByID(ctx, req.SeatID)
	if err != nil {
		return model.Booking{}, err
	}
	user, err := m.users.GetByID(ctx, req.UserID)
	if err != nil {
		return model.Booking{}, err
	}
	return model.Booking{
		ShowID: req.ShowID,
		UserID: user.ID,
		SeatID: seat.ID,
	}, nil
}
