package service

import (
	"context"
	"errors"

	"venue-booking/internal/repository"
)

// ErrVenueSoldOut rejects a booking attempt while the venue's cached
// sold-out flag is set. Not retryable until capacity frees up.
var ErrVenueSoldOut = errors.New("venue is sold out")

// ErrSeatNotAvailable rejects a booking attempt for a seat that is
// missing, disabled or already booked. Retryable with another seat.
var ErrSeatNotAvailable = errors.New("seat is not available")

// EventPublisher receives booking lifecycle notifications. Publishing
// is best effort: the booking service logs and ignores failures.
type EventPublisher interface {
	BookingCreated(ctx context.Context, resp BookingResponse)
	BookingCancelled(ctx context.Context, bookingID, seatID uint64)
}

// BookingService orchestrates booking creation, update and deletion
// while keeping three pieces of state mutually consistent: the
// booking row itself, the referenced seat's booked flag, and the
// venue's cached sold-out flag. Admission checks run strictly before
// any write, so a rejected request leaves no side effects.
//
// The multi-step writes are not wrapped in a transaction; the unique
// index on bookings.seat_id is what prevents two racing creates from
// both landing on one seat (the loser surfaces as ErrSeatNotAvailable).
type BookingService struct {
	bookings BookingStore
	venue    *VenueService
	seats    *SeatService
	mapper   *MappingService
	events   EventPublisher // optional, may be nil
}

// NewBookingService constructs the booking service. events may be nil
// when no broker is configured.
func NewBookingService(bookings BookingStore, venue *VenueService, seats *SeatService, mapper *MappingService, events EventPublisher) *BookingService {
	return &BookingService{
		bookings: bookings,
		venue:    venue,
		seats:    seats,
		mapper:   mapper,
		events:   events,
	}
}

// GetAll returns the display projection of every booking.
func (s *BookingService) GetAll(ctx context.Context) ([]BookingResponse, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp, err := s.mapper.ToResponse(ctx, b)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// GetByID returns one booking's display projection. Returns
// repository.ErrBookingNotFound for an unknown id.
func (s *BookingService) GetByID(ctx context.Context, id uint64) (BookingResponse, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return BookingResponse{}, err
	}
	return s.mapper.ToResponse(ctx, b)
}

// GetByUser returns the user's bookings grouped under their id. A
// user with no bookings gets an empty list, never an error.
func (s *BookingService) GetByUser(ctx context.Context, userID uint64) (UserBookingsResponse, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return UserBookingsResponse{}, err
	}
	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp, err := s.mapper.ToResponse(ctx, b)
		if err != nil {
			return UserBookingsResponse{}, err
		}
		responses = append(responses, resp)
	}
	return UserBookingsResponse{UserID: userID, Bookings: responses}, nil
}

// Create admits and persists a new booking.
//
// Sequencing: both admission checks run before any write, the seat
// flag flips right after the insert, and the venue recompute runs
// last so it sees the updated seat state.
func (s *BookingService) Create(ctx context.Context, req BookingRequest) (BookingResponse, error) {
	soldOut, err := s.venue.SoldOut(ctx)
	if err != nil {
		return BookingResponse{}, err
	}
	if soldOut {
		return BookingResponse{}, ErrVenueSoldOut
	}

	available, err := s.seats.IsSeatAvailable(ctx, req.SeatID)
	if err != nil {
		return BookingResponse{}, err
	}
	if !available {
		return BookingResponse{}, ErrSeatNotAvailable
	}

	booking, err := s.mapper.ToBooking(ctx, req)
	if err != nil {
		return BookingResponse{}, err
	}
	if err := s.bookings.Create(ctx, &booking); err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			// Lost a race: another create claimed the seat between the
			// availability check and our insert.
			return BookingResponse{}, ErrSeatNotAvailable
		}
		return BookingResponse{}, err
	}

	if err := s.seats.ChangeBookingStatus(ctx, req.SeatID, true); err != nil {
		return BookingResponse{}, err
	}
	if err := s.venue.RefreshAvailability(ctx); err != nil {
		return BookingResponse{}, err
	}

	resp, err := s.mapper.ToResponse(ctx, booking)
	if err != nil {
		return BookingResponse{}, err
	}
	if s.events != nil {
		s.events.BookingCreated(ctx, resp)
	}
	return resp, nil
}

// Update repoints an existing booking at a new seat.
//
// The availability check does not exempt the booking's own seat, so
// re-submitting the current seat id is rejected with
// ErrSeatNotAvailable. The venue's sold-out flag is not recomputed
// here; only Create refreshes it.
func (s *BookingService) Update(ctx context.Context, id uint64, req BookingRequest) (BookingResponse, error) {
	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return BookingResponse{}, err
	}

	available, err := s.seats.IsSeatAvailable(ctx, req.SeatID)
	if err != nil {
		return BookingResponse{}, err
	}
	if !available {
		return BookingResponse{}, ErrSeatNotAvailable
	}

	previousSeatID := existing.SeatID
	if err := s.bookings.UpdateSeat(ctx, id, req.SeatID); err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			return BookingResponse{}, ErrSeatNotAvailable
		}
		return BookingResponse{}, err
	}
	existing.SeatID = req.SeatID

	if previousSeatID != req.SeatID {
		if err := s.seats.ChangeBookingStatus(ctx, previousSeatID, false); err != nil {
			return BookingResponse{}, err
		}
	}
	// Unconditional: the new seat is marked booked even when the seat
	// reference did not change.
	if err := s.seats.ChangeBookingStatus(ctx, req.SeatID, true); err != nil {
		return BookingResponse{}, err
	}

	return s.mapper.ToResponse(ctx, existing)
}

// Delete removes a booking and frees its seat. The venue's sold-out
// flag is not recomputed here; only Create refreshes it.
func (s *BookingService) Delete(ctx context.Context, id uint64) error {
	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.seats.ChangeBookingStatus(ctx, existing.SeatID, false); err != nil {
		return err
	}

	if s.events != nil {
		s.events.BookingCancelled(ctx, existing.ID, existing.SeatID)
	}
	return nil
}
