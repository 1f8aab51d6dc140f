// Package seed provisions demo data for local development. Seeding
// only runs against empty tables, so restarting the server never
// duplicates rows.
package seed

import (
	"context"
	"fmt"
	"log"

	"venue-booking/internal/model"
	"venue-booking/internal/repository"
	"venue-booking/internal/utils"
)

// Seeder holds the repositories it provisions.
type Seeder struct {
	Venues   *repository.VenueRepo
	Users    *repository.UserRepo
	Seats    *repository.SeatRepo
	Bookings *repository.BookingRepo
	Cost     int // bcrypt cost for seeded passwords
}

// Run provisions users, the venue, seats and a few bookings, in that
// order so foreign keys resolve.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.loadUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := s.loadVenue(ctx); err != nil {
		return fmt.Errorf("seed venue: %w", err)
	}
	if err := s.loadSeats(ctx); err != nil {
		return fmt.Errorf("seed seats: %w", err)
	}
	if err := s.loadBookings(ctx); err != nil {
		return fmt.Errorf("seed bookings: %w", err)
	}
	log.Println("seed: demo data provisioned")
	return nil
}

func (s *Seeder) loadUsers(ctx context.Context) error {
	n, err := s.Users.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	demo := []struct {
		first, last, email, password string
	}{
		{"Ana", "Almeida", "ana.almeida@example.com", "testPassword"},
		{"José", "Loureiro", "jose.loureiro@example.com", "myPassword"},
	}
	for _, d := range demo {
		hash, err := utils.HashPassword(d.password, s.Cost)
		if err != nil {
			return err
		}
		u := model.User{FirstName: d.first, LastName: d.last, Email: d.email, PasswordHash: hash}
		if err := s.Users.Create(ctx, &u); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) loadVenue(ctx context.Context) error {
	n, err := s.Venues.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	v := model.Venue{
		Name:     "XPTO Arena",
		Address:  "Avenida da Boavista 3, Porto",
		Capacity: 10000,
	}
	return s.Venues.Create(ctx, &v)
}

func (s *Seeder) loadSeats(ctx context.Context) error {
	n, err := s.Seats.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	areas := []model.VenueArea{
		model.AreaFloor,
		model.AreaFloor,
		model.AreaLevel1,
		model.AreaLevel2,
		model.AreaLevel1,
	}
	seats := make([]model.Seat, 0, len(areas))
	for _, a := range areas {
		seats = append(seats, model.Seat{VenueArea: a, Enabled: true})
	}
	return s.Seats.CreateBulk(ctx, seats)
}

func (s *Seeder) loadBookings(ctx context.Context) error {
	n, err := s.Bookings.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	demo := []model.Booking{
		{ShowID: 1, UserID: 1, SeatID: 1},
		{ShowID: 1, UserID: 2, SeatID: 2},
		{ShowID: 1, UserID: 2, SeatID: 3},
	}
	for i := range demo {
		if err := s.Bookings.Create(ctx, &demo[i]); err != nil {
			return err
		}
		if err := s.Seats.SetBooked(ctx, demo[i].SeatID, true); err != nil {
			return err
		}
	}
	return nil
}
