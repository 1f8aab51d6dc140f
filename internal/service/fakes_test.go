package service_test

// In-memory store fakes used across the service tests. They mirror
// the repository contracts, including the sentinel errors and the
// unique-seat behavior of the bookings table.

import (
	"context"
	"errors"
	"time"

	"venue-booking/internal/model"
	"venue-booking/internal/repository"
)

type fakeSeatStore struct {
	seats map[uint64]model.Seat
	order []uint64
}

func newFakeSeatStore(seats ...model.Seat) *fakeSeatStore {
	f := &fakeSeatStore{seats: make(map[uint64]model.Seat)}
	for _, s := range seats {
		f.seats[s.ID] = s
		f.order = append(f.order, s.ID)
	}
	return f
}

func (f *fakeSeatStore) GetByID(_ context.Context, id uint64) (model.Seat, error) {
	s, ok := f.seats[id]
	if !ok {
		return model.Seat{}, repository.ErrSeatNotFound
	}
	return s, nil
}

func (f *fakeSeatStore) ListAll(_ context.Context) ([]model.Seat, error) {
	out := make([]model.Seat, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.seats[id])
	}
	return out, nil
}

func (f *fakeSeatStore) SetBooked(_ context.Context, id uint64, booked bool) error {
	s, ok := f.seats[id]
	if !ok {
		return repository.ErrSeatNotFound
	}
	s.Booked = booked
	f.seats[id] = s
	return nil
}

type fakeVenueStore struct {
	venue *model.Venue
}

func (f *fakeVenueStore) Get(_ context.Context) (model.Venue, error) {
	if f.venue == nil {
		return model.Venue{}, repository.ErrVenueNotFound
	}
	return *f.venue, nil
}

func (f *fakeVenueStore) SetSoldOut(_ context.Context, soldOut bool) error {
	if f.venue == nil {
		return repository.ErrVenueNotFound
	}
	f.venue.SoldOut = soldOut
	return nil
}

type fakeUserStore struct {
	nextID uint64
	users  map[uint64]model.User
}

func newFakeUserStore(users ...model.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[uint64]model.User)}
	for _, u := range users {
		f.users[u.ID] = u
		if u.ID > f.nextID {
			f.nextID = u.ID
		}
	}
	return f
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) Update(_ context.Context, u model.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repository.ErrUserNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeBookingStore struct {
	nextID   uint64
	bookings map[uint64]model.Booking
	order    []uint64
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[uint64]model.Booking)}
}

func (f *fakeBookingStore) seatTaken(seatID, exceptBookingID uint64) bool {
	for _, b := range f.bookings {
		if b.SeatID == seatID && b.ID != exceptBookingID {
			return true
		}
	}
	return false
}

func (f *fakeBookingStore) Create(_ context.Context, b *model.Booking) error {
	if f.seatTaken(b.SeatID, 0) {
		return repository.ErrSeatTaken
	}
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	f.bookings[b.ID] = *b
	f.order = append(f.order, b.ID)
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, id uint64) (model.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return model.Booking{}, repository.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingStore) ListAll(_ context.Context) ([]model.Booking, error) {
	out := make([]model.Booking, 0, len(f.order))
	for _, id := range f.order {
		if b, ok := f.bookings[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) ListByUser(_ context.Context, userID uint64) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	for _, id := range f.order {
		if b, ok := f.bookings[id]; ok && b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) UpdateSeat(_ context.Context, id, seatID uint64) error {
	b, ok := f.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	if f.seatTaken(seatID, id) {
		return repository.ErrSeatTaken
	}
	b.SeatID = seatID
	b.UpdatedAt = time.Now().UTC()
	f.bookings[id] = b
	return nil
}

func (f *fakeBookingStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.bookings[id]; !ok {
		return repository.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

// fakeCatalog resolves show names from a map; a set err fails every
// lookup, mimicking an unreachable catalog.
type fakeCatalog struct {
	names map[uint64]string
	err   error
}

func (f *fakeCatalog) ShowName(_ context.Context, showID uint64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	name, ok := f.names[showID]
	if !ok {
		return "", errors.New("show not found in catalog")
	}
	return name, nil
}
