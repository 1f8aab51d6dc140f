package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-booking/internal/model"
	"venue-booking/internal/repository"
	"venue-booking/internal/service"
)

func TestIsSeatAvailable(t *testing.T) {
	store := newFakeSeatStore(
		model.Seat{ID: 1, VenueArea: model.AreaFloor, Enabled: true, Booked: false},
		model.Seat{ID: 2, VenueArea: model.AreaFloor, Enabled: true, Booked: true},
		model.Seat{ID: 3, VenueArea: model.AreaLevel1, Enabled: false, Booked: false},
	)
	svc := service.NewSeatService(store)
	ctx := context.Background()

	cases := []struct {
		name string
		id   uint64
		want bool
	}{
		{"enabled and free", 1, true},
		{"already booked", 2, false},
		{"disabled", 3, false},
		{"unknown id", 99, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.IsSeatAvailable(ctx, tc.id)
			require.NoError(t, err, "availability never errors for missing seats")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAvailableSeats(t *testing.T) {
	store := newFakeSeatStore(
		model.Seat{ID: 4, VenueArea: model.AreaLevel2, Enabled: true},
		model.Seat{ID: 1, VenueArea: model.AreaFloor, Enabled: true},
		model.Seat{ID: 2, VenueArea: model.AreaFloor, Enabled: true, Booked: true},
		model.Seat{ID: 3, VenueArea: model.AreaLevel1, Enabled: false},
	)
	svc := service.NewSeatService(store)

	available, err := svc.AvailableSeats(context.Background())
	require.NoError(t, err)
	require.Len(t, available, 2)
	// Store scan order is preserved, not sorted by id.
	assert.Equal(t, uint64(4), available[0].ID)
	assert.Equal(t, uint64(1), available[1].ID)
}

func TestChangeBookingStatus(t *testing.T) {
	store := newFakeSeatStore(model.Seat{ID: 1, VenueArea: model.AreaFloor, Enabled: true})
	svc := service.NewSeatService(store)
	ctx := context.Background()

	require.NoError(t, svc.ChangeBookingStatus(ctx, 1, true))
	seat, err := svc.GetSeat(ctx, 1)
	require.NoError(t, err)
	assert.True(t, seat.Booked)

	err = svc.ChangeBookingStatus(ctx, 99, true)
	assert.ErrorIs(t, err, repository.ErrSeatNotFound)
}

func TestGetSeat_NotFound(t *testing.T) {
	svc := service.NewSeatService(newFakeSeatStore())

	_, err := svc.GetSeat(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrSeatNotFound)
}
