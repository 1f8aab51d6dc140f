package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"venue-booking/internal/model"
	"venue-booking/internal/repository"
	"venue-booking/internal/service"
)

// SeatHandler exposes read-only seat and venue endpoints.
type SeatHandler struct {
	Seats *service.SeatService
	Venue *service.VenueService
}

// NewSeatHandler constructs a SeatHandler.
func NewSeatHandler(seats *service.SeatService, venue *service.VenueService) *SeatHandler {
	return &SeatHandler{Seats: seats, Venue: venue}
}

// seatResp is the outward seat shape.
type seatResp struct {
	ID        uint64          `json:"id"`
	VenueArea model.VenueArea `json:"venue_area"`
	Enabled   bool            `json:"enabled"`
	Booked    bool            `json:"booked"`
}

func toSeatResp(s model.Seat) seatResp {
	return seatResp{ID: s.ID, VenueArea: s.VenueArea, Enabled: s.Enabled, Booked: s.Booked}
}

// ListAvailable handles GET /v1/seats. It returns every seat open for
// a new booking.
func (h *SeatHandler) ListAvailable(c echo.Context) error {
	seats, err := h.Seats.AvailableSeats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]seatResp, 0, len(seats))
	for _, s := range seats {
		out = append(out, toSeatResp(s))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/seats/:id.
func (h *SeatHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	seat, err := h.Seats.GetSeat(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toSeatResp(seat))
}

// GetVenue handles GET /v1/venue. Capacity falls back to 0 when the
// venue row is missing, matching the capacity service semantics.
func (h *SeatHandler) GetVenue(c echo.Context) error {
	v, err := h.Venue.Venue(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"capacity": 0, "sold_out": false})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"name":     v.Name,
		"address":  v.Address,
		"capacity": v.Capacity,
		"sold_out": v.SoldOut,
	})
}
