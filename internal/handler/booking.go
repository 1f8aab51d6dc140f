package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"venue-booking/internal/repository"
	"venue-booking/internal/service"
)

// BookingHandler exposes booking CRUD over HTTP. All consistency
// rules live in the booking service; the handler only binds input,
// translates sentinel errors to status codes and shapes JSON.
type BookingHandler struct {
	Bookings *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(b *service.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: b}
}

// List handles GET /v1/bookings.
func (h *BookingHandler) List(c echo.Context) error {
	resp, err := h.Bookings.GetAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	resp, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /v1/bookings.
func (h *BookingHandler) Create(c echo.Context) error {
	var req service.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.ShowID == 0 || req.UserID == 0 || req.SeatID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "show_id, user_id and seat_id are required"})
	}

	resp, err := h.Bookings.Create(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVenueSoldOut):
			return c.JSON(http.StatusConflict, echo.Map{"error": "venue is sold out"})
		case errors.Is(err, service.ErrSeatNotAvailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat is not available"})
		case errors.Is(err, repository.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		case errors.Is(err, repository.ErrSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		case errors.Is(err, repository.ErrVenueNotFound):
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "venue not provisioned"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /v1/bookings/:id.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req service.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.SeatID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_id is required"})
	}

	resp, err := h.Bookings.Update(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, service.ErrSeatNotAvailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat is not available"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /v1/bookings/:id.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	if err := h.Bookings.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
