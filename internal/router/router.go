package router // router wires HTTP routes to their handlers

import (
	"github.com/labstack/echo/v4"

	"venue-booking/internal/handler"
	"venue-booking/internal/middleware"
)

// Register sets up all application routes. Login and user creation
// are open; everything else under /v1 requires a valid access token.
func Register(e *echo.Echo, auth *handler.AuthHandler, users *handler.UserHandler, bookings *handler.BookingHandler, seats *handler.SeatHandler, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	e.POST("/v1/auth/login", auth.Login)
	e.POST("/v1/users", users.Create)

	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.GET("/bookings", bookings.List)
	g.GET("/bookings/:id", bookings.Get)
	g.POST("/bookings", bookings.Create)
	g.PUT("/bookings/:id", bookings.Update)
	g.DELETE("/bookings/:id", bookings.Delete)

	g.GET("/users/:id", users.Get)
	g.PUT("/users/:id", users.Update)
	g.DELETE("/users/:id", users.Delete)
	g.GET("/users/:id/bookings", users.ListBookings)

	g.GET("/seats", seats.ListAvailable)
	g.GET("/seats/:id", seats.Get)
	g.GET("/venue", seats.GetVenue)
}
