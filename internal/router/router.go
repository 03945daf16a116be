package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/sheshnag/movie-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not belong to a feature
// group.  Currently it exposes only a health check, which load
// balancers and monitoring systems use to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the public movie catalog endpoints.  The
// optional cache middleware is applied to every catalog route; pass a
// pass-through middleware to disable caching.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)
	// Full catalog list shown on the storefront landing page.
	g.GET("/movies", h.GetMovies)
	// Movies releasing in the future, for the "coming soon" strip.
	g.GET("/movies/upcoming", h.GetUpcomingMovies)
	// One movie with its showtimes, for the booking page.
	g.GET("/movies/:id", h.GetMovie)
	// Title search backing the search box.
	g.GET("/search/movies", h.SearchMovies)
	// Static ticket tier reference data (names, prices, features).
	g.GET("/tiers", h.GetTiers)
}

// RegisterBooking registers the customer booking endpoints: the seat
// map, the price quote helper and booking creation/lookup.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, s *handler.SeatMapHandler) {
	// A fresh ephemeral seat map for one booking session.
	e.GET("/v1/seatmap", s.GetSeatMap)
	// Price quote for a seat selection; creates nothing.
	e.POST("/v1/bookings/quote", s.QuoteSelection)
	// Create a booking from the submitted form.
	e.POST("/v1/bookings", b.CreateBooking)
	// Look up a booking by its identifier (confirmation page reload).
	e.GET("/v1/bookings/:id", b.GetBooking)
}

// RegisterAdmin registers the admin view.  The demo ships without
// authentication, so these routes carry no access middleware.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler) {
	g := e.Group("/v1/admin")
	// All bookings, optionally filtered by ?status=.
	g.GET("/bookings", a.ListBookings)
	// Move a booking through its lifecycle.
	g.PATCH("/bookings/:id/status", a.UpdateStatus)
}
