package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sheshnag/movie-booking/internal/booking"
	"github.com/sheshnag/movie-booking/internal/store"
)

// BookingHandler serves the customer-facing booking endpoints.
type BookingHandler struct {
	Bookings *booking.Service
}

// NewBookingHandler constructs a BookingHandler.  The booking service
// must be non-nil.
func NewBookingHandler(svc *booking.Service) *BookingHandler {
	if svc == nil {
		panic("nil booking service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: svc}
}

// CreateBooking handles POST /v1/bookings.  It accepts the booking form
// and responds 201 with the persisted record.  Validation problems
// return 422 with per-field messages; a storage failure returns 500 and
// the client is expected to retry.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var in booking.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	b, err := h.Bookings.CreateBooking(c.Request().Context(), in)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error":  "validation failed",
				"fields": verr.Fields,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save booking, please retry"})
	}
	return c.JSON(http.StatusCreated, b)
}

// GetBooking handles GET /v1/bookings/:id.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	b, err := h.Bookings.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, b)
}
