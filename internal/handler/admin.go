package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sheshnag/movie-booking/internal/booking"
	"github.com/sheshnag/movie-booking/internal/model"
)

// AdminHandler serves the admin view: listing bookings and moving them
// through their lifecycle.  The demo deliberately ships without
// authentication, so these routes are as open as the rest.
type AdminHandler struct {
	Bookings *booking.Service
}

// NewAdminHandler constructs an AdminHandler.  The booking service must
// be non-nil.
func NewAdminHandler(svc *booking.Service) *AdminHandler {
	if svc == nil {
		panic("nil booking service passed to NewAdminHandler")
	}
	return &AdminHandler{Bookings: svc}
}

// ListBookings handles GET /v1/admin/bookings.  The optional ?status=
// query restricts the list to one lifecycle state.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !model.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status filter"})
	}
	bookings := h.Bookings.ListBookings(c.Request().Context(), status)
	return c.JSON(http.StatusOK, echo.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// UpdateStatus handles PATCH /v1/admin/bookings/:id/status.  The body
// must carry the new status.  Unknown booking ids return 404; the
// update itself places no constraint on which transition is requested.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ok, err := h.Bookings.SetStatus(c.Request().Context(), c.Param("id"), body.Status)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Fields["status"]})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update booking"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":     c.Param("id"),
		"status": body.Status,
	})
}
