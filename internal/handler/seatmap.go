package handler

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sheshnag/movie-booking/internal/pricing"
	"github.com/sheshnag/movie-booking/internal/seatmap"
)

// timeNow is swapped in tests.
var timeNow = func() time.Time { return time.Now().UTC() }

// SeatMapHandler serves the ephemeral seat map and selection quotes.
// Each request for the map generates a fresh layout with freshly seeded
// occupancy; nothing is persisted between calls.
type SeatMapHandler struct{}

// GetSeatMap handles GET /v1/seatmap.  It returns the generated seats
// together with the selection cap so the client can enforce it too.
func (h *SeatMapHandler) GetSeatMap(c echo.Context) error {
	rng := rand.New(rand.NewSource(timeNow().UnixNano()))
	seats := seatmap.Generate(rng)
	return c.JSON(http.StatusOK, echo.Map{
		"seats":     seats,
		"max_seats": seatmap.MaxSeats,
	})
}

// QuoteSelection handles POST /v1/bookings/quote.  It derives tier
// counts and the total amount for a seat selection without creating
// anything.  Selections larger than the cap are rejected.
func (h *SeatMapHandler) QuoteSelection(c echo.Context) error {
	var body struct {
		SeatIDs []string `json:"seat_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.SeatIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_ids is required"})
	}
	if len(body.SeatIDs) > seatmap.MaxSeats {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "too many seats selected"})
	}
	gold, silver := seatmap.Counts(body.SeatIDs)
	return c.JSON(http.StatusOK, echo.Map{
		"gold_count":        gold,
		"silver_count":      silver,
		"number_of_tickets": gold + silver,
		"total_amount":      pricing.TotalForCounts(gold, silver),
	})
}
