package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sheshnag/movie-booking/internal/model"
	"github.com/sheshnag/movie-booking/internal/seatmap"
)

func TestGetSeatMap(t *testing.T) {
	e := echo.New()
	h := &SeatMapHandler{}

	req := httptest.NewRequest(http.MethodGet, "/v1/seatmap", nil)
	rec := httptest.NewRecorder()
	if err := h.GetSeatMap(e.NewContext(req, rec)); err != nil {
		t.Fatalf("GetSeatMap: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Seats    []model.Seat `json:"seats"`
		MaxSeats int          `json:"max_seats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Seats) != 182 {
		t.Fatalf("seat count = %d, want 182", len(resp.Seats))
	}
	if resp.MaxSeats != seatmap.MaxSeats {
		t.Fatalf("max_seats = %d, want %d", resp.MaxSeats, seatmap.MaxSeats)
	}
}

func TestQuoteSelection(t *testing.T) {
	e := echo.New()
	h := &SeatMapHandler{}

	c, rec := postJSON(e, "/v1/bookings/quote", `{"seat_ids":["GOLD-A1","SILVER-D2","SILVER-D3"]}`)
	if err := h.QuoteSelection(c); err != nil {
		t.Fatalf("QuoteSelection: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		GoldCount       int `json:"gold_count"`
		SilverCount     int `json:"silver_count"`
		NumberOfTickets int `json:"number_of_tickets"`
		TotalAmount     int `json:"total_amount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.GoldCount != 1 || resp.SilverCount != 2 {
		t.Fatalf("counts = %d gold / %d silver, want 1/2", resp.GoldCount, resp.SilverCount)
	}
	if resp.TotalAmount != 950 || resp.NumberOfTickets != 3 {
		t.Fatalf("quote = %d for %d tickets, want 950 for 3", resp.TotalAmount, resp.NumberOfTickets)
	}
}

func TestQuoteSelectionRejections(t *testing.T) {
	e := echo.New()
	h := &SeatMapHandler{}

	c, rec := postJSON(e, "/v1/bookings/quote", `{"seat_ids":[]}`)
	if err := h.QuoteSelection(c); err != nil {
		t.Fatalf("QuoteSelection: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty selection status = %d, want 400", rec.Code)
	}

	ids := `["SILVER-D1","SILVER-D2","SILVER-D3","SILVER-D4","SILVER-D5","SILVER-D6","SILVER-D7","SILVER-D8","SILVER-D9","SILVER-D10","SILVER-D11"]`
	c, rec = postJSON(e, "/v1/bookings/quote", `{"seat_ids":`+ids+`}`)
	if err := h.QuoteSelection(c); err != nil {
		t.Fatalf("QuoteSelection: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("oversized selection status = %d, want 400", rec.Code)
	}
}
