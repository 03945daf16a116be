package model

// Booking records a single customer's reservation request for one
// screening: the movie, the showtime, the ticket tier or seats chosen,
// the customer's contact details and the computed total.
//
// Fields:
//  ID              – unique booking identifier, assigned at creation.
//  CustomerName    – customer's full name.
//  CustomerEmail   – customer's email address.
//  CustomerPhone   – customer's phone number.
//  MovieTitle      – title of the movie being booked.
//  MovieID         – catalog identifier of the movie.
//  Showtime        – showtime chosen from the movie's offered set.
//  TicketTier      – service class of the tickets ("silver" or "gold").
//  NumberOfTickets – how many tickets the booking covers.
//  SeatIDs         – seat identifiers when booked via seat selection.
//  TotalAmount     – total price in currency units, always recomputed
//                    server-side from tier and count.
//  BookingDate     – ISO-8601 creation timestamp.
//  Status          – lifecycle state of the booking.
//  PaymentID       – external payment reference, reserved for future use.
//  QRCode          – ticket QR payload, reserved for future use.
type Booking struct {
	ID              string   `json:"id"`
	CustomerName    string   `json:"customer_name"`
	CustomerEmail   string   `json:"customer_email"`
	CustomerPhone   string   `json:"customer_phone"`
	MovieTitle      string   `json:"movie_title"`
	MovieID         string   `json:"movie_id"`
	Showtime        string   `json:"showtime"`
	TicketTier      string   `json:"ticket_tier"`
	NumberOfTickets int      `json:"number_of_tickets"`
	SeatIDs         []string `json:"seat_ids,omitempty"`
	TotalAmount     int      `json:"total_amount"`
	BookingDate     string   `json:"booking_date"`
	Status          string   `json:"status"`
	PaymentID       string   `json:"payment_id,omitempty"`
	QRCode          string   `json:"qr_code,omitempty"`
}

// Booking lifecycle states.  A booking is created as StatusPending and
// moves to any other state only through an explicit admin update.  No
// transition graph is enforced.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the recognised booking states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPaid, StatusCancelled:
		return true
	}
	return false
}
