// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully
// persisted.  It carries enough information for downstream consumers to
// log or notify without reading the booking store.
type BookingCreatedEvent struct {
	BookingID       string   `json:"booking_id"`
	CustomerName    string   `json:"customer_name"`
	CustomerEmail   string   `json:"customer_email"`
	MovieID         string   `json:"movie_id"`
	MovieTitle      string   `json:"movie_title"`
	Showtime        string   `json:"showtime"`
	TicketTier      string   `json:"ticket_tier"`
	NumberOfTickets int      `json:"number_of_tickets"`
	SeatIDs         []string `json:"seat_ids,omitempty"`
	TotalAmount     int      `json:"total_amount"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"created_at"`
}
