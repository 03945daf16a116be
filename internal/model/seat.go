package model

// Seat describes a single seat of the ephemeral seat map generated for
// one booking session.  Seats are identified by a tier prefix, row
// letter and seat number (e.g. "GOLD-A3").  Occupancy is seeded at map
// generation time and is demo data, not real availability.
//
// Fields:
//  ID       – unique seat identifier within one generated map.
//  Row      – row letter.
//  Number   – seat number within the row.
//  Tier     – seat tier ("gold" or "silver").
//  IsBooked – whether the seat was pre-booked when the map was generated.
type Seat struct {
	ID       string `json:"id"`
	Row      string `json:"row"`
	Number   int    `json:"number"`
	Tier     string `json:"tier"`
	IsBooked bool   `json:"is_booked"`
}
