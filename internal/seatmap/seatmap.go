// Package seatmap generates the ephemeral seating layout used during a
// single booking interaction and implements the selection rules applied
// to it.  Nothing here is persisted: a map lives only for the duration
// of one booking session and occupancy is randomly seeded demo data,
// not real availability.
package seatmap

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/sheshnag/movie-booking/internal/model"
)

// MaxSeats is the default cap on simultaneously selected seats.
const MaxSeats = 10

// Seat identifier prefixes.  Tier membership of a selection is derived
// purely from these prefixes.
const (
	goldPrefix   = "GOLD-"
	silverPrefix = "SILVER-"
)

// Layout constants.  The gold balcony holds 3 rows of 9 seats; the
// silver floor holds 10 rows with per-row counts summing to 155.
var (
	goldRows       = []string{"A", "B", "C"}
	silverRows     = []string{"D", "E", "F", "G", "H", "I", "J", "K", "L", "M"}
	silverRowSizes = []int{15, 15, 16, 16, 16, 16, 16, 15, 15, 15}
)

// Occupancy seed rates per tier.
const (
	goldBookedRate   = 0.20
	silverBookedRate = 0.25
)

// Generate builds a fresh seat map: 27 gold seats followed by 155
// silver seats.  Seat identity is deterministic; occupancy is drawn
// from rng so callers (and tests) can control the seeding.
func Generate(rng *rand.Rand) []model.Seat {
	seats := make([]model.Seat, 0, 27+155)
	for _, row := range goldRows {
		for n := 1; n <= 9; n++ {
			seats = append(seats, model.Seat{
				ID:       fmt.Sprintf("%s%s%d", goldPrefix, row, n),
				Row:      row,
				Number:   n,
				Tier:     "gold",
				IsBooked: rng.Float64() < goldBookedRate,
			})
		}
	}
	for i, row := range silverRows {
		for n := 1; n <= silverRowSizes[i]; n++ {
			seats = append(seats, model.Seat{
				ID:       fmt.Sprintf("%s%s%d", silverPrefix, row, n),
				Row:      row,
				Number:   n,
				Tier:     "silver",
				IsBooked: rng.Float64() < silverBookedRate,
			})
		}
	}
	return seats
}

// Toggle applies one click on a seat to the current selection and
// returns the new selection.  A booked seat is a no-op.  An already
// selected seat is deselected.  A new seat is added only while the
// selection holds fewer than maxSeats members; past the cap the click
// is silently ignored rather than rejected with an error.
func Toggle(seat model.Seat, selection []string, maxSeats int) []string {
	if seat.IsBooked {
		return selection
	}
	for i, id := range selection {
		if id == seat.ID {
			out := make([]string, 0, len(selection)-1)
			out = append(out, selection[:i]...)
			return append(out, selection[i+1:]...)
		}
	}
	if len(selection) >= maxSeats {
		return selection
	}
	return append(append([]string{}, selection...), seat.ID)
}

// Counts partitions a selection into gold and silver seat counts by
// identifier prefix.  Identifiers with neither prefix count as silver,
// matching the pricing fallback for unknown tiers.
func Counts(selection []string) (goldCount, silverCount int) {
	for _, id := range selection {
		if strings.HasPrefix(id, goldPrefix) {
			goldCount++
		} else {
			silverCount++
		}
	}
	return goldCount, silverCount
}

// Find returns the seat with the given identifier from a generated map,
// or false when no such seat exists.
func Find(seats []model.Seat, id string) (model.Seat, bool) {
	for _, s := range seats {
		if s.ID == id {
			return s, true
		}
	}
	return model.Seat{}, false
}
