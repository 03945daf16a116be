// Package pricing holds the static ticket tier reference data and the
// pure price computations used by the booking flow.  Totals are always
// derived here; a client supplied amount is never trusted.
package pricing

// Tier identifiers and unit prices in whole currency units.
const (
	TierSilver = "silver"
	TierGold   = "gold"

	SilverPrice = 250
	GoldPrice   = 450
)

// Tier describes a ticket service class.  Name, Description and
// Features are display data only; Price is the unit price used for
// total computation.
type Tier struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Features    []string `json:"features"`
}

// Tiers lists the offered ticket tiers in display order.
var Tiers = []Tier{
	{
		ID:          TierSilver,
		Name:        "Silver Ticket",
		Description: "Standard seating with great view",
		Price:       SilverPrice,
		Features: []string{
			"Standard seating",
			"Great view of the screen",
			"Comfortable chairs",
			"Standard sound quality",
		},
	},
	{
		ID:          TierGold,
		Name:        "Gold Ticket",
		Description: "Premium balcony seating with luxury experience",
		Price:       GoldPrice,
		Features: []string{
			"Premium balcony seating",
			"Best view of the screen",
			"Recliner chairs",
			"Premium sound quality",
			"Extra legroom",
			"Priority entry",
		},
	},
}

// TierByID returns the tier for the given identifier.  Unknown
// identifiers resolve to the silver tier; this fallback is relied on by
// the booking flow and must not be turned into an error.
func TierByID(id string) Tier {
	for _, t := range Tiers {
		if t.ID == id {
			return t
		}
	}
	return Tiers[0]
}

// Price returns the unit price for the given tier identifier, with the
// same silver fallback as TierByID.
func Price(tierID string) int {
	return TierByID(tierID).Price
}

// Total computes the total amount for quantity tickets of one tier.
func Total(tierID string, quantity int) int {
	return Price(tierID) * quantity
}

// TotalForCounts computes the total amount for a mixed seat selection
// partitioned into gold and silver seat counts.
func TotalForCounts(goldCount, silverCount int) int {
	return goldCount*GoldPrice + silverCount*SilverPrice
}
