package pricing

import "testing"

func TestTotalMultipliesUnitPrice(t *testing.T) {
	tests := []struct {
		tier string
		qty  int
		want int
	}{
		{TierSilver, 1, 250},
		{TierSilver, 4, 1000},
		{TierGold, 1, 450},
		{TierGold, 2, 900},
		{TierGold, 10, 4500},
	}
	for _, tc := range tests {
		if got := Total(tc.tier, tc.qty); got != tc.want {
			t.Errorf("Total(%q, %d) = %d, want %d", tc.tier, tc.qty, got, tc.want)
		}
	}
}

func TestUnknownTierFallsBackToSilver(t *testing.T) {
	for _, id := range []string{"", "platinum", "GOLD", "Silver "} {
		if got := Price(id); got != SilverPrice {
			t.Errorf("Price(%q) = %d, want silver price %d", id, got, SilverPrice)
		}
		if got := TierByID(id).ID; got != TierSilver {
			t.Errorf("TierByID(%q).ID = %q, want %q", id, got, TierSilver)
		}
	}
}

func TestTotalForCounts(t *testing.T) {
	if got := TotalForCounts(1, 1); got != 700 {
		t.Fatalf("TotalForCounts(1, 1) = %d, want 700", got)
	}
	if got := TotalForCounts(3, 0); got != 1350 {
		t.Fatalf("TotalForCounts(3, 0) = %d, want 1350", got)
	}
	if got := TotalForCounts(0, 0); got != 0 {
		t.Fatalf("TotalForCounts(0, 0) = %d, want 0", got)
	}
}
