package model

import "testing"

func TestCardInfo(t *testing.T) {
	spec, ok := CardInfo("RTX_2080")
	if !ok {
		t.Fatal("RTX_2080 not found")
	}
	if spec.Power != 2 || spec.Price != 6000 || spec.Max != 5 {
		t.Errorf("RTX_2080 spec = %+v", spec)
	}

	if _, ok := CardInfo("GTX_9999"); ok {
		t.Error("unknown card reported as known")
	}
}

func TestCardSellPrice(t *testing.T) {
	tests := []struct {
		cardType string
		want     float64
	}{
		{"RTX_2080", 4500},
		{"RTX_3070", 37500},
		{"RTX_3090", 75000},
		{"GTX_9999", 0},
	}
	for _, tt := range tests {
		if got := CardSellPrice(tt.cardType); got != tt.want {
			t.Errorf("CardSellPrice(%s) = %v, want %v", tt.cardType, got, tt.want)
		}
	}
}

func TestCardTypes_CoverCatalog(t *testing.T) {
	types := CardTypes()
	if len(types) != len(Cards) {
		t.Fatalf("CardTypes lists %d types, catalog has %d", len(types), len(Cards))
	}
	for _, ct := range types {
		if _, ok := Cards[ct]; !ok {
			t.Errorf("listed type %q missing from catalog", ct)
		}
	}
}

func TestCollectibles(t *testing.T) {
	spec, ok := CollectibleInfo("question")
	if !ok {
		t.Fatal("question trophy not found")
	}
	if spec.Price != 0 {
		t.Errorf("question trophy price = %v, want 0 (earned only)", spec.Price)
	}

	types := CollectibleTypes()
	if len(types) != len(Collectibles) {
		t.Fatalf("CollectibleTypes lists %d types, catalog has %d", len(types), len(Collectibles))
	}
	for _, it := range types {
		if _, ok := Collectibles[it]; !ok {
			t.Errorf("listed type %q missing from catalog", it)
		}
	}
}
