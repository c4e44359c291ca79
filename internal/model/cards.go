package model

// CardSpec describes a graphics card type available in the shop.
type CardSpec struct {
	Name  string
	Power int
	Price float64
	Max   int
}

// Cards is the catalog of purchasable graphics cards, keyed by card type.
var Cards = map[string]CardSpec{
	"RTX_2080": {Name: "RTX 2080", Power: 2, Price: 6000, Max: 5},
	"RTX_3070": {Name: "RTX 3070", Power: 5, Price: 50000, Max: 6},
	"RTX_3090": {Name: "RTX 3090", Power: 10, Price: 100000, Max: 5},
}

// CardInfo looks up a card type. The second return is false for unknown types.
func CardInfo(cardType string) (CardSpec, bool) {
	spec, ok := Cards[cardType]
	return spec, ok
}

// CardSellPrice returns the resell price of a card (75% of list, truncated).
func CardSellPrice(cardType string) float64 {
	spec, ok := Cards[cardType]
	if !ok {
		return 0
	}
	return float64(int(spec.Price * 0.75))
}

// CardTypes returns the known card types in a stable order.
func CardTypes() []string {
	return []string{"RTX_2080", "RTX_3070", "RTX_3090"}
}
