package model

// CollectibleSpec describes a trophy item. Price 0 means the item cannot be
// purchased and is only awarded through achievements.
type CollectibleSpec struct {
	Symbol string
	Name   string
	Price  float64
	Max    int
}

// Collectibles is the catalog of trophy items, keyed by item type.
var Collectibles = map[string]CollectibleSpec{
	"hashtag":     {Symbol: "#", Name: "Trophy", Price: 1000000, Max: 9},
	"exclamation": {Symbol: "!", Name: "Pro Trader Trophy", Price: 50000000, Max: 9},
	"question":    {Symbol: "?", Name: "99.99% Mining Trophy", Price: 0, Max: 9},
}

// CollectibleInfo looks up a collectible type.
func CollectibleInfo(itemType string) (CollectibleSpec, bool) {
	spec, ok := Collectibles[itemType]
	return spec, ok
}

// CollectibleTypes returns the known collectible types in a stable order.
func CollectibleTypes() []string {
	return []string{"hashtag", "exclamation", "question"}
}
