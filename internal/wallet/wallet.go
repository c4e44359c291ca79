package wallet

import (
	"errors"
	"math"

	"github.com/JulesLeCurly/CryptoGame/internal/model"
)

// Rejection errors. Every guarded mutation either fully applies or returns one
// of these with state unchanged.
var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInsufficientArobase = errors.New("insufficient arobase")
	ErrUnknownCard         = errors.New("unknown card type")
	ErrUnknownCollectible  = errors.New("unknown collectible")
	ErrNotPurchasable      = errors.New("item cannot be purchased")
	ErrMaxReached          = errors.New("maximum count reached")
	ErrNothingToSell       = errors.New("nothing to sell")
	ErrVictoryOwned        = errors.New("victory already purchased")
)

// Wallet holds the player's currencies, hardware, trophies and running
// statistics. Escrowed arobase (for sale) is disjoint from the held balance.
type Wallet struct {
	dollar         float64
	arobase        float64
	arobaseForSale float64

	cards        map[string]int
	collectibles map[string]int

	maxDollar  float64
	minDollar  float64
	maxArobase float64
	minArobase float64

	victoryPurchased bool
}

// New creates a wallet with the given starting balances.
func New(startingDollar, startingArobase float64) *Wallet {
	w := &Wallet{
		dollar:       startingDollar,
		arobase:      startingArobase,
		cards:        make(map[string]int),
		collectibles: make(map[string]int),
		maxDollar:    startingDollar,
		minDollar:    startingDollar,
		maxArobase:   startingArobase,
		minArobase:   startingArobase,
	}
	for _, t := range model.CardTypes() {
		w.cards[t] = 0
	}
	for _, t := range model.CollectibleTypes() {
		w.collectibles[t] = 0
	}
	return w
}

// Dollar returns the dollar balance.
func (w *Wallet) Dollar() float64 { return w.dollar }

// Arobase returns the held arobase balance (excluding escrow).
func (w *Wallet) Arobase() float64 { return w.arobase }

// ArobaseForSale returns the escrowed arobase pending sale.
func (w *Wallet) ArobaseForSale() float64 { return w.arobaseForSale }

// MaxDollar returns the highest dollar balance seen.
func (w *Wallet) MaxDollar() float64 { return w.maxDollar }

// MinDollar returns the lowest dollar balance seen.
func (w *Wallet) MinDollar() float64 { return w.minDollar }

// MaxArobase returns the highest arobase balance seen.
func (w *Wallet) MaxArobase() float64 { return w.maxArobase }

// MinArobase returns the lowest arobase balance seen.
func (w *Wallet) MinArobase() float64 { return w.minArobase }

// VictoryPurchased reports whether the victory condition has been bought.
func (w *Wallet) VictoryPurchased() bool { return w.victoryPurchased }

// CardCount returns how many cards of the given type are owned.
func (w *Wallet) CardCount(cardType string) int { return w.cards[cardType] }

// CollectibleCount returns how many of the given trophy are owned.
func (w *Wallet) CollectibleCount(itemType string) int { return w.collectibles[itemType] }

// Cards returns a copy of the card inventory.
func (w *Wallet) Cards() map[string]int {
	c := make(map[string]int, len(w.cards))
	for k, v := range w.cards {
		c[k] = v
	}
	return c
}

// Collectibles returns a copy of the collectible inventory.
func (w *Wallet) Collectibles() map[string]int {
	c := make(map[string]int, len(w.collectibles))
	for k, v := range w.collectibles {
		c[k] = v
	}
	return c
}

// TotalPower sums the mining power of all owned cards.
func (w *Wallet) TotalPower() int {
	power := 0
	for cardType, count := range w.cards {
		if spec, ok := model.CardInfo(cardType); ok {
			power += count * spec.Power
		}
	}
	return power
}

// CanAfford reports whether the dollar balance covers the given cost.
func (w *Wallet) CanAfford(cost float64) bool {
	return w.dollar >= cost
}

// AddDollar credits dollars.
func (w *Wallet) AddDollar(amount float64) {
	w.dollar += amount
	w.updateStats()
}

// RemoveDollar debits dollars, rejecting if the balance is insufficient.
func (w *Wallet) RemoveDollar(amount float64) error {
	if amount > w.dollar {
		return ErrInsufficientFunds
	}
	w.dollar -= amount
	w.updateStats()
	return nil
}

// AddArobase credits arobase.
func (w *Wallet) AddArobase(amount float64) {
	w.arobase += amount
	w.updateStats()
}

// RemoveArobase debits arobase, rejecting if the balance is insufficient.
func (w *Wallet) RemoveArobase(amount float64) error {
	if amount > w.arobase {
		return ErrInsufficientArobase
	}
	w.arobase -= amount
	w.updateStats()
	return nil
}

// PutArobaseForSale moves held arobase into escrow pending sale.
func (w *Wallet) PutArobaseForSale(amount float64) error {
	if amount > w.arobase {
		return ErrInsufficientArobase
	}
	w.arobase -= amount
	w.arobaseForSale += amount
	return nil
}

// CancelSale returns all escrowed arobase to the held balance.
func (w *Wallet) CancelSale() {
	w.arobase += w.arobaseForSale
	w.arobaseForSale = 0
}

// ProcessSale settles a fulfilled sale: the sold amount is clamped to the
// escrowed balance, dollars are credited, escrow debited. Returns the amount
// actually settled.
func (w *Wallet) ProcessSale(soldAmount, dollarReceived float64) float64 {
	if soldAmount > w.arobaseForSale {
		soldAmount = w.arobaseForSale
	}
	w.arobaseForSale -= soldAmount
	w.dollar += dollarReceived
	w.updateStats()
	return soldAmount
}

// BuyCard purchases one card of the given type, enforcing the per-type
// maximum and affordability.
func (w *Wallet) BuyCard(cardType string) error {
	spec, ok := model.CardInfo(cardType)
	if !ok {
		return ErrUnknownCard
	}
	if w.cards[cardType] >= spec.Max {
		return ErrMaxReached
	}
	if !w.CanAfford(spec.Price) {
		return ErrInsufficientFunds
	}
	w.dollar -= spec.Price
	w.cards[cardType]++
	w.updateStats()
	return nil
}

// SellCard sells one card of the given type at 75% of list price.
func (w *Wallet) SellCard(cardType string) (float64, error) {
	if w.cards[cardType] == 0 {
		return 0, ErrNothingToSell
	}
	price := model.CardSellPrice(cardType)
	w.cards[cardType]--
	w.dollar += price
	w.updateStats()
	return price, nil
}

// BuyCollectible purchases one trophy. Items without a purchase price are
// earned only and rejected here.
func (w *Wallet) BuyCollectible(itemType string) error {
	spec, ok := model.CollectibleInfo(itemType)
	if !ok {
		return ErrUnknownCollectible
	}
	if spec.Price == 0 {
		return ErrNotPurchasable
	}
	if w.collectibles[itemType] >= spec.Max {
		return ErrMaxReached
	}
	if !w.CanAfford(spec.Price) {
		return ErrInsufficientFunds
	}
	w.dollar -= spec.Price
	w.collectibles[itemType]++
	w.updateStats()
	return nil
}

// AwardCollectible grants a trophy without payment (achievements).
func (w *Wallet) AwardCollectible(itemType string) error {
	spec, ok := model.CollectibleInfo(itemType)
	if !ok {
		return ErrUnknownCollectible
	}
	if w.collectibles[itemType] >= spec.Max {
		return ErrMaxReached
	}
	w.collectibles[itemType]++
	return nil
}

// BuyVictory purchases the victory condition. Both costs must be affordable;
// the debit and the one-way flag are applied atomically.
func (w *Wallet) BuyVictory(costDollar, costArobase float64) error {
	if w.victoryPurchased {
		return ErrVictoryOwned
	}
	if w.dollar < costDollar {
		return ErrInsufficientFunds
	}
	if w.arobase < costArobase {
		return ErrInsufficientArobase
	}
	w.dollar -= costDollar
	w.arobase -= costArobase
	w.victoryPurchased = true
	w.updateStats()
	return nil
}

// Score computes the player's score from total net worth at the given course.
// The formula (floor(total * 0.8 * 0.001) - 17, clamped to zero) comes from
// the original game and must stay bit-for-bit stable for save compatibility.
func (w *Wallet) Score(currentCourse float64) int {
	total := w.dollar
	total += w.arobase * currentCourse
	total += w.arobaseForSale * currentCourse

	for cardType, count := range w.cards {
		if spec, ok := model.CardInfo(cardType); ok {
			total += float64(count) * spec.Price
		}
	}
	for itemType, count := range w.collectibles {
		if spec, ok := model.CollectibleInfo(itemType); ok && spec.Price > 0 {
			total += float64(count) * spec.Price
		}
	}

	score := int(total*0.8*0.001) - 17
	if score < 0 {
		score = 0
	}
	return score
}

// RoundValues rounds dollar to 2 decimals and arobase quantities to 5,
// called once per turn to stop floating drift from accumulating.
func (w *Wallet) RoundValues() {
	w.dollar = roundTo(w.dollar, 2)
	w.arobase = roundTo(w.arobase, 5)
	w.arobaseForSale = roundTo(w.arobaseForSale, 5)
}

func (w *Wallet) updateStats() {
	if w.dollar > w.maxDollar {
		w.maxDollar = w.dollar
	}
	if w.dollar < w.minDollar {
		w.minDollar = w.dollar
	}
	if w.arobase > w.maxArobase {
		w.maxArobase = w.arobase
	}
	if w.arobase < w.minArobase {
		w.minArobase = w.arobase
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// ToMap serializes the wallet for saving.
func (w *Wallet) ToMap() map[string]any {
	cards := make(map[string]any, len(w.cards))
	for k, v := range w.cards {
		cards[k] = float64(v)
	}
	collectibles := make(map[string]any, len(w.collectibles))
	for k, v := range w.collectibles {
		collectibles[k] = float64(v)
	}
	return map[string]any{
		"dollar":            w.dollar,
		"arobase":           w.arobase,
		"arobase_for_sale":  w.arobaseForSale,
		"cards":             cards,
		"collectibles":      collectibles,
		"max_dollar":        w.maxDollar,
		"min_dollar":        w.minDollar,
		"max_arobase":       w.maxArobase,
		"min_arobase":       w.minArobase,
		"victory_purchased": w.victoryPurchased,
	}
}

// FromMap restores a wallet from saved data.
func FromMap(data map[string]any) *Wallet {
	dollar := floatField(data, "dollar", 250)
	arobase := floatField(data, "arobase", 0)

	w := New(dollar, arobase)
	w.arobaseForSale = floatField(data, "arobase_for_sale", 0)
	w.maxDollar = floatField(data, "max_dollar", dollar)
	w.minDollar = floatField(data, "min_dollar", dollar)
	w.maxArobase = floatField(data, "max_arobase", arobase)
	w.minArobase = floatField(data, "min_arobase", arobase)
	if v, ok := data["victory_purchased"].(bool); ok {
		w.victoryPurchased = v
	}

	if raw, ok := data["cards"].(map[string]any); ok {
		for k, v := range raw {
			if f, ok := toFloat(v); ok {
				w.cards[k] = int(math.Round(f))
			}
		}
	}
	if raw, ok := data["collectibles"].(map[string]any); ok {
		for k, v := range raw {
			if f, ok := toFloat(v); ok {
				w.collectibles[k] = int(math.Round(f))
			}
		}
	}

	return w
}

func floatField(data map[string]any, key string, fallback float64) float64 {
	if f, ok := toFloat(data[key]); ok {
		return f
	}
	return fallback
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
