package events

import "math/rand"

// Event is one malus entry: a flavor title plus the share of the player's
// wealth it may cost.
type Event struct {
	ID             int
	Title          string
	MinCostPercent float64
	MaxCostPercent float64
}

// catalog holds every malus event that can fire on a turn.
var catalog = []Event{
	{1, "You didn't declare your pool!", 0.005, 0.1},
	{2, "It's just another day", 0.005, 0.1},
	{3, "Time for grocery shopping", 0.005, 0.1},
	{4, "You've been robbed!", 0.1, 0.3},
	{5, "It's your friend's birthday", 0.005, 0.1},
	{6, "Netflix subscription", 0.001, 0.05},
	{7, "Gas bill", 0.01, 0.15},
	{8, "Electricity bill", 0.01, 0.15},
	{9, "Water bill", 0.005, 0.1},
	{10, "Need to buy a new fridge", 0.05, 0.2},
	{11, "Gave money to a homeless person", 0.001, 0.05},
	{12, "Roof leak repair", 0.05, 0.15},
	{13, "Wondering if you still have money", 0.005, 0.1},
	{14, "Graphics card broke", 0.1, 0.25},
	{15, "Caught a cold", 0.02, 0.1},
	{16, "Hospital visit for injury", 0.1, 0.3},
	{17, "Got scammed!", 0.15, 0.35},
	{18, "Annoying friend needs money", 0.05, 0.15},
	{19, "Need transportation - new car", 0.2, 0.5},
	{20, "Tuition fees", 0.1, 0.3},
	{21, "Cat destroyed mining rig", 0.15, 0.3},
	{22, "Cat died - vet bills", 0.05, 0.15},
	{23, "Speeding ticket", 0.02, 0.1},
	{24, "Phone bill", 0.005, 0.05},
	{25, "Restaurant bill", 0.01, 0.1},
	{26, "Didn't win the lottery", 0.005, 0.1},
}

// Triggered describes a malus event that fired, with its resolved cost.
type Triggered struct {
	Title string
	Cost  float64
}

// Manager rolls and resolves malus events. The random source is injected so
// each session rolls independently.
type Manager struct {
	rng *rand.Rand
}

// NewManager creates an event manager.
func NewManager(rng *rand.Rand) *Manager {
	return &Manager{rng: rng}
}

// ShouldTrigger decides whether a malus event fires this turn. The malus
// level is reduced by one for pools that dampen events, and nothing fires
// below the wealth threshold.
func (m *Manager) ShouldTrigger(malusLevel int, hasThreshold, poolReducesMalus bool) bool {
	if !hasThreshold {
		return false
	}
	if poolReducesMalus {
		malusLevel--
		if malusLevel < 0 {
			malusLevel = 0
		}
	}
	return m.rng.Intn(10) <= malusLevel
}

// TriggerRandom picks a random malus event and resolves its cost against the
// player's wealth. The cost is capped at half the player's dollars. Returns
// nil when the player has nothing to lose.
func (m *Manager) TriggerRandom(playerDollar float64) *Triggered {
	if playerDollar <= 0 {
		return nil
	}

	event := catalog[m.rng.Intn(len(catalog))]

	base := float64(10 + m.rng.Intn(11))
	low := playerDollar * event.MinCostPercent
	high := playerDollar * event.MaxCostPercent
	cost := base + low + (high-low)*m.rng.Float64()

	if maxCost := playerDollar * 0.5; cost > maxCost {
		cost = maxCost
	}

	return &Triggered{Title: event.Title, Cost: cost}
}
