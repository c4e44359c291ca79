package mining

import (
	"errors"
	"math"
	"math/rand"

	"github.com/JulesLeCurly/CryptoGame/internal/model"
)

// Rejection errors. State is unchanged whenever one is returned.
var (
	ErrCooldownActive = errors.New("pool switch cooldown active")
	ErrUnknownPool    = errors.New("unknown pool")
)

const (
	// joinCooldownTurns is how many mining turns must pass before the
	// player can switch pools again.
	joinCooldownTurns = 10

	// soloJackpotOdds is the 1-in-N chance of a solo jackpot per turn.
	soloJackpotOdds = 200
)

// soloJackpotAmount matches the original payout: round((1000000/70)*1000)/1000.
var soloJackpotAmount = math.Round(1000000.0/70*1000) / 1000

// Manager owns pool membership, the switch cooldown and the hidden ITS+
// unlock flag. The random source is injected so sessions stay independent
// and tests can seed it.
type Manager struct {
	currentPool       PoolID
	cooldownRemaining int
	itsPlusUnlocked   bool
	rng               *rand.Rand
}

// NewManager creates a manager with no pool membership.
func NewManager(rng *rand.Rand) *Manager {
	return &Manager{rng: rng}
}

// CurrentPool returns the active pool, or "" when mining solo.
func (m *Manager) CurrentPool() PoolID { return m.currentPool }

// CooldownRemaining returns how many mining turns remain before the player
// may switch pools.
func (m *Manager) CooldownRemaining() int { return m.cooldownRemaining }

// ITSPlusUnlocked reports whether the hidden ITS+ variant has been unlocked.
func (m *Manager) ITSPlusUnlocked() bool { return m.itsPlusUnlocked }

// CanSwitchPool reports whether a pool change is currently allowed.
func (m *Manager) CanSwitchPool() bool { return m.cooldownRemaining == 0 }

// CurrentPoolName returns the display name of the active pool.
func (m *Manager) CurrentPoolName() string {
	if m.currentPool == "" {
		return "Solo Mining"
	}
	return pools[m.currentPool].name
}

// AvailablePools lists joinable pools. SOLO is implicit and never listed;
// ITS+ stays hidden until unlocked.
func (m *Manager) AvailablePools() []model.PoolInfo {
	available := make([]model.PoolInfo, 0, len(listedPools))
	for _, id := range listedPools {
		if id == PoolITSPlus && !m.itsPlusUnlocked {
			continue
		}
		info, _ := Info(id)
		available = append(available, info)
	}
	return available
}

// JoinPool switches to the given pool. Presenting the correct secret while
// targeting ITS activates the hidden ITS+ variant instead and permanently
// sets its unlock flag; the first-ever unlock also grants a one-time welcome
// bonus. On success the switch cooldown resets.
func (m *Manager) JoinPool(id PoolID, secret string) (model.JoinResult, error) {
	if !m.CanSwitchPool() {
		return model.JoinResult{}, ErrCooldownActive
	}

	firstUnlock := false
	if id == PoolITS && secret == itsPlusSecret {
		id = PoolITSPlus
		if !m.itsPlusUnlocked {
			m.itsPlusUnlocked = true
			firstUnlock = true
		}
	}

	if _, ok := pools[id]; !ok {
		return model.JoinResult{}, ErrUnknownPool
	}
	if id == PoolITSPlus && !m.itsPlusUnlocked {
		return model.JoinResult{}, ErrUnknownPool
	}

	m.currentPool = id
	m.cooldownRemaining = joinCooldownTurns

	result := model.JoinResult{Pool: pools[id].name}
	if firstUnlock {
		result.WelcomeBonus = itsPlusWelcomeBonus
		result.Message = "Welcome to ITS+! Received $250"
	}
	return result, nil
}

// LeavePool leaves the current pool unconditionally. The cooldown is not
// touched.
func (m *Manager) LeavePool() {
	m.currentPool = ""
}

// Mine performs one mining action. The cooldown decrements exactly once per
// call regardless of pool membership. Pooled mining (any pool but SOLO)
// yields a baseline of max((power+1)/100, 0.2) arobase plus the pool's own
// bonus; solo mining occasionally pays a large jackpot instead.
func (m *Manager) Mine(power int) model.MineReward {
	if m.cooldownRemaining > 0 {
		m.cooldownRemaining--
	}

	var reward model.MineReward

	if m.currentPool != "" && m.currentPool != PoolSolo {
		gain := (float64(power) + 1) / 100
		if gain < 0.2 {
			gain = 0.2
		}
		reward.Arobase += gain
		reward.Messages = append(reward.Messages, "mined baseline yield")
	}

	spec, pooled := pools[m.currentPool]
	if !pooled {
		spec = pools[PoolSolo]
	}

	if spec.soloJackpot {
		if m.rng.Intn(soloJackpotOdds) == 0 {
			reward.Arobase += soloJackpotAmount
			reward.Messages = append(reward.Messages, "SOLO JACKPOT!")
		}
		return reward
	}

	if spec.arobaseBonus > 0 {
		reward.Arobase += spec.arobaseBonus
		reward.Messages = append(reward.Messages, "pool arobase bonus")
	}
	if spec.dollarBonus != 0 {
		reward.Dollar += spec.dollarBonus
		if spec.dollarBonus > 0 {
			reward.Messages = append(reward.Messages, "pool dollar bonus")
		} else {
			reward.Messages = append(reward.Messages, "pool fee charged")
		}
	}

	return reward
}

// ProcessSale returns how much of the escrowed amount is fulfilled this
// turn: everything for an instant-sale pool, otherwise a uniform fraction
// between 70% and 100% of the request.
func (m *Manager) ProcessSale(amountForSale, course float64) float64 {
	if spec, ok := pools[m.currentPool]; ok && spec.instantSale {
		return amountForSale
	}
	return amountForSale * (0.7 + 0.3*m.rng.Float64())
}

// MarketAlerts reports course extremes when the active pool provides market
// analysis.
func (m *Manager) MarketAlerts(currentCourse, courseMax, courseMin float64) []string {
	spec, ok := pools[m.currentPool]
	if !ok || !spec.marketAlerts {
		return nil
	}
	var alerts []string
	if currentCourse >= courseMax {
		alerts = append(alerts, "ALERT: Course at ALL-TIME HIGH!")
	}
	if currentCourse <= courseMin {
		alerts = append(alerts, "ALERT: Course at ALL-TIME LOW!")
	}
	return alerts
}

// ReducesMalus reports whether the active pool lowers the random event
// probability.
func (m *Manager) ReducesMalus() bool {
	spec, ok := pools[m.currentPool]
	return ok && spec.reducesMalus
}

// ToMap serializes the manager for saving.
func (m *Manager) ToMap() map[string]any {
	return map[string]any{
		"current_pool":       string(m.currentPool),
		"cooldown_remaining": float64(m.cooldownRemaining),
		"its_plus_unlocked":  m.itsPlusUnlocked,
	}
}

// FromMap restores a manager from saved data.
func FromMap(data map[string]any, rng *rand.Rand) *Manager {
	m := NewManager(rng)
	if v, ok := data["current_pool"].(string); ok {
		if _, known := pools[PoolID(v)]; known {
			m.currentPool = PoolID(v)
		}
	}
	if v, ok := data["cooldown_remaining"].(float64); ok {
		m.cooldownRemaining = int(math.Round(v))
	}
	if v, ok := data["its_plus_unlocked"].(bool); ok {
		m.itsPlusUnlocked = v
	}
	return m
}
