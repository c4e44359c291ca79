package mining

import "github.com/JulesLeCurly/CryptoGame/internal/model"

// PoolID identifies a mining pool kind.
type PoolID string

const (
	PoolSolo     PoolID = "SOLO"
	PoolC53      PoolID = "C53"
	PoolBTC      PoolID = "BTC"
	PoolFBG      PoolID = "FBG"
	PoolHello    PoolID = "HELLO"
	PoolITS      PoolID = "ITS"
	PoolITSPlus  PoolID = "ITS+"
	PoolPlusPlus PoolID = "+=+"
)

// itsPlusSecret unlocks the hidden ITS+ variant when presented while joining ITS.
const itsPlusSecret = "3667"

// itsPlusWelcomeBonus is the one-time dollar bonus granted when ITS+ is
// first unlocked.
const itsPlusWelcomeBonus = 250

// poolSpec holds the static per-pool behavior knobs. Per-variant bonus and
// fulfillment policy replace the original's pool class hierarchy.
type poolSpec struct {
	name         string
	description  string
	dollarBonus  float64 // flat dollar stipend (negative = recurring fee)
	arobaseBonus float64 // flat arobase stipend
	instantSale  bool    // guarantees 100% sale fulfillment
	marketAlerts bool    // reports course extremes
	reducesMalus bool    // lowers random event probability
	soloJackpot  bool    // occasional large payout when not pooled
}

var pools = map[PoolID]poolSpec{
	PoolSolo: {
		name:        "Solo Mining",
		description: "Mine independently without pool benefits",
		soloJackpot: true,
	},
	PoolC53: {
		name:        "C53 Pool",
		description: "Balanced pool with $75 bonus per mining turn",
		dollarBonus: 75,
	},
	PoolBTC: {
		name:         "BTC Pool",
		description:  "Receive +0.25@ bonus per mining turn",
		arobaseBonus: 0.25,
	},
	PoolFBG: {
		name:        "FBG Pool",
		description: "All arobase for sale is sold instantly",
		instantSale: true,
	},
	PoolHello: {
		name:         "HELLO Pool",
		description:  "Receive market alerts and course analysis tools",
		marketAlerts: true,
	},
	PoolITS: {
		name:         "ITS Pool",
		description:  "Privacy-focused pool with reduced random events",
		reducesMalus: true,
	},
	PoolITSPlus: {
		name:         "ITS+ Pool",
		description:  "Enhanced ITS with welcome bonus and reduced malus",
		reducesMalus: true,
	},
	PoolPlusPlus: {
		name:        "+=+ Pool",
		description: "Risky pool - charges $1000 per turn. High risk, high reward?",
		dollarBonus: -1000,
	},
}

// listedPools is the display order for the pool menu. SOLO is never listed
// and ITS+ stays hidden until unlocked.
var listedPools = []PoolID{PoolC53, PoolBTC, PoolFBG, PoolHello, PoolITS, PoolITSPlus, PoolPlusPlus}

// Info returns display information for a pool.
func Info(id PoolID) (model.PoolInfo, bool) {
	spec, ok := pools[id]
	if !ok {
		return model.PoolInfo{}, false
	}
	return model.PoolInfo{ID: string(id), Name: spec.name, Description: spec.description}, true
}
