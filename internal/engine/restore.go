package engine

import (
	"fmt"
	"math/rand"

	"github.com/JulesLeCurly/CryptoGame/internal/config"
	"github.com/JulesLeCurly/CryptoGame/internal/events"
	"github.com/JulesLeCurly/CryptoGame/internal/market"
	"github.com/JulesLeCurly/CryptoGame/internal/mining"
	"github.com/JulesLeCurly/CryptoGame/internal/recorder"
	"github.com/JulesLeCurly/CryptoGame/internal/wallet"
)

// Restore rebuilds a full engine from a decoded save tree. Any missing or
// malformed subtree fails the whole load; no partial state escapes.
func Restore(data map[string]any, rec recorder.Recorder, rng *rand.Rand) (*Engine, error) {
	sessionData, ok := data["session"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("save missing session data")
	}
	marketData, ok := data["market"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("save missing market data")
	}
	walletData, ok := data["wallet"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("save missing wallet data")
	}
	miningData, ok := data["mining"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("save missing mining data")
	}

	session, err := config.SessionFromMap(sessionData)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	mkt, err := market.FromMap(marketData)
	if err != nil {
		return nil, fmt.Errorf("restore market: %w", err)
	}
	w := wallet.FromMap(walletData)
	mm := mining.FromMap(miningData, rng)

	return New(session, mkt, w, mm, events.NewManager(rng), rec, rng), nil
}
