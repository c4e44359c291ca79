package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/JulesLeCurly/CryptoGame/internal/config"
	"github.com/JulesLeCurly/CryptoGame/internal/events"
	"github.com/JulesLeCurly/CryptoGame/internal/market"
	"github.com/JulesLeCurly/CryptoGame/internal/mining"
	"github.com/JulesLeCurly/CryptoGame/internal/model"
	"github.com/JulesLeCurly/CryptoGame/internal/recorder"
	"github.com/JulesLeCurly/CryptoGame/internal/wallet"
)

// malusDollarThreshold gates random events: nothing fires while the player
// holds this much or less.
const malusDollarThreshold = 1000

// GameOverReason explains why a session ended.
type GameOverReason string

const (
	ReasonBankruptcy GameOverReason = "Bankruptcy - Negative balance"
	ReasonTimeLimit  GameOverReason = "Time limit reached"
	ReasonTurnLimit  GameOverReason = "Turn limit reached"
	ReasonVictory    GameOverReason = "Victory purchased"
)

// TurnReport is everything that happened during one processed turn, for the
// rendering layer to display.
type TurnReport struct {
	Turn         int
	Course       float64
	CourseChange float64
	Alerts       []string
	SoldArobase  float64
	SaleProceeds float64
	Reward       model.MineReward
	Event        *events.Triggered
	PepeAppeared bool
}

// Engine composes the market, wallet and mining manager and drives them one
// turn at a time. Turns are processed atomically with respect to observable
// state; no two turns are ever in flight.
type Engine struct {
	Session  *config.Session
	Market   *market.Market
	Wallet   *wallet.Wallet
	Mining   *mining.Manager
	Events   *events.Manager
	Recorder recorder.Recorder

	rng *rand.Rand
}

// New wires an engine from its collaborators.
func New(session *config.Session, mkt *market.Market, w *wallet.Wallet, mm *mining.Manager, em *events.Manager, rec recorder.Recorder, rng *rand.Rand) *Engine {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Engine{
		Session:  session,
		Market:   mkt,
		Wallet:   w,
		Mining:   mm,
		Events:   em,
		Recorder: rec,
		rng:      rng,
	}
}

// MalusLevel derives the random event probability level from the seed.
func (e *Engine) MalusLevel() int {
	return int(e.Session.Seed / 10000)
}

// Tax is the per-trade transaction tax, growing with the richest the player
// has ever been.
func (e *Engine) Tax() float64 {
	return float64(int(e.Wallet.MaxDollar() / 1000))
}

// ProcessTurn runs one full turn in fixed order: market advance, market
// alerts, sale fulfillment, mining reward, malus roll, value rounding.
func (e *Engine) ProcessTurn() *TurnReport {
	e.Session.TurnCount++
	e.Session.LastUpdate = time.Now()

	e.Market.AdvanceTurn()

	report := &TurnReport{
		Turn:         e.Market.CurrentTurn(),
		Course:       e.Market.CurrentCourse(),
		CourseChange: e.Market.CourseChange(),
	}

	report.Alerts = e.Mining.MarketAlerts(
		e.Market.CurrentCourse(),
		e.Market.CourseMax(),
		e.Market.CourseMin(),
	)

	if e.Wallet.ArobaseForSale() > 0 {
		sold := e.Mining.ProcessSale(e.Wallet.ArobaseForSale(), e.Market.CurrentCourse())
		if sold > 0 {
			proceeds := sold * e.Market.CurrentCourse()
			settled := e.Wallet.ProcessSale(sold, proceeds)
			report.SoldArobase = settled
			report.SaleProceeds = proceeds
			e.record(func() error {
				return e.Recorder.RecordTrade(&recorder.TradeEvent{
					Turn:      report.Turn,
					EventType: "SALE_SETTLED",
					Amount:    settled,
					Dollar:    proceeds,
				})
			})
		}
	}

	reward := e.Mining.Mine(e.Wallet.TotalPower())
	if reward.Arobase > 0 {
		e.Wallet.AddArobase(reward.Arobase)
	}
	if reward.Dollar > 0 {
		e.Wallet.AddDollar(reward.Dollar)
	} else if reward.Dollar < 0 {
		// A failed fee deduction leaves the wallet untouched, same as
		// any other rejected removal.
		_ = e.Wallet.RemoveDollar(-reward.Dollar)
	}
	report.Reward = reward

	// Mining efficiency is the baseline yield in percent, (power+1)/100.
	if events.MiningAchievementReached(float64(e.Wallet.TotalPower() + 1)) {
		if err := e.Wallet.AwardCollectible("question"); err == nil {
			report.Alerts = append(report.Alerts, "ACHIEVEMENT: 99.99% mining efficiency! [?] trophy awarded")
		}
	}

	if e.Session.Settings.RandomEvents {
		fire := e.Events.ShouldTrigger(
			e.MalusLevel(),
			e.Wallet.Dollar() > malusDollarThreshold,
			e.Mining.ReducesMalus(),
		)
		if fire {
			if evt := e.Events.TriggerRandom(e.Wallet.Dollar()); evt != nil {
				_ = e.Wallet.RemoveDollar(evt.Cost)
				report.Event = evt
			}
		}
	}

	report.PepeAppeared = events.PepeAppears(e.rng)

	e.Wallet.RoundValues()

	snap := &recorder.TurnSnapshot{
		Turn:           report.Turn,
		Course:         report.Course,
		CourseChange:   report.CourseChange,
		Dollar:         e.Wallet.Dollar(),
		Arobase:        e.Wallet.Arobase(),
		ArobaseForSale: e.Wallet.ArobaseForSale(),
		Power:          e.Wallet.TotalPower(),
		Pool:           string(e.Mining.CurrentPool()),
		Score:          e.Wallet.Score(e.Market.CurrentCourse()),
	}
	if report.Event != nil {
		snap.EventTitle = report.Event.Title
		snap.EventCost = report.Event.Cost
	}
	e.record(func() error { return e.Recorder.RecordTurn(snap) })

	return report
}

// GameOver checks the terminal predicates in priority order: bankruptcy,
// session limits, victory.
func (e *Engine) GameOver() (GameOverReason, bool) {
	if events.Bankrupt(e.Wallet.Dollar()) {
		return ReasonBankruptcy, true
	}
	if e.Session.TimeExpired() {
		return ReasonTimeLimit, true
	}
	if e.Session.TurnLimitReached() {
		return ReasonTurnLimit, true
	}
	if e.Wallet.VictoryPurchased() {
		return ReasonVictory, true
	}
	return "", false
}

// Snapshot serializes the whole session state for saving.
func (e *Engine) Snapshot() map[string]any {
	return map[string]any{
		"session": e.Session.ToMap(),
		"market":  e.Market.ToMap(),
		"wallet":  e.Wallet.ToMap(),
		"mining":  e.Mining.ToMap(),
	}
}

func (e *Engine) record(fn func() error) {
	if err := fn(); err != nil {
		log.Printf("[WARN] recorder write failed: %v", err)
	}
}
