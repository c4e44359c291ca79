package engine

import (
	"math/rand"
	"testing"

	"github.com/JulesLeCurly/CryptoGame/internal/config"
	"github.com/JulesLeCurly/CryptoGame/internal/events"
	"github.com/JulesLeCurly/CryptoGame/internal/market"
	"github.com/JulesLeCurly/CryptoGame/internal/mining"
	"github.com/JulesLeCurly/CryptoGame/internal/wallet"
)

func newTestEngine(t *testing.T, mode config.Mode, seed int64) *Engine {
	t.Helper()
	session, err := config.NewSession("test", seed, mode)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	return New(
		session,
		market.New(seed, session.Settings.StartingCourse),
		wallet.New(session.Settings.StartingDollar, session.Settings.StartingArobase),
		mining.NewManager(rng),
		events.NewManager(rng),
		nil, // recorder defaults to noop
		rng,
	)
}

func TestProcessTurn_AdvancesEverything(t *testing.T) {
	e := newTestEngine(t, config.ModeTutorial, 35042)

	report := e.ProcessTurn()
	if report.Turn != 1 {
		t.Errorf("turn = %d, want 1", report.Turn)
	}
	if e.Session.TurnCount != 1 {
		t.Errorf("session turn count = %d, want 1", e.Session.TurnCount)
	}
	if e.Market.CurrentTurn() != 1 {
		t.Errorf("market turn = %d, want 1", e.Market.CurrentTurn())
	}
	if report.Course != e.Market.CurrentCourse() {
		t.Errorf("report course %v != market course %v", report.Course, e.Market.CurrentCourse())
	}
}

func TestProcessTurn_PooledMining(t *testing.T) {
	e := newTestEngine(t, config.ModeTutorial, 35042)
	if _, err := e.Mining.JoinPool(mining.PoolBTC, ""); err != nil {
		t.Fatalf("JoinPool: %v", err)
	}

	before := e.Wallet.Arobase()
	report := e.ProcessTurn()
	// Baseline 0.2 plus the BTC bonus 0.25.
	if report.Reward.Arobase != 0.45 {
		t.Errorf("reward = %v, want 0.45", report.Reward.Arobase)
	}
	if got := e.Wallet.Arobase(); got != before+0.45 {
		t.Errorf("arobase = %v, want %v", got, before+0.45)
	}
}

func TestProcessTurn_FeePoolCannotBankrupt(t *testing.T) {
	e := newTestEngine(t, config.ModeTutorial, 35042)
	if _, err := e.Mining.JoinPool(mining.PoolPlusPlus, ""); err != nil {
		t.Fatalf("JoinPool: %v", err)
	}

	// Tutorial starts with $1000; the first fee drains it to zero, after
	// which further fees are rejected rather than driving it negative.
	for i := 0; i < 5; i++ {
		e.ProcessTurn()
		if e.Wallet.Dollar() < 0 {
			t.Fatalf("turn %d: fee drove balance negative: %v", i+1, e.Wallet.Dollar())
		}
	}
}

func TestProcessTurn_SaleFulfillment(t *testing.T) {
	e := newTestEngine(t, config.ModeTutorial, 35042)
	if _, err := e.Mining.JoinPool(mining.PoolFBG, ""); err != nil {
		t.Fatalf("JoinPool: %v", err)
	}
	e.Wallet.AddArobase(10)
	if err := e.Wallet.PutArobaseForSale(10); err != nil {
		t.Fatalf("PutArobaseForSale: %v", err)
	}

	before := e.Wallet.Dollar()
	report := e.ProcessTurn()

	// FBG settles the whole escrow at the post-advance course.
	if report.SoldArobase != 10 {
		t.Errorf("sold = %v, want 10", report.SoldArobase)
	}
	if e.Wallet.ArobaseForSale() != 0 {
		t.Errorf("escrow = %v after instant sale, want 0", e.Wallet.ArobaseForSale())
	}
	wantProceeds := 10 * e.Market.CurrentCourse()
	if report.SaleProceeds != wantProceeds {
		t.Errorf("proceeds = %v, want %v", report.SaleProceeds, wantProceeds)
	}
	if e.Wallet.Dollar() <= before {
		t.Errorf("dollar = %v, want more than %v", e.Wallet.Dollar(), before)
	}
}

func TestProcessTurn_NoEventsBelowThreshold(t *testing.T) {
	// Seed 99999 gives malus level 9, which fires on every roll, so any
	// suppression here is the wealth gate.
	e := newTestEngine(t, config.ModeUnlimited, 99999)
	if e.MalusLevel() != 9 {
		t.Fatalf("malus level = %d, want 9", e.MalusLevel())
	}
	if e.Wallet.Dollar() > malusDollarThreshold {
		t.Fatalf("test wallet too rich: %v", e.Wallet.Dollar())
	}

	for i := 0; i < 20; i++ {
		if report := e.ProcessTurn(); report.Event != nil {
			t.Fatalf("turn %d: event fired below wealth threshold: %+v", i+1, report.Event)
		}
	}
}

func TestProcessTurn_EventsFireAboveThreshold(t *testing.T) {
	e := newTestEngine(t, config.ModeUnlimited, 99999)
	e.Wallet.AddDollar(100000)

	fired := false
	for i := 0; i < 20 && !fired; i++ {
		if report := e.ProcessTurn(); report.Event != nil {
			fired = true
			if report.Event.Cost <= 0 {
				t.Errorf("event cost = %v, want positive", report.Event.Cost)
			}
		}
	}
	if !fired {
		t.Error("level 9 malus never fired in 20 rich turns")
	}
}

func TestProcessTurn_TutorialSuppressesEvents(t *testing.T) {
	e := newTestEngine(t, config.ModeTutorial, 99999)
	e.Wallet.AddDollar(100000)

	for i := 0; i < 20; i++ {
		if report := e.ProcessTurn(); report.Event != nil {
			t.Fatalf("turn %d: event fired in tutorial mode: %+v", i+1, report.Event)
		}
	}
}

func TestMalusLevel(t *testing.T) {
	tests := []struct {
		seed int64
		want int
	}{
		{35042, 3},
		{99999, 9},
		{9999, 0},
	}
	for _, tt := range tests {
		e := newTestEngine(t, config.ModeUnlimited, tt.seed)
		if got := e.MalusLevel(); got != tt.want {
			t.Errorf("seed %d: malus level = %d, want %d", tt.seed, got, tt.want)
		}
	}
}

func TestTax(t *testing.T) {
	e := newTestEngine(t, config.ModeUnlimited, 35042)
	if got := e.Tax(); got != 0 {
		t.Errorf("tax = %v on $250 peak, want 0", got)
	}
	e.Wallet.AddDollar(5250)
	if got := e.Tax(); got != 5 {
		t.Errorf("tax = %v on $5500 peak, want 5", got)
	}
	// The tax tracks the peak, not the current balance.
	if err := e.Wallet.RemoveDollar(5000); err != nil {
		t.Fatalf("RemoveDollar: %v", err)
	}
	if got := e.Tax(); got != 5 {
		t.Errorf("tax = %v after spending down, want 5", got)
	}
}

func TestGameOver(t *testing.T) {
	e := newTestEngine(t, config.ModeUnlimited, 35042)
	if reason, over := e.GameOver(); over {
		t.Fatalf("fresh session over: %s", reason)
	}

	// Victory.
	e.Wallet.AddDollar(500000000)
	e.Wallet.AddArobase(600)
	if err := e.Wallet.BuyVictory(500000000, 600); err != nil {
		t.Fatalf("BuyVictory: %v", err)
	}
	reason, over := e.GameOver()
	if !over || reason != ReasonVictory {
		t.Errorf("reason = %q/%v, want victory", reason, over)
	}
}

func TestGameOver_TurnLimit(t *testing.T) {
	e := newTestEngine(t, config.ModeTutorial, 35042)
	e.Session.TurnCount = 20
	reason, over := e.GameOver()
	if !over || reason != ReasonTurnLimit {
		t.Errorf("reason = %q/%v, want turn limit", reason, over)
	}
}

func TestGameOver_BankruptcyWins(t *testing.T) {
	e := newTestEngine(t, config.ModeTutorial, 35042)
	e.Session.TurnCount = 20
	e.Wallet = wallet.FromMap(map[string]any{"dollar": -5.0})

	// Bankruptcy outranks the turn limit.
	reason, over := e.GameOver()
	if !over || reason != ReasonBankruptcy {
		t.Errorf("reason = %q/%v, want bankruptcy", reason, over)
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	e := newTestEngine(t, config.ModeUnlimited, 937962751)
	if _, err := e.Mining.JoinPool(mining.PoolBTC, ""); err != nil {
		t.Fatalf("JoinPool: %v", err)
	}
	for i := 0; i < 5; i++ {
		e.ProcessTurn()
	}

	restored, err := Restore(e.Snapshot(), nil, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.Session.Seed != e.Session.Seed {
		t.Errorf("seed = %d, want %d", restored.Session.Seed, e.Session.Seed)
	}
	if restored.Session.TurnCount != e.Session.TurnCount {
		t.Errorf("turn count = %d, want %d", restored.Session.TurnCount, e.Session.TurnCount)
	}
	if restored.Market.CurrentCourse() != e.Market.CurrentCourse() {
		t.Errorf("course = %v, want %v", restored.Market.CurrentCourse(), e.Market.CurrentCourse())
	}
	if restored.Wallet.Dollar() != e.Wallet.Dollar() {
		t.Errorf("dollar = %v, want %v", restored.Wallet.Dollar(), e.Wallet.Dollar())
	}
	if restored.Mining.CurrentPool() != mining.PoolBTC {
		t.Errorf("pool = %s, want BTC", restored.Mining.CurrentPool())
	}

	// The restored market continues the same deterministic course sequence.
	if got, want := restored.Market.AdvanceTurn(), e.Market.AdvanceTurn(); got != want {
		t.Errorf("next course = %v, want %v", got, want)
	}
}

func TestRestore_MissingSubtree(t *testing.T) {
	e := newTestEngine(t, config.ModeUnlimited, 35042)
	for _, missing := range []string{"session", "market", "wallet", "mining"} {
		snap := e.Snapshot()
		delete(snap, missing)
		if _, err := Restore(snap, nil, rand.New(rand.NewSource(1))); err == nil {
			t.Errorf("restore succeeded without %s data", missing)
		}
	}
}
