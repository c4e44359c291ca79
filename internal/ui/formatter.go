package ui

import (
	"fmt"
	"strings"

	"github.com/JulesLeCurly/CryptoGame/internal/config"
	"github.com/JulesLeCurly/CryptoGame/internal/engine"
	"github.com/JulesLeCurly/CryptoGame/internal/market"
	"github.com/JulesLeCurly/CryptoGame/internal/mining"
	"github.com/JulesLeCurly/CryptoGame/internal/model"
	"github.com/JulesLeCurly/CryptoGame/internal/wallet"
)

const separator = "============================================================"

// FormatStatus renders the session header shown above the main menu.
func FormatStatus(s *config.Session, m *market.Market, w *wallet.Wallet, mm *mining.Manager) string {
	var b strings.Builder

	b.WriteString(separator + "\n")
	b.WriteString(fmt.Sprintf("Game: %s | Mode: %s | Seed: %d\n", s.Name, s.Mode, s.Seed))
	if _, ok := s.TimeRemaining(); ok {
		b.WriteString(fmt.Sprintf("Time remaining: %s\n", s.FormatTimeRemaining()))
	}
	if turns, ok := s.TurnsRemaining(); ok {
		b.WriteString(fmt.Sprintf("Turns remaining: %d\n", turns))
	}

	change := m.CourseChange()
	arrow := "="
	if change > 0 {
		arrow = "+"
	} else if change < 0 {
		arrow = "-"
	}
	b.WriteString(fmt.Sprintf("\nTurn %d | Course: $%.2f [%s%.2f] | Trend: %s\n",
		m.CurrentTurn(), m.CurrentCourse(), arrow, abs(change), m.Trend(5)))
	b.WriteString(fmt.Sprintf("Balance: $%.2f | %.5f@", w.Dollar(), w.Arobase()))
	if w.ArobaseForSale() > 0 {
		b.WriteString(fmt.Sprintf(" (%.5f@ for sale)", w.ArobaseForSale()))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Power: %d | Pool: %s | Score: %d\n",
		w.TotalPower(), mm.CurrentPoolName(), w.Score(m.CurrentCourse())))
	b.WriteString(separator)

	return b.String()
}

// FormatTurnReport renders everything that happened during a processed turn.
func FormatTurnReport(r *engine.TurnReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("--- Turn %d: course $%.2f (%+.2f) ---\n", r.Turn, r.Course, r.CourseChange))
	for _, alert := range r.Alerts {
		b.WriteString(alert + "\n")
	}
	if r.SoldArobase > 0 {
		b.WriteString(fmt.Sprintf("Sold %.5f@ for $%.2f\n", r.SoldArobase, r.SaleProceeds))
	}
	if r.Reward.Arobase > 0 {
		b.WriteString(fmt.Sprintf("Mined %.5f@\n", r.Reward.Arobase))
	}
	if r.Reward.Dollar > 0 {
		b.WriteString(fmt.Sprintf("Pool bonus: +$%.2f\n", r.Reward.Dollar))
	} else if r.Reward.Dollar < 0 {
		b.WriteString(fmt.Sprintf("Pool fee: -$%.2f\n", -r.Reward.Dollar))
	}
	if r.Event != nil {
		b.WriteString(separator + "\n")
		b.WriteString("RANDOM EVENT: " + r.Event.Title + "\n")
		b.WriteString(fmt.Sprintf("You lost: $%.2f\n", r.Event.Cost))
		b.WriteString(separator + "\n")
	}
	if r.PepeAppeared {
		b.WriteString("[PEPE] Pepe the Frog appeared! Type 'pepe' to talk to him.\n")
	}

	return b.String()
}

// FormatStatistics renders wallet and market statistics.
func FormatStatistics(m *market.Market, w *wallet.Wallet) string {
	stats := m.Statistics()

	var b strings.Builder
	b.WriteString(separator + "\n")
	b.WriteString("STATISTICS\n\n")
	b.WriteString("WALLET:\n")
	b.WriteString(fmt.Sprintf("  Max dollar: $%.2f\n", w.MaxDollar()))
	b.WriteString(fmt.Sprintf("  Min dollar: $%.2f\n", w.MinDollar()))
	b.WriteString(fmt.Sprintf("  Max arobase: %.5f@\n", w.MaxArobase()))
	b.WriteString(fmt.Sprintf("  Min arobase: %.5f@\n", w.MinArobase()))
	b.WriteString("\nMARKET:\n")
	b.WriteString(fmt.Sprintf("  Max course: $%.2f\n", stats.Max))
	b.WriteString(fmt.Sprintf("  Min course: $%.2f\n", stats.Min))
	b.WriteString(fmt.Sprintf("  Average: $%.2f\n", stats.Average))
	b.WriteString(fmt.Sprintf("  Volatility: %.2f\n", stats.Volatility))

	b.WriteString("\nPORTFOLIO:\n")
	for _, cardType := range model.CardTypes() {
		if count := w.CardCount(cardType); count > 0 {
			b.WriteString(fmt.Sprintf("  %s: %d\n", cardType, count))
		}
	}
	for _, itemType := range model.CollectibleTypes() {
		if count := w.CollectibleCount(itemType); count > 0 {
			spec, _ := model.CollectibleInfo(itemType)
			b.WriteString(fmt.Sprintf("  [%s] %s: %d\n", spec.Symbol, spec.Name, count))
		}
	}
	b.WriteString(separator)

	return b.String()
}

// FormatShop renders the shop menu.
func FormatShop(w *wallet.Wallet) string {
	var b strings.Builder
	b.WriteString("SHOP\n")
	for i, cardType := range model.CardTypes() {
		spec, _ := model.CardInfo(cardType)
		b.WriteString(fmt.Sprintf("  [%d] %s - $%.0f (power %d, owned %d/%d)\n",
			i+1, spec.Name, spec.Price, spec.Power, w.CardCount(cardType), spec.Max))
	}
	hashtag, _ := model.CollectibleInfo("hashtag")
	exclam, _ := model.CollectibleInfo("exclamation")
	b.WriteString(fmt.Sprintf("  [4] [#] %s - $%.0f\n", hashtag.Name, hashtag.Price))
	b.WriteString(fmt.Sprintf("  [5] [!] %s - $%.0f\n", exclam.Name, exclam.Price))
	b.WriteString("  [6] About the [?] trophy\n")
	if !w.VictoryPurchased() {
		b.WriteString("  [7] BUY THE GAME - $500,000,000 + 600@\n")
	}
	b.WriteString("  [8] Sell a card\n")
	b.WriteString("  [9] Back\n")
	return b.String()
}

// FormatPoolMenu renders the mining pool menu.
func FormatPoolMenu(mm *mining.Manager) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("MINING POOLS (current: %s)\n", mm.CurrentPoolName()))
	if mm.CooldownRemaining() > 0 {
		b.WriteString(fmt.Sprintf("Switch cooldown: %d turns remaining\n", mm.CooldownRemaining()))
	}
	for i, info := range mm.AvailablePools() {
		b.WriteString(fmt.Sprintf("  [%d] %s\n      %s\n", i+1, info.Name, info.Description))
	}
	b.WriteString("  [8] Leave pool\n")
	b.WriteString("  [9] Back\n")
	return b.String()
}

// FormatGameOver renders the final screen.
func FormatGameOver(reason engine.GameOverReason, w *wallet.Wallet, m *market.Market) string {
	var b strings.Builder
	b.WriteString(separator + "\n")
	if reason == engine.ReasonVictory {
		b.WriteString("VICTORY!\n")
	} else {
		b.WriteString("GAME OVER\n")
	}
	b.WriteString(string(reason) + "\n\n")
	b.WriteString(fmt.Sprintf("Final balance: $%.2f | %.5f@\n", w.Dollar(), w.Arobase()))
	b.WriteString(fmt.Sprintf("Final score: %d\n", w.Score(m.CurrentCourse())))
	b.WriteString(separator)
	return b.String()
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
