package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/JulesLeCurly/CryptoGame/internal/autosave"
	"github.com/JulesLeCurly/CryptoGame/internal/config"
	"github.com/JulesLeCurly/CryptoGame/internal/engine"
	"github.com/JulesLeCurly/CryptoGame/internal/events"
	"github.com/JulesLeCurly/CryptoGame/internal/market"
	"github.com/JulesLeCurly/CryptoGame/internal/mining"
	"github.com/JulesLeCurly/CryptoGame/internal/model"
	"github.com/JulesLeCurly/CryptoGame/internal/recorder"
	"github.com/JulesLeCurly/CryptoGame/internal/save"
	"github.com/JulesLeCurly/CryptoGame/internal/ui"
	"github.com/JulesLeCurly/CryptoGame/internal/wallet"
)

// Game holds the running application state and drives the menu loop.
type Game struct {
	cfg   *config.Config
	saves *save.Manager
	rec   recorder.Recorder
	rng   *rand.Rand
	in    *bufio.Reader

	eng           *engine.Engine
	pepeAvailable bool
}

// MainMenu shows the entry menu: continue, load, new game, exit.
func (g *Game) MainMenu() {
	fmt.Println("CRYPTOGAME - A cryptocurrency trading and mining simulation")

	saves := g.saves.ListSaves()
	if len(saves) == 0 {
		fmt.Println("\nNo saved games found. Starting new game...")
		if g.startNewGame() {
			g.runLoop()
		}
		return
	}

	fmt.Println("\nOPTIONS:")
	fmt.Println("  [1] Continue most recent game")
	fmt.Println("  [2] Load game")
	fmt.Println("  [3] New game")
	fmt.Println("  [4] Exit")

	switch g.readLine("\nChoice: ") {
	case "1":
		if g.loadGame(g.saves.MostRecentSave()) {
			g.runLoop()
		}
	case "2":
		fmt.Println("\nAvailable saves:")
		for i, info := range saves {
			fmt.Printf("  [%d] %s - %s\n", i+1, info.Name, info.SavedAt)
		}
		n := int(g.readNumber("\nSelect save: ", 1, float64(len(saves))))
		if n >= 1 && g.loadGame(saves[n-1].Name) {
			g.runLoop()
		}
	case "3":
		if g.startNewGame() {
			g.runLoop()
		}
	}
}

func (g *Game) startNewGame() bool {
	fmt.Println("\nSELECT GAME MODE:")
	modes := config.Modes()
	for i, mode := range modes {
		fmt.Printf("  [%d] %s\n", i+1, mode)
	}
	mode := config.Mode(g.cfg.Game.DefaultMode)
	if n := int(g.readNumber("Mode: ", 1, float64(len(modes)))); n >= 1 {
		mode = modes[n-1]
	}

	name := g.readLine("\nEnter game name: ")
	if name == "" {
		name = fmt.Sprintf("game_%d", time.Now().Unix())
	}

	fmt.Println("\nSeed options:")
	fmt.Println("  [1] Random seed")
	fmt.Println("  [2] Enter custom seed")
	fmt.Printf("  [3] Quick start (seed: %d)\n", g.cfg.Game.QuickSeed)

	var seed int64
	switch g.readLine("Choice: ") {
	case "2":
		seed = int64(g.readNumber("Enter seed: ", 1, 99999))
	case "3":
		seed = g.cfg.Game.QuickSeed
	default:
		seed = 10000 + g.rng.Int63n(90000)
	}
	fmt.Printf("\nGame seed: %d\n", seed)

	session, err := config.NewSession(name, seed, mode)
	if err != nil {
		log.Printf("[ERROR] create session: %v", err)
		return false
	}

	g.eng = engine.New(
		session,
		market.New(seed, session.Settings.StartingCourse),
		wallet.New(session.Settings.StartingDollar, session.Settings.StartingArobase),
		mining.NewManager(g.rng),
		events.NewManager(g.rng),
		g.rec,
		g.rng,
	)

	fmt.Println("Game initialized!")
	g.pause()
	return true
}

func (g *Game) loadGame(name string) bool {
	if name == "" {
		return false
	}
	data, err := g.saves.LoadGame(name)
	if err != nil {
		if errors.Is(err, save.ErrMissingKey) || errors.Is(err, save.ErrCorruptSave) {
			fmt.Printf("Corrupted save file: %v\n", err)
		} else {
			fmt.Printf("Could not load game: %v\n", err)
		}
		return false
	}

	eng, err := engine.Restore(data, g.rec, g.rng)
	if err != nil {
		fmt.Printf("Corrupted save file: %v\n", err)
		return false
	}

	g.eng = eng
	fmt.Printf("Game loaded: %s\n", name)
	g.pause()
	return true
}

func (g *Game) saveGame() bool {
	g.eng.Session.LastUpdate = time.Now()
	err := g.saves.SaveGame(g.eng.Session.Name, g.eng.Snapshot(), !g.cfg.Save.Plain)
	if err != nil {
		log.Printf("[ERROR] save game: %v", err)
		fmt.Println("Failed to save game")
		return false
	}
	fmt.Println("Game saved!")
	return true
}

func (g *Game) runLoop() {
	sched, err := autosave.NewScheduler(time.Duration(g.cfg.Save.AutosaveSeconds) * time.Second)
	if err != nil {
		log.Printf("[WARN] autosave disabled: %v", err)
	} else {
		sched.Start()
		defer sched.Stop()
	}

	for {
		if sched != nil && sched.Due() {
			fmt.Println("\n~~~ AUTO-SAVE ~~~")
			g.saveGame()
			sched.MarkSaved()
		}

		if reason, over := g.eng.GameOver(); over {
			fmt.Println(ui.FormatGameOver(reason, g.eng.Wallet, g.eng.Market))
			return
		}

		fmt.Println()
		fmt.Println(ui.FormatStatus(g.eng.Session, g.eng.Market, g.eng.Wallet, g.eng.Mining))
		fmt.Println("[v] sell @  [a] buy @  [e] cancel sale  [m] next turn  [c] shop")
		fmt.Println("[p] pools  [z] exchange  [l] chart  [i] info & save  [q] quit")
		if g.pepeAvailable {
			fmt.Println("[PEPE] Pepe the Frog appeared!")
		}

		switch g.readLine("Action: ") {
		case "v":
			g.handleSellArobase()
		case "a":
			g.handleBuyArobase()
		case "e":
			g.eng.Wallet.CancelSale()
			fmt.Println("Sale cancelled")
			g.pause()
		case "m":
			report := g.eng.ProcessTurn()
			if report.PepeAppeared {
				g.pepeAvailable = true
			}
			fmt.Println(ui.FormatTurnReport(report))
			g.pause()
		case "c":
			g.handleShop()
		case "p":
			g.handlePools()
		case "z":
			g.handleExchange()
		case "l":
			fmt.Println(ui.FormatChart(g.eng.Market))
			g.pause()
		case "i":
			g.handleInfo()
		case "pepe":
			if g.pepeAvailable {
				g.handlePepe()
			}
		case "q":
			if g.confirm("Save before quitting?") {
				g.saveGame()
			}
			return
		default:
			fmt.Println("Invalid action")
		}
	}
}

func (g *Game) handleSellArobase() {
	tax := g.eng.Tax()
	w := g.eng.Wallet

	fmt.Printf("\nTax: $%.0f\n", tax)
	fmt.Printf("Available: %.5f@\n", w.Arobase())

	amount := g.readNumber("Amount to sell (@): ", 0, w.Arobase())
	if amount == 0 {
		return
	}
	if !w.CanAfford(tax) {
		fmt.Println("Cannot afford tax")
		return
	}

	value := g.eng.Market.CalculateSellValue(amount)
	fmt.Printf("\nSelling %.5f@ for about $%.2f\n", amount, value)
	if !g.confirm("Confirm") {
		return
	}

	if err := w.PutArobaseForSale(amount); err != nil {
		fmt.Println("Insufficient arobase")
		return
	}
	_ = w.RemoveDollar(tax)
	fmt.Println("Put up for sale!")
	g.recordTrade("SELL", amount, value)
}

func (g *Game) handleBuyArobase() {
	tax := g.eng.Tax()
	w := g.eng.Wallet
	maxSpend := w.Dollar() - tax

	fmt.Printf("\nTax: $%.0f\n", tax)
	fmt.Printf("Available to spend: $%.2f\n", maxSpend)
	fmt.Printf("Current course: $%.2f\n", g.eng.Market.CurrentCourse())

	if maxSpend <= 0 {
		fmt.Println("Cannot afford tax")
		return
	}

	amount := g.readNumber("Amount to spend ($): ", 0, maxSpend)
	if amount == 0 {
		return
	}

	arobase := g.eng.Market.CalculateBuyAmount(amount, 0)
	fmt.Printf("\nBuying %.5f@ for $%.2f\n", arobase, amount)
	if !g.confirm("Confirm") {
		return
	}

	if err := w.RemoveDollar(amount + tax); err != nil {
		fmt.Println("Insufficient funds")
		return
	}
	w.AddArobase(arobase)
	fmt.Printf("Bought %.5f@\n", arobase)
	g.recordTrade("BUY", arobase, amount)
}

func (g *Game) handleShop() {
	for {
		fmt.Println()
		fmt.Println(ui.FormatShop(g.eng.Wallet))

		choice := g.readLine("Choice: ")
		cardMap := map[string]string{"1": "RTX_2080", "2": "RTX_3070", "3": "RTX_3090"}
		itemMap := map[string]string{"4": "hashtag", "5": "exclamation"}

		switch {
		case cardMap[choice] != "":
			cardType := cardMap[choice]
			if err := g.eng.Wallet.BuyCard(cardType); err != nil {
				fmt.Println(rejectionMessage(err))
			} else {
				spec, _ := model.CardInfo(cardType)
				fmt.Printf("Bought %s! Power: %d\n", spec.Name, g.eng.Wallet.TotalPower())
				g.recordTrade("CARD_BUY", 1, spec.Price)
			}
			g.pause()
		case itemMap[choice] != "":
			if err := g.eng.Wallet.BuyCollectible(itemMap[choice]); err != nil {
				fmt.Println(rejectionMessage(err))
			} else {
				fmt.Println("Trophy purchased!")
			}
			g.pause()
		case choice == "6":
			fmt.Println("\nThe [?] trophy is awarded for achieving 99.99% mining efficiency")
			g.pause()
		case choice == "7" && !g.eng.Wallet.VictoryPurchased():
			if err := g.eng.Wallet.BuyVictory(500000000, 600); err != nil {
				fmt.Println(rejectionMessage(err))
				g.pause()
			} else {
				fmt.Println("VICTORY PURCHASED!")
				g.pause()
				return
			}
		case choice == "8":
			g.handleSellCard()
		case choice == "9":
			return
		default:
			fmt.Println("Invalid choice")
			g.pause()
		}
	}
}

func (g *Game) handleSellCard() {
	fmt.Println("\nSELL GRAPHICS CARD:")
	for i, cardType := range model.CardTypes() {
		spec, _ := model.CardInfo(cardType)
		fmt.Printf("  [%d] %s - $%.0f\n", i+1, spec.Name, model.CardSellPrice(cardType))
	}

	choice := g.readLine("\nChoice: ")
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(model.CardTypes()) {
		return
	}

	cardType := model.CardTypes()[n-1]
	price, sellErr := g.eng.Wallet.SellCard(cardType)
	if sellErr != nil {
		fmt.Println(rejectionMessage(sellErr))
	} else {
		fmt.Printf("Sold for $%.0f\n", price)
		g.recordTrade("CARD_SELL", 1, price)
	}
	g.pause()
}

func (g *Game) handlePools() {
	for {
		fmt.Println()
		fmt.Println(ui.FormatPoolMenu(g.eng.Mining))

		choice := g.readLine("Choice: ")
		if choice == "9" {
			return
		}
		if choice == "8" {
			g.eng.Mining.LeavePool()
			fmt.Println("Left pool")
			g.pause()
			continue
		}

		pools := g.eng.Mining.AvailablePools()
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(pools) {
			fmt.Println("Invalid choice")
			g.pause()
			continue
		}

		id := mining.PoolID(pools[n-1].ID)
		secret := ""
		if id == mining.PoolITS {
			fmt.Println("\n(Enter secret code or press Enter)")
			secret = g.readLine("Code: ")
		}

		result, joinErr := g.eng.Mining.JoinPool(id, secret)
		if joinErr != nil {
			if errors.Is(joinErr, mining.ErrCooldownActive) {
				fmt.Printf("Cooldown: %d turns remaining\n", g.eng.Mining.CooldownRemaining())
			} else {
				fmt.Println("Invalid pool")
			}
		} else {
			fmt.Printf("Joined %s!\n", result.Pool)
			if result.WelcomeBonus > 0 {
				g.eng.Wallet.AddDollar(result.WelcomeBonus)
				fmt.Println(result.Message)
			}
			g.recordPool(result.Pool, "JOIN")
		}
		g.pause()
	}
}

func (g *Game) handleInfo() {
	fmt.Println("\nINFO & SAVE:")
	fmt.Println("  [1] Save game")
	fmt.Println("  [2] Statistics")

	switch g.readLine("\nChoice: ") {
	case "1":
		g.saveGame()
	case "2":
		fmt.Println(ui.FormatStatistics(g.eng.Market, g.eng.Wallet))
	}
	g.pause()
}

func (g *Game) handlePepe() {
	g.pepeAvailable = false

	fmt.Println("\nPepe: Hello! I am Pepe the Frog.")
	if !g.confirm("Pepe: Are you ready?") {
		fmt.Println("Pepe: Okay, see you next time!")
		return
	}

	q := events.PickQuestion(g.rng, g.eng.Market.CurrentCourse())
	fmt.Printf("\nQuestion: %s\n", q.Text)
	answer := g.readNumber("Your answer: ", 0, 1e12)

	multiplier := events.EvaluateAnswer(q, answer)
	w := g.eng.Wallet
	if multiplier > 1 {
		fmt.Println("Correct! Pepe multiplies your money by 1.5!")
		w.AddDollar(w.Dollar() * (multiplier - 1))
	} else {
		fmt.Println("Wrong! Pepe divides your money by 2.")
		_ = w.RemoveDollar(w.Dollar() * (1 - multiplier))
	}
	g.pause()
}

// handleExchange implements plain numeric transfer codes. The cosmetic QR
// rendering of the original is out of scope; the code carries the same
// payload: currency, amount, checksum.
func (g *Game) handleExchange() {
	fmt.Println("\nEXCHANGE:")
	fmt.Println("  [1] Send")
	fmt.Println("  [2] Receive")

	switch g.readLine("\nChoice: ") {
	case "1":
		g.handleSendExchange()
	case "2":
		g.handleReceiveExchange()
	}
}

func (g *Game) handleSendExchange() {
	fmt.Println("\n[1] Dollar  [2] Arobase")
	currency := g.readLine("Currency: ")

	w := g.eng.Wallet
	var available float64
	switch currency {
	case "1":
		available = w.Dollar()
	case "2":
		available = w.Arobase()
	default:
		return
	}

	amount := g.readNumber(fmt.Sprintf("Amount to send (max %.2f): ", available), 0, available)
	if amount == 0 || !g.confirm("Confirm") {
		return
	}

	whole := int64(amount)
	if currency == "1" {
		_ = w.RemoveDollar(float64(whole))
	} else {
		_ = w.RemoveArobase(float64(whole))
	}

	code := encodeExchange(currency, whole)
	fmt.Printf("\nExchange code: %s\n", code)
	g.pause()
}

func (g *Game) handleReceiveExchange() {
	code := g.readLine("\nEnter exchange code: ")
	currency, amount, ok := decodeExchange(code)
	if !ok {
		fmt.Println("Invalid exchange code")
		g.pause()
		return
	}

	if currency == "1" {
		g.eng.Wallet.AddDollar(float64(amount))
		fmt.Printf("Received $%d!\n", amount)
	} else {
		g.eng.Wallet.AddArobase(float64(amount))
		fmt.Printf("Received %d@!\n", amount)
	}
	g.pause()
}

func encodeExchange(currency string, amount int64) string {
	checksum := (amount*7 + int64(currency[0])) % 97
	return fmt.Sprintf("%s-%d-%d", currency, amount, checksum)
}

func decodeExchange(code string) (currency string, amount int64, ok bool) {
	var checksum int64
	n, err := fmt.Sscanf(code, "%1s-%d-%d", &currency, &amount, &checksum)
	if err != nil || n != 3 || (currency != "1" && currency != "2") || amount < 0 {
		return "", 0, false
	}
	if (amount*7+int64(currency[0]))%97 != checksum {
		return "", 0, false
	}
	return currency, amount, true
}

func (g *Game) recordTrade(eventType string, amount, dollar float64) {
	err := g.rec.RecordTrade(&recorder.TradeEvent{
		Turn:      g.eng.Market.CurrentTurn(),
		EventType: eventType,
		Amount:    amount,
		Dollar:    dollar,
	})
	if err != nil {
		log.Printf("[WARN] record trade: %v", err)
	}
}

func (g *Game) recordPool(pool, action string) {
	err := g.rec.RecordPoolChange(&recorder.PoolEvent{
		Turn:   g.eng.Market.CurrentTurn(),
		Pool:   pool,
		Action: action,
	})
	if err != nil {
		log.Printf("[WARN] record pool change: %v", err)
	}
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, wallet.ErrInsufficientFunds):
		return "Insufficient funds"
	case errors.Is(err, wallet.ErrInsufficientArobase):
		return "Insufficient arobase"
	case errors.Is(err, wallet.ErrMaxReached):
		return "Maximum count reached"
	case errors.Is(err, wallet.ErrNotPurchasable):
		return "Cannot purchase this item"
	case errors.Is(err, wallet.ErrNothingToSell):
		return "No cards to sell"
	case errors.Is(err, wallet.ErrVictoryOwned):
		return "Victory already purchased"
	default:
		return err.Error()
	}
}
