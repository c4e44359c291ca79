package main

import (
	"bufio"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/JulesLeCurly/CryptoGame/internal/config"
	"github.com/JulesLeCurly/CryptoGame/internal/recorder"
	"github.com/JulesLeCurly/CryptoGame/internal/save"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CryptoGame starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Init save manager
	saves, err := save.NewManager(cfg.Save.Directory, rng)
	if err != nil {
		log.Fatalf("[FATAL] init save manager: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	game := &Game{
		cfg:   cfg,
		saves: saves,
		rec:   rec,
		rng:   rng,
		in:    bufio.NewReader(os.Stdin),
	}
	game.MainMenu()

	log.Println("[INFO] CryptoGame stopped")
}

// readLine prompts and returns one trimmed line of input.
func (g *Game) readLine(prompt string) string {
	fmt.Print(prompt)
	line, err := g.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// readNumber prompts until the player enters a number within [min, max].
func (g *Game) readNumber(prompt string, min, max float64) float64 {
	for {
		raw := g.readLine(prompt)
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < min || v > max {
			fmt.Printf("Enter a number between %g and %g\n", min, max)
			continue
		}
		return v
	}
}

// confirm asks a yes/no question.
func (g *Game) confirm(prompt string) bool {
	answer := strings.ToLower(g.readLine(prompt + " (y/n): "))
	return answer == "y" || answer == "yes"
}

func (g *Game) pause() {
	g.readLine("\nPress Enter to continue...")
}
