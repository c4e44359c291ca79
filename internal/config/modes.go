package config

import (
	"fmt"
	"time"
)

// Mode selects a preset game rule set.
type Mode string

const (
	ModeUnlimited   Mode = "unlimited"
	ModeTimeLimited Mode = "time_limited"
	ModeCompetitive Mode = "competitive"
	ModeTutorial    Mode = "tutorial"
)

// Settings are the rule knobs for a game session. A zero TimeLimit or
// TurnLimit means the corresponding limit is disabled.
type Settings struct {
	StartingDollar  float64
	StartingArobase float64
	StartingCourse  float64
	TaxEnabled      bool
	RandomEvents    bool
	TimeLimit       time.Duration
	TurnLimit       int
	TurnDuration    time.Duration
	Difficulty      string
	SharedSeed      bool
	HintsEnabled    bool
}

// SettingsFor returns the preset settings of a mode.
func SettingsFor(mode Mode) (Settings, error) {
	base := Settings{
		StartingDollar: 250,
		StartingCourse: 70,
		TaxEnabled:     true,
		RandomEvents:   true,
		Difficulty:     "normal",
	}

	switch mode {
	case ModeUnlimited:
		return base, nil
	case ModeTimeLimited:
		base.TimeLimit = 7 * 24 * time.Hour
		base.TurnDuration = 30 * time.Minute
		return base, nil
	case ModeCompetitive:
		base.TimeLimit = 3 * 24 * time.Hour
		base.TurnLimit = 100
		base.TurnDuration = 30 * time.Minute
		base.Difficulty = "hard"
		base.SharedSeed = true
		return base, nil
	case ModeTutorial:
		base.StartingDollar = 1000
		base.TurnLimit = 20
		base.RandomEvents = false
		base.Difficulty = "easy"
		base.HintsEnabled = true
		return base, nil
	default:
		return Settings{}, fmt.Errorf("unknown game mode %q", mode)
	}
}

// Modes lists all selectable modes in menu order.
func Modes() []Mode {
	return []Mode{ModeUnlimited, ModeTimeLimited, ModeCompetitive, ModeTutorial}
}
