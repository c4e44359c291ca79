package config

import (
	"fmt"
	"math"
	"time"
)

// Session is one running game: its name, seed, mode rules and turn counter.
// The seed is immutable once the session exists.
type Session struct {
	Name     string
	Seed     int64
	Mode     Mode
	Settings Settings

	CreatedAt  time.Time
	LastUpdate time.Time
	TurnCount  int
}

// NewSession creates a session for the given mode.
func NewSession(name string, seed int64, mode Mode) (*Session, error) {
	settings, err := SettingsFor(mode)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Session{
		Name:       name,
		Seed:       seed,
		Mode:       mode,
		Settings:   settings,
		CreatedAt:  now,
		LastUpdate: now,
	}, nil
}

// TimeExpired reports whether the session's time limit has run out.
func (s *Session) TimeExpired() bool {
	if s.Settings.TimeLimit == 0 {
		return false
	}
	return time.Since(s.CreatedAt) >= s.Settings.TimeLimit
}

// TurnLimitReached reports whether the session's turn limit is reached.
func (s *Session) TurnLimitReached() bool {
	if s.Settings.TurnLimit == 0 {
		return false
	}
	return s.TurnCount >= s.Settings.TurnLimit
}

// LimitReached reports whether either session limit ends the game.
func (s *Session) LimitReached() bool {
	return s.TimeExpired() || s.TurnLimitReached()
}

// TimeRemaining returns the remaining play time, or (0, false) when the
// session has no time limit.
func (s *Session) TimeRemaining() (time.Duration, bool) {
	if s.Settings.TimeLimit == 0 {
		return 0, false
	}
	remaining := s.Settings.TimeLimit - time.Since(s.CreatedAt)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// TurnsRemaining returns the remaining turns, or (0, false) when the session
// has no turn limit.
func (s *Session) TurnsRemaining() (int, bool) {
	if s.Settings.TurnLimit == 0 {
		return 0, false
	}
	remaining := s.Settings.TurnLimit - s.TurnCount
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// FormatTimeRemaining renders the remaining time for display.
func (s *Session) FormatTimeRemaining() string {
	remaining, ok := s.TimeRemaining()
	if !ok {
		return "Unlimited"
	}
	total := int(remaining.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}

// ToMap serializes the session for saving. Mode settings are presets and are
// re-derived from the mode on load.
func (s *Session) ToMap() map[string]any {
	return map[string]any{
		"game_name":   s.Name,
		"seed":        float64(s.Seed),
		"mode":        string(s.Mode),
		"created_at":  float64(s.CreatedAt.Unix()),
		"last_update": float64(s.LastUpdate.Unix()),
		"turn_count":  float64(s.TurnCount),
	}
}

// SessionFromMap restores a session from saved data.
func SessionFromMap(data map[string]any) (*Session, error) {
	name, _ := data["game_name"].(string)
	modeStr, _ := data["mode"].(string)
	if modeStr == "" {
		modeStr = string(ModeUnlimited)
	}

	seed, ok := data["seed"].(float64)
	if !ok {
		return nil, fmt.Errorf("session data missing seed")
	}

	s, err := NewSession(name, int64(math.Round(seed)), Mode(modeStr))
	if err != nil {
		return nil, err
	}
	if v, ok := data["created_at"].(float64); ok {
		s.CreatedAt = time.Unix(int64(math.Round(v)), 0)
	}
	if v, ok := data["last_update"].(float64); ok {
		s.LastUpdate = time.Unix(int64(math.Round(v)), 0)
	}
	if v, ok := data["turn_count"].(float64); ok {
		s.TurnCount = int(math.Round(v))
	}
	return s, nil
}
