package model

// PoolInfo describes a mining pool for display.
type PoolInfo struct {
	ID          string
	Name        string
	Description string
}

// MineReward is the outcome of one mining action. Dollar may be negative for
// pools that charge a fee.
type MineReward struct {
	Arobase  float64
	Dollar   float64
	Messages []string
}

// JoinResult is the outcome of a successful pool join.
type JoinResult struct {
	Pool         string
	WelcomeBonus float64
	Message      string
}
