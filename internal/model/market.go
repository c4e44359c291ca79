package model

// Trend classifies the recent course direction.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// MarketStats summarizes the recorded course history.
type MarketStats struct {
	Max        float64
	Min        float64
	Average    float64
	Volatility float64
}
