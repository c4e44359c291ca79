package events

// MiningAchievementReached reports whether the player hit the 99.99% mining
// efficiency trophy threshold.
func MiningAchievementReached(miningPercentage float64) bool {
	return miningPercentage >= 99.99
}

// Bankrupt reports whether the dollar balance has gone negative.
func Bankrupt(dollar float64) bool {
	return dollar < 0
}
