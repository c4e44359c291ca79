package market

import "math/big"

const (
	// digitsPerTurn is the width of the digit window consumed per turn.
	digitsPerTurn = 4

	// chunkTurns is how many turns a single digit string serves before a
	// fresh one is derived (500 digits / 4 per turn).
	chunkTurns = 125

	// defaultCourse is returned for turns outside the generated domain.
	defaultCourse = 70

	// variationRange bounds the swing: variations fall in
	// [-variationRange, variationRange+50].
	variationRange = 50
)

// thresholdDigits is the magnitude the accumulator must exceed (10^700).
const thresholdDigits = 700

// Generator produces deterministic course variations from a seed. The same
// (seed, turn) pair always yields the same value, independent of the order
// turns are requested in, so any client holding the seed reconstructs an
// identical price history.
type Generator struct {
	seed  int64
	cache map[int]int
}

// NewGenerator creates a course generator for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed, cache: make(map[int]int)}
}

// Seed returns the generator's seed.
func (g *Generator) Seed() int64 { return g.seed }

// CourseFor returns the deterministic variation for a turn. Results are
// cached per turn and never recomputed. Turns below 1 fall back to the
// default course value.
func (g *Generator) CourseFor(turn int) int {
	if turn < 1 {
		return defaultCourse
	}
	if v, ok := g.cache[turn]; ok {
		return v
	}
	g.generateChunk(turn, -variationRange, variationRange+50)
	if v, ok := g.cache[turn]; ok {
		return v
	}
	return defaultCourse
}

// generateChunk fills the cache for every turn sharing the given turn's digit
// string. Chunks are aligned to fixed 125-turn boundaries so that the digit
// window offset of a turn does not depend on which turn was requested first.
func (g *Generator) generateChunk(turn, minVal, maxVal int) {
	chunk := (turn - 1) / chunkTurns
	base := chunk*chunkTurns + 1

	digits := bigNumberString(g.seed, int64(base))
	difference := maxVal - minVal

	for i := 0; i < chunkTurns; i++ {
		t := base + i
		if _, ok := g.cache[t]; ok {
			continue
		}

		offset := i * digitsPerTurn

		// Little-endian digit weighting within the window; positions past
		// the end of the string contribute zero.
		fin := 0
		for d := 0; d < digitsPerTurn; d++ {
			if offset+d < len(digits) {
				fin += int(digits[offset+d]-'0') * pow10(d)
			}
		}

		scaled := float64(fin*difference) / float64(pow10(digitsPerTurn))
		g.cache[t] = roundHalfUp(scaled) + minVal
	}
}

// bigNumberString derives a long turn-and-seed-dependent digit string by
// multiplying an accumulator until it exceeds 10^700.
func bigNumberString(seed, turn int64) string {
	if seed < 1 {
		seed = 1
	}
	threshold := new(big.Int).Exp(big.NewInt(10), big.NewInt(thresholdDigits), nil)
	nb := big.NewInt(seed)
	t := int64(1)
	for nb.Cmp(threshold) < 0 {
		t += 1 + turn*seed
		nb.Mul(nb, big.NewInt(t))
	}
	return nb.String()
}

// roundHalfUp truncates unless the fractional part exceeds 0.5.
func roundHalfUp(value float64) int {
	i := int(value)
	if value-float64(i) > 0.5 {
		return i + 1
	}
	return i
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
