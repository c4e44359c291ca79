package market

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/JulesLeCurly/CryptoGame/internal/model"
)

const (
	// minCourse is the floor the course is clamped to after every advance.
	minCourse = 1

	// decayDivisor and decayCap shape the turn-dependent decay applied to
	// mature markets (course above 100).
	decayDivisor = 35
	decayCap     = 25
)

// Market tracks the arobase exchange rate turn by turn. The course history is
// append-only: entries are never revised once written.
type Market struct {
	generator      *Generator
	currentTurn    int
	baseCourse     float64
	currentCourse  float64
	previousCourse float64
	courseMax      float64
	courseMin      float64
	history        map[int]float64
}

// New creates a market seeded at the given starting course on turn 0.
func New(seed int64, startingCourse float64) *Market {
	return &Market{
		generator:      NewGenerator(seed),
		baseCourse:     startingCourse,
		currentCourse:  startingCourse,
		previousCourse: startingCourse,
		courseMax:      startingCourse,
		courseMin:      startingCourse,
		history:        map[int]float64{0: startingCourse},
	}
}

// Seed returns the market's deterministic seed.
func (m *Market) Seed() int64 { return m.generator.Seed() }

// CurrentTurn returns the current turn counter.
func (m *Market) CurrentTurn() int { return m.currentTurn }

// CurrentCourse returns the current exchange rate.
func (m *Market) CurrentCourse() float64 { return m.currentCourse }

// PreviousCourse returns the exchange rate of the previous turn.
func (m *Market) PreviousCourse() float64 { return m.previousCourse }

// CourseMax returns the highest course seen so far.
func (m *Market) CourseMax() float64 { return m.courseMax }

// CourseMin returns the lowest course seen so far.
func (m *Market) CourseMin() float64 { return m.courseMin }

// History returns a copy of the turn -> course history.
func (m *Market) History() map[int]float64 {
	h := make(map[int]float64, len(m.history))
	for k, v := range m.history {
		h[k] = v
	}
	return h
}

// AdvanceTurn moves the market one turn forward and returns the new course.
// Above 100 the variation is applied at full scale in integer math minus a
// turn-dependent decay; below 100 it is applied at one-tenth scale keeping
// two decimals, so cheap markets swing finely and mature markets coarsely.
func (m *Market) AdvanceTurn() float64 {
	m.currentTurn++
	m.previousCourse = m.currentCourse

	variation := m.generator.CourseFor(m.currentTurn)

	decay := m.currentTurn / decayDivisor
	if decay > decayCap {
		decay = decayCap
	}

	if m.currentCourse > 100 {
		m.currentCourse += float64(variation - decay)
		m.currentCourse = math.Trunc(m.currentCourse)
	} else {
		m.currentCourse += float64(variation) / 10
		m.currentCourse = math.Trunc(m.currentCourse*100) / 100
	}

	if m.currentCourse < minCourse {
		m.currentCourse = minCourse
	}

	if m.currentCourse > m.courseMax {
		m.courseMax = m.currentCourse
	}
	if m.currentCourse < m.courseMin {
		m.courseMin = m.currentCourse
	}

	m.history[m.currentTurn] = m.currentCourse
	return m.currentCourse
}

// CourseChange returns the signed change from the previous turn.
func (m *Market) CourseChange() float64 {
	return m.currentCourse - m.previousCourse
}

// CalculateBuyAmount returns how much arobase the given dollars buy after tax.
func (m *Market) CalculateBuyAmount(dollars, tax float64) float64 {
	if dollars <= tax {
		return 0
	}
	return (dollars - tax) / m.currentCourse
}

// CalculateSellValue returns the dollar value of the given arobase.
func (m *Market) CalculateSellValue(arobase float64) float64 {
	return arobase * m.currentCourse
}

// Statistics summarizes the recorded history (max, min, mean, population
// standard deviation).
func (m *Market) Statistics() model.MarketStats {
	if len(m.history) < 2 {
		return model.MarketStats{
			Max:     m.courseMax,
			Min:     m.courseMin,
			Average: m.currentCourse,
		}
	}

	var total float64
	for _, v := range m.history {
		total += v
	}
	avg := total / float64(len(m.history))

	var variance float64
	for _, v := range m.history {
		variance += (v - avg) * (v - avg)
	}
	variance /= float64(len(m.history))

	return model.MarketStats{
		Max:        m.courseMax,
		Min:        m.courseMin,
		Average:    math.Round(avg*100) / 100,
		Volatility: math.Round(math.Sqrt(variance)*100) / 100,
	}
}

// Trend returns the direction of the least-squares slope over the last
// window history points. Slopes of magnitude 1 or less count as stable.
func (m *Market) Trend(window int) model.Trend {
	if window <= 0 || len(m.history) < window {
		return model.TrendStable
	}

	turns := make([]int, 0, len(m.history))
	for t := range m.history {
		turns = append(turns, t)
	}
	sort.Ints(turns)
	turns = turns[len(turns)-window:]

	var avgTurn, avgValue float64
	for _, t := range turns {
		avgTurn += float64(t)
		avgValue += m.history[t]
	}
	avgTurn /= float64(len(turns))
	avgValue /= float64(len(turns))

	var numerator, denominator float64
	for _, t := range turns {
		numerator += (float64(t) - avgTurn) * (m.history[t] - avgValue)
		denominator += (float64(t) - avgTurn) * (float64(t) - avgTurn)
	}
	if denominator == 0 {
		return model.TrendStable
	}

	slope := numerator / denominator
	switch {
	case slope > 1:
		return model.TrendRising
	case slope < -1:
		return model.TrendFalling
	default:
		return model.TrendStable
	}
}

// ToMap serializes the market for saving.
func (m *Market) ToMap() map[string]any {
	history := make(map[string]any, len(m.history))
	for t, v := range m.history {
		history[strconv.Itoa(t)] = v
	}
	return map[string]any{
		"seed":            float64(m.generator.Seed()),
		"current_turn":    float64(m.currentTurn),
		"base_course":     m.baseCourse,
		"current_course":  m.currentCourse,
		"previous_course": m.previousCourse,
		"course_max":      m.courseMax,
		"course_min":      m.courseMin,
		"history":         history,
	}
}

// FromMap restores a market from saved data.
func FromMap(data map[string]any) (*Market, error) {
	seed, ok := numberField(data, "seed")
	if !ok {
		return nil, fmt.Errorf("market data missing seed")
	}
	base, ok := numberField(data, "base_course")
	if !ok {
		base = defaultCourse
	}

	m := New(int64(seed), base)
	if v, ok := numberField(data, "current_turn"); ok {
		m.currentTurn = int(math.Round(v))
	}
	if v, ok := numberField(data, "current_course"); ok {
		m.currentCourse = v
	}
	if v, ok := numberField(data, "previous_course"); ok {
		m.previousCourse = v
	}
	if v, ok := numberField(data, "course_max"); ok {
		m.courseMax = v
	}
	if v, ok := numberField(data, "course_min"); ok {
		m.courseMin = v
	}

	if raw, ok := data["history"].(map[string]any); ok {
		history := make(map[int]float64, len(raw))
		for k, v := range raw {
			turn, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("market history key %q: %w", k, err)
			}
			f, ok := asNumber(v)
			if !ok {
				return nil, fmt.Errorf("market history value for turn %s is not numeric", k)
			}
			history[turn] = f
		}
		m.history = history
	}

	return m, nil
}

func numberField(data map[string]any, key string) (float64, bool) {
	return asNumber(data[key])
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
