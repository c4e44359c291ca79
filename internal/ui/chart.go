package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JulesLeCurly/CryptoGame/internal/market"
)

const (
	chartHeight = 12
	chartWidth  = 50
)

// FormatChart renders the recent course history as an ASCII chart.
func FormatChart(m *market.Market) string {
	history := m.History()
	if len(history) < 2 {
		return "Not enough history for a chart yet."
	}

	turns := make([]int, 0, len(history))
	for t := range history {
		turns = append(turns, t)
	}
	sort.Ints(turns)
	if len(turns) > chartWidth {
		turns = turns[len(turns)-chartWidth:]
	}

	low, high := history[turns[0]], history[turns[0]]
	for _, t := range turns {
		v := history[t]
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	span := high - low
	if span == 0 {
		span = 1
	}

	grid := make([][]byte, chartHeight)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", len(turns)))
	}
	for col, t := range turns {
		row := int((history[t] - low) / span * float64(chartHeight-1))
		grid[chartHeight-1-row][col] = '*'
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Course history (turns %d-%d)\n", turns[0], turns[len(turns)-1]))
	b.WriteString(fmt.Sprintf("$%.2f\n", high))
	for _, line := range grid {
		b.WriteString("| " + string(line) + "\n")
	}
	b.WriteString(fmt.Sprintf("$%.2f\n", low))
	return b.String()
}
