package market

import (
	"testing"

	"github.com/JulesLeCurly/CryptoGame/internal/model"
)

func TestAdvanceTurn_Reproducible(t *testing.T) {
	a := New(937962751, 70)
	b := New(937962751, 70)

	for turn := 1; turn <= 20; turn++ {
		va := a.AdvanceTurn()
		vb := b.AdvanceTurn()
		if va != vb {
			t.Fatalf("turn %d: courses diverged (%v vs %v)", turn, va, vb)
		}
	}
}

func TestAdvanceTurn_Bounds(t *testing.T) {
	m := New(35042, 70)
	for turn := 1; turn <= 100; turn++ {
		course := m.AdvanceTurn()
		if course < minCourse {
			t.Fatalf("turn %d: course %v below floor %d", turn, course, minCourse)
		}
		if course < m.CourseMin() || course > m.CourseMax() {
			t.Fatalf("turn %d: course %v outside recorded [%v, %v]", turn, course, m.CourseMin(), m.CourseMax())
		}
	}
	if m.CourseMin() > m.CourseMax() {
		t.Errorf("min %v exceeds max %v", m.CourseMin(), m.CourseMax())
	}
}

func TestAdvanceTurn_HistoryAppendOnly(t *testing.T) {
	m := New(35042, 70)
	seen := map[int]float64{0: 70}
	for turn := 1; turn <= 30; turn++ {
		seen[turn] = m.AdvanceTurn()
		history := m.History()
		if len(history) != len(seen) {
			t.Fatalf("turn %d: history has %d entries, want %d", turn, len(history), len(seen))
		}
		for k, v := range seen {
			if history[k] != v {
				t.Fatalf("turn %d: history[%d] = %v, was recorded as %v", turn, k, history[k], v)
			}
		}
	}
}

func TestCalculateBuyAmount(t *testing.T) {
	m := New(1, 50)

	if got := m.CalculateBuyAmount(100, 10); got != 90.0/50 {
		t.Errorf("CalculateBuyAmount(100, 10) = %v, want %v", got, 90.0/50)
	}
	if got := m.CalculateBuyAmount(10, 10); got != 0 {
		t.Errorf("spend equal to tax should buy nothing, got %v", got)
	}
	if got := m.CalculateBuyAmount(5, 10); got != 0 {
		t.Errorf("spend below tax should buy nothing, got %v", got)
	}
}

func TestCalculateSellValue(t *testing.T) {
	m := New(1, 80)
	if got := m.CalculateSellValue(2.5); got != 200 {
		t.Errorf("CalculateSellValue(2.5) = %v, want 200", got)
	}
}

func TestStatistics(t *testing.T) {
	m, err := FromMap(map[string]any{
		"seed":           1.0,
		"base_course":    70.0,
		"current_course": 30.0,
		"course_max":     30.0,
		"course_min":     10.0,
		"history": map[string]any{
			"0": 10.0,
			"1": 20.0,
			"2": 30.0,
		},
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}

	stats := m.Statistics()
	if stats.Average != 20 {
		t.Errorf("average = %v, want 20", stats.Average)
	}
	if stats.Volatility != 8.16 {
		t.Errorf("volatility = %v, want 8.16", stats.Volatility)
	}
	if stats.Max != 30 || stats.Min != 10 {
		t.Errorf("max/min = %v/%v, want 30/10", stats.Max, stats.Min)
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name    string
		history map[string]any
		want    model.Trend
	}{
		{
			name:    "rising",
			history: map[string]any{"0": 10.0, "1": 25.0, "2": 40.0, "3": 55.0, "4": 70.0},
			want:    model.TrendRising,
		},
		{
			name:    "falling",
			history: map[string]any{"0": 70.0, "1": 55.0, "2": 40.0, "3": 25.0, "4": 10.0},
			want:    model.TrendFalling,
		},
		{
			name:    "flat is stable",
			history: map[string]any{"0": 50.0, "1": 50.0, "2": 50.0, "3": 50.0, "4": 50.0},
			want:    model.TrendStable,
		},
		{
			name:    "gentle slope is stable",
			history: map[string]any{"0": 50.0, "1": 50.5, "2": 51.0, "3": 51.5, "4": 52.0},
			want:    model.TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromMap(map[string]any{
				"seed":        1.0,
				"base_course": 70.0,
				"history":     tt.history,
			})
			if err != nil {
				t.Fatalf("FromMap: %v", err)
			}
			if got := m.Trend(5); got != tt.want {
				t.Errorf("Trend(5) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrend_ShortHistory(t *testing.T) {
	m := New(1, 70)
	if got := m.Trend(5); got != model.TrendStable {
		t.Errorf("Trend with short history = %v, want stable", got)
	}
}

func TestMarketRoundTrip(t *testing.T) {
	m := New(937962751, 70)
	for i := 0; i < 12; i++ {
		m.AdvanceTurn()
	}

	restored, err := FromMap(m.ToMap())
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}

	if restored.CurrentTurn() != m.CurrentTurn() {
		t.Errorf("turn = %d, want %d", restored.CurrentTurn(), m.CurrentTurn())
	}
	if restored.CurrentCourse() != m.CurrentCourse() {
		t.Errorf("course = %v, want %v", restored.CurrentCourse(), m.CurrentCourse())
	}
	if restored.CourseMax() != m.CourseMax() || restored.CourseMin() != m.CourseMin() {
		t.Errorf("max/min = %v/%v, want %v/%v",
			restored.CourseMax(), restored.CourseMin(), m.CourseMax(), m.CourseMin())
	}

	// The restored market must continue the same deterministic sequence.
	if got, want := restored.AdvanceTurn(), m.AdvanceTurn(); got != want {
		t.Errorf("next course after restore = %v, want %v", got, want)
	}
}

func TestFromMap_MissingSeed(t *testing.T) {
	if _, err := FromMap(map[string]any{"base_course": 70.0}); err == nil {
		t.Error("expected error for missing seed")
	}
}
