package events

import (
	"math/rand"
	"testing"
)

func TestShouldTrigger_ThresholdGate(t *testing.T) {
	m := NewManager(rand.New(rand.NewSource(1)))
	for i := 0; i < 100; i++ {
		if m.ShouldTrigger(9, false, false) {
			t.Fatal("event fired below wealth threshold")
		}
	}
}

func TestShouldTrigger_MaxLevelAlwaysFires(t *testing.T) {
	m := NewManager(rand.New(rand.NewSource(1)))
	// Level 9 covers the whole roll range.
	for i := 0; i < 100; i++ {
		if !m.ShouldTrigger(9, true, false) {
			t.Fatal("level 9 roll did not fire")
		}
	}
}

func TestShouldTrigger_PoolReduction(t *testing.T) {
	base := NewManager(rand.New(rand.NewSource(7)))
	reduced := NewManager(rand.New(rand.NewSource(7)))

	baseHits, reducedHits := 0, 0
	for i := 0; i < 5000; i++ {
		if base.ShouldTrigger(5, true, false) {
			baseHits++
		}
		if reduced.ShouldTrigger(5, true, true) {
			reducedHits++
		}
	}
	if reducedHits >= baseHits {
		t.Errorf("reduction did not lower fire rate: %d vs %d", reducedHits, baseHits)
	}
}

func TestShouldTrigger_ReductionFloorsAtZero(t *testing.T) {
	m := NewManager(rand.New(rand.NewSource(1)))
	hits := 0
	for i := 0; i < 1000; i++ {
		if m.ShouldTrigger(0, true, true) {
			hits++
		}
	}
	// Level 0 still fires on a roll of 0, roughly one time in ten.
	if hits == 0 || hits > 300 {
		t.Errorf("level 0 fired %d/1000 times, want roughly 100", hits)
	}
}

func TestTriggerRandom_CostCap(t *testing.T) {
	m := NewManager(rand.New(rand.NewSource(3)))
	for i := 0; i < 1000; i++ {
		evt := m.TriggerRandom(2000)
		if evt == nil {
			t.Fatal("no event for a solvent player")
		}
		if evt.Cost <= 0 {
			t.Fatalf("event %q cost %v, want positive", evt.Title, evt.Cost)
		}
		if evt.Cost > 1000 {
			t.Fatalf("event %q cost %v exceeds half of 2000", evt.Title, evt.Cost)
		}
	}
}

func TestTriggerRandom_Broke(t *testing.T) {
	m := NewManager(rand.New(rand.NewSource(1)))
	if evt := m.TriggerRandom(0); evt != nil {
		t.Errorf("event for a broke player: %+v", evt)
	}
	if evt := m.TriggerRandom(-10); evt != nil {
		t.Errorf("event for a negative balance: %+v", evt)
	}
}

func TestPepeAppears_Rate(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	hits := 0
	for i := 0; i < 10000; i++ {
		if PepeAppears(rng) {
			hits++
		}
	}
	// 1-in-20 odds: expect around 500 appearances.
	if hits < 300 || hits > 700 {
		t.Errorf("Pepe appeared %d/10000 times, want roughly 500", hits)
	}
}

func TestPickQuestion(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	courseAsked := false
	for i := 0; i < 200; i++ {
		q := PickQuestion(rng, 73.5)
		if q.Text == "" {
			t.Fatal("empty question")
		}
		if q.Answer == 73 {
			courseAsked = true
		}
	}
	if !courseAsked {
		t.Error("course question never picked in 200 draws")
	}
}

func TestEvaluateAnswer(t *testing.T) {
	q := Question{Text: "How much does an RTX 2080 cost?", Answer: 6000}
	if got := EvaluateAnswer(q, 6000); got != QuizRewardMultiplier {
		t.Errorf("correct answer multiplier = %v, want %v", got, QuizRewardMultiplier)
	}
	if got := EvaluateAnswer(q, 1); got != QuizPenaltyMultiplier {
		t.Errorf("wrong answer multiplier = %v, want %v", got, QuizPenaltyMultiplier)
	}
}

func TestAchievements(t *testing.T) {
	if !MiningAchievementReached(99.99) {
		t.Error("99.99 should reach the achievement")
	}
	if MiningAchievementReached(99.98) {
		t.Error("99.98 should not reach the achievement")
	}
	if !Bankrupt(-0.01) {
		t.Error("negative balance should be bankrupt")
	}
	if Bankrupt(0) {
		t.Error("zero balance should not be bankrupt")
	}
}
