package autosave

import (
	"testing"
	"time"
)

func TestScheduler_DueAfterTick(t *testing.T) {
	s, err := NewScheduler(100 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	s.Start()
	defer s.Stop()

	if s.Due() {
		t.Fatal("due before the first tick")
	}

	deadline := time.After(3 * time.Second)
	for !s.Due() {
		select {
		case <-deadline:
			t.Fatal("no tick within 3s")
		case <-time.After(10 * time.Millisecond):
		}
	}

	s.MarkSaved()
	if s.Due() {
		t.Error("still due after MarkSaved")
	}
}

func TestScheduler_NotDueBeforeStart(t *testing.T) {
	s, err := NewScheduler(time.Second)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if s.Due() {
		t.Error("due without Start")
	}
}
