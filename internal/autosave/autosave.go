package autosave

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler flags the game loop when an autosave is due. The cron tick only
// raises a flag: the actual save runs synchronously inside the loop, at a
// safe suspension point, so no turn is ever mutated concurrently.
type Scheduler struct {
	cron *cron.Cron
	due  atomic.Bool
}

// NewScheduler creates a scheduler ticking at the given interval.
func NewScheduler(interval time.Duration) (*Scheduler, error) {
	s := &Scheduler{cron: cron.New()}
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := s.cron.AddFunc(spec, func() { s.due.Store(true) }); err != nil {
		return nil, fmt.Errorf("register autosave tick: %w", err)
	}
	return s, nil
}

// Start starts the autosave ticker.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("[INFO] autosave scheduler started")
}

// Stop stops the ticker gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[INFO] autosave scheduler stopped")
}

// Due reports whether an autosave should run now.
func (s *Scheduler) Due() bool {
	return s.due.Load()
}

// MarkSaved clears the due flag after a completed save.
func (s *Scheduler) MarkSaved() {
	s.due.Store(false)
}
