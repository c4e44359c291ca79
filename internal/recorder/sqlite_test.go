package recorder

import (
	"path/filepath"
	"testing"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRecordTurn(t *testing.T) {
	r := newTestRecorder(t)

	err := r.RecordTurn(&TurnSnapshot{
		Turn:         1,
		Course:       71.5,
		CourseChange: 1.5,
		Dollar:       250,
		Arobase:      0.45,
		Power:        2,
		Pool:         "BTC",
		Score:        0,
	})
	if err != nil {
		t.Fatalf("RecordTurn: %v", err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM turn_snapshots").Scan(&count); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}

	var course float64
	var pool string
	if err := r.db.QueryRow("SELECT course, pool FROM turn_snapshots WHERE turn = 1").Scan(&course, &pool); err != nil {
		t.Fatalf("select query: %v", err)
	}
	if course != 71.5 || pool != "BTC" {
		t.Errorf("stored course/pool = %v/%q, want 71.5/BTC", course, pool)
	}
}

func TestRecordTrade(t *testing.T) {
	r := newTestRecorder(t)

	err := r.RecordTrade(&TradeEvent{
		Turn:      3,
		EventType: "SALE_SETTLED",
		Amount:    5,
		Dollar:    350,
	})
	if err != nil {
		t.Fatalf("RecordTrade: %v", err)
	}

	var eventType string
	if err := r.db.QueryRow("SELECT event_type FROM trade_events WHERE turn = 3").Scan(&eventType); err != nil {
		t.Fatalf("select query: %v", err)
	}
	if eventType != "SALE_SETTLED" {
		t.Errorf("event type = %q, want SALE_SETTLED", eventType)
	}
}

func TestRecordPoolChange(t *testing.T) {
	r := newTestRecorder(t)

	err := r.RecordPoolChange(&PoolEvent{Turn: 2, Pool: "ITS+", Action: "UNLOCK"})
	if err != nil {
		t.Fatalf("RecordPoolChange: %v", err)
	}

	var action string
	if err := r.db.QueryRow("SELECT action FROM pool_events WHERE pool = 'ITS+'").Scan(&action); err != nil {
		t.Fatalf("select query: %v", err)
	}
	if action != "UNLOCK" {
		t.Errorf("action = %q, want UNLOCK", action)
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	r := newTestRecorder(t)
	if err := r.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
