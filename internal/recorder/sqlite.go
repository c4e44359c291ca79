package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tooling can read history while the game writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS turn_snapshots (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			turn             INTEGER NOT NULL,
			course           REAL,
			course_change    REAL,
			dollar           REAL,
			arobase          REAL,
			arobase_for_sale REAL,
			power            INTEGER,
			pool             TEXT,
			score            INTEGER,
			event_title      TEXT,
			event_cost       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turn_ts ON turn_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trade_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			turn       INTEGER NOT NULL,
			event_type TEXT,
			amount     REAL,
			dollar     REAL,
			note       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trade_ts ON trade_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS pool_events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			turn      INTEGER NOT NULL,
			pool      TEXT,
			action    TEXT,
			note      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pool_ts ON pool_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTurn(snap *TurnSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO turn_snapshots
		(timestamp, turn, course, course_change, dollar, arobase, arobase_for_sale,
		 power, pool, score, event_title, event_cost)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Turn, snap.Course, snap.CourseChange,
		snap.Dollar, snap.Arobase, snap.ArobaseForSale,
		snap.Power, snap.Pool, snap.Score, snap.EventTitle, snap.EventCost,
	)
	return err
}

func (r *SQLiteRecorder) RecordTrade(evt *TradeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO trade_events
		(timestamp, turn, event_type, amount, dollar, note)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Turn, evt.EventType, evt.Amount, evt.Dollar, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) RecordPoolChange(evt *PoolEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO pool_events
		(timestamp, turn, pool, action, note)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Turn, evt.Pool, evt.Action, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
