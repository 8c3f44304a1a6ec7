// internal/store/sqlite.go
//
// SQLite-backed implementation of the Store interface.
// Responsibilities:
//   - Open (and create if missing) the database file with safe defaults
//     (busy timeout, WAL journaling).
//   - Apply the idempotent schema on open.
//   - Insert playthrough results and aggregate the round distribution.
//
// Note: This file assumes SQLite but can be adapted for other backends.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS sim_results (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	answer     TEXT    NOT NULL,
	rounds     INTEGER NOT NULL,
	won        INTEGER NOT NULL,
	elapsed_ms INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sim_results_answer ON sim_results(answer);
`

// sqlite is a *sql.DB-backed Store implementation.
type sqlite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite results store.
//
// - Ensures the parent directory exists for relative DSNs (./data/app.db).
// - Configures busy timeout and WAL journaling mode.
// - Applies the schema idempotently.
func OpenSQLite(dsn string) (Store, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &sqlite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *sqlite) Close() error { return s.db.Close() }

// Save inserts one playthrough result.
func (s *sqlite) Save(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sim_results(answer, rounds, won, elapsed_ms, created_at)
		 VALUES(?,?,?,?,?)`,
		r.Answer, r.Rounds, r.Won, r.ElapsedMs, time.Now().UTC(),
	)
	return err
}

// Summarize aggregates all stored results into a round distribution.
func (s *sqlite) Summarize(ctx context.Context) (Summary, error) {
	sum := Summary{Histogram: make(map[int]int)}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COALESCE(SUM(won), 0) FROM sim_results`,
	).Scan(&sum.Games, &sum.Wins)
	if err != nil {
		return Summary{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT rounds, COUNT(1) FROM sim_results WHERE won = 1 GROUP BY rounds`,
	)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()

	var roundSum int
	for rows.Next() {
		var rounds, n int
		if err := rows.Scan(&rounds, &n); err != nil {
			return Summary{}, err
		}
		sum.Histogram[rounds] = n
		roundSum += rounds * n
	}
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}
	if sum.Wins > 0 {
		sum.AvgRounds = float64(roundSum) / float64(sum.Wins)
	}
	return sum, nil
}
