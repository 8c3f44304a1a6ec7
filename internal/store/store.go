// internal/store/store.go
//
// Persistence for simulation results.
// Defines the Store interface plus the record and summary types shared by
// the memory and SQLite implementations.

package store

import "context"

// Store is the persistence interface for simulation results.
// Implementations may be backed by memory (ephemeral runs, tests) or
// SQLite (durable history across service restarts).
type Store interface {
	// Save persists one playthrough result.
	Save(ctx context.Context, r Result) error

	// Summarize aggregates everything saved so far.
	Summarize(ctx context.Context) (Summary, error)
}

// Result records the outcome of one simulated playthrough.
type Result struct {
	Answer    string `json:"answer"`
	Rounds    int    `json:"rounds"`
	Won       bool   `json:"won"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Summary aggregates stored results into a round distribution.
type Summary struct {
	Games     int         `json:"games"`
	Wins      int         `json:"wins"`
	AvgRounds float64     `json:"avgRounds"` // over won games only
	Histogram map[int]int `json:"histogram"` // rounds -> won-game count
}
