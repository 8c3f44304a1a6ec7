// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used for one-shot simulation runs and tests, when durability is not
// required.
//
// Characteristics:
//   - Appends Result records to a slice guarded by an RWMutex.
//   - Concurrency-safe (simulation workers save from many goroutines).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"
)

// memory is a slice-backed Store implementation.
type memory struct {
	mu      sync.RWMutex // guards results
	results []Result
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Save appends the result.
func (m *memory) Save(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

// Summarize aggregates the stored results.
func (m *memory) Summarize(ctx context.Context) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := Summary{Histogram: make(map[int]int)}
	var roundSum int
	for _, r := range m.results {
		s.Games++
		if !r.Won {
			continue
		}
		s.Wins++
		roundSum += r.Rounds
		s.Histogram[r.Rounds]++
	}
	if s.Wins > 0 {
		s.AvgRounds = float64(roundSum) / float64(s.Wins)
	}
	return s, nil
}
