// internal/sim/sim.go
//
// Batch simulation of playthroughs for measuring solver quality.
// Responsibilities:
//   - Play a set of answers against a Guesser factory, many games in
//     parallel (games are independent; each owns its history).
//   - Aggregate the round distribution and failure count.
//   - Optionally persist every result to a Store and report progress.
//
// Within a game, rounds stay strictly sequential; parallelism here is
// purely at the game level, on top of the solver's own intra-round sweep.

package sim

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TheLionCoder/wordle-solver/internal/game"
	"github.com/TheLionCoder/wordle-solver/internal/store"
	"github.com/TheLionCoder/wordle-solver/internal/words"
)

// Runner plays batches of answers and aggregates outcomes.
type Runner struct {
	dict       *words.Dictionary
	newGuesser func() game.Guesser
	workers    int

	// Store, when non-nil, receives every result.
	Store store.Store
	// OnResult, when non-nil, is called serially after each game
	// (progress reporting).
	OnResult func(store.Result)
}

// NewRunner constructs a Runner. newGuesser is called once per game, so
// strategies may keep per-playthrough state. workers <= 0 means 1.
func NewRunner(dict *words.Dictionary, newGuesser func() game.Guesser, workers int) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{dict: dict, newGuesser: newGuesser, workers: workers}
}

// Run plays every answer and returns the aggregated summary. The first
// game or store error aborts the batch.
func (r *Runner) Run(ctx context.Context, answers []words.Word) (store.Summary, error) {
	session := game.NewSession(r.dict)
	summary := store.Summary{Histogram: make(map[int]int)}
	var roundSum int
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan words.Word)

	g.Go(func() error {
		defer close(jobs)
		for _, a := range answers {
			select {
			case jobs <- a:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < r.workers; w++ {
		g.Go(func() error {
			for answer := range jobs {
				start := time.Now()
				outcome, err := session.Play(answer, r.newGuesser())
				if err != nil {
					return err
				}
				res := store.Result{
					Answer:    string(answer),
					Rounds:    outcome.Rounds,
					Won:       outcome.Won,
					ElapsedMs: time.Since(start).Milliseconds(),
				}
				if r.Store != nil {
					if err := r.Store.Save(ctx, res); err != nil {
						return err
					}
				}
				mu.Lock()
				summary.Games++
				if outcome.Won {
					summary.Wins++
					summary.Histogram[outcome.Rounds]++
					roundSum += outcome.Rounds
				}
				if r.OnResult != nil {
					r.OnResult(res)
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return store.Summary{}, err
	}
	if summary.Wins > 0 {
		summary.AvgRounds = float64(roundSum) / float64(summary.Wins)
	}
	return summary, nil
}
