// internal/solver/solver.go
//
// Entropy-maximizing guessing strategy.
// Responsibilities:
//   - Maintain the candidate view: ranked dictionary entries consistent
//     with every guess record in the history.
//   - Score every candidate guess by expected information gain (Shannon
//     entropy of the packed-mask partition of the candidate set) blended
//     with the prior probability that the guess is itself the answer.
//   - Spread the per-guess scoring sweep across worker goroutines; each
//     guess's histogram is private, so the sweep needs no locking and
//     reduces to a single argmax.
//
// Policy notes:
//   - The guess universe is the current candidate set (not the full legal
//     dictionary), so every suggestion is a legal word by construction.
//   - Score(g) = p(g) + EntropyWeight * H(g). Entropy dominates while the
//     candidate set is large (H up to log2(n) bits) and the prior takes
//     over as it shrinks (H falls toward 0 while p(g) grows).
//   - Candidates are scanned in rank order and ties keep the earlier
//     entry, so the best-rank word wins deterministically.

package solver

import (
	"errors"
	"math"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/TheLionCoder/wordle-solver/internal/game"
	"github.com/TheLionCoder/wordle-solver/internal/words"
)

// DefaultEntropyWeight is the default blend factor between expected
// information gain and prior likelihood.
const DefaultEntropyWeight = 0.5

// ErrNoCandidates reports a history no dictionary word is consistent
// with. It cannot occur in a playthrough whose answer is in the
// dictionary; it surfaces only for externally supplied histories.
var ErrNoCandidates = errors.New("solver: no candidate is consistent with the history")

// Config tunes a Solver. Zero values select defaults.
type Config struct {
	// Workers bounds the scoring sweep's parallelism. 0 means NumCPU.
	Workers int
	// EntropyWeight is the H(g) coefficient in the blend score.
	// 0 means DefaultEntropyWeight.
	EntropyWeight float64
}

// Solver is the entropy-maximizing game.Guesser. It holds no per-game
// state (the candidate view is recomputed from the history each round),
// so one instance may serve many concurrent playthroughs.
type Solver struct {
	dict    *words.Dictionary
	workers int
	weight  float64
}

// New constructs a Solver over dict.
func New(dict *words.Dictionary, cfg Config) *Solver {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	weight := cfg.EntropyWeight
	if weight == 0 {
		weight = DefaultEntropyWeight
	}
	return &Solver{dict: dict, workers: workers, weight: weight}
}

// candidate is one surviving dictionary entry during a round.
type candidate struct {
	word   words.Word
	weight float64
}

// Guess implements game.Guesser. The game loop only ever presents
// histories produced from a dictionary answer, for which Suggest cannot
// fail; any other use is a programming error.
func (s *Solver) Guess(history []game.Guess) words.Word {
	w, _, err := s.Suggest(history)
	if err != nil {
		panic(err)
	}
	return w
}

// Finish implements game.Guesser.
func (s *Solver) Finish(rounds int) {
	log.Debug().Int("rounds", rounds).Msg("solver found the answer")
}

// Suggest returns the best next guess for history along with the number
// of candidates still consistent with it.
func (s *Solver) Suggest(history []game.Guess) (words.Word, int, error) {
	cands := s.filter(history)
	if len(cands) == 0 {
		return "", 0, ErrNoCandidates
	}
	if len(cands) == 1 {
		// Guaranteed win next round.
		return cands[0].word, 1, nil
	}

	var total float64
	for _, c := range cands {
		total += c.weight
	}

	bits := s.sweep(cands, total)

	best, bestScore := 0, math.Inf(-1)
	for i, c := range cands {
		score := c.weight/total + s.weight*bits[i]
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return cands[best].word, len(cands), nil
}

// filter returns a fresh candidate view: every ranked dictionary entry
// consistent with all guess records. The view only ever shrinks as
// records accumulate, and a correctly scored answer always survives.
func (s *Solver) filter(history []game.Guess) []candidate {
	ranked := s.dict.Ranked()
	cands := make([]candidate, 0, len(ranked))
	for _, e := range ranked {
		ok := true
		for _, g := range history {
			if !g.Matches(e.Word) {
				ok = false
				break
			}
		}
		if ok {
			cands = append(cands, candidate{word: e.Word, weight: float64(e.Weight)})
		}
	}
	return cands
}

// sweep computes, for every candidate guess, the expected information
// gain of playing it: candidates are bucketed by the packed mask the
// guess would produce against each of them, and the entropy of the
// bucket mass distribution is the expected bits revealed.
//
// Workers stride the guess index space; every worker owns its histogram,
// so the map phase shares nothing and the only reduction is the caller's
// argmax over the result slice.
func (s *Solver) sweep(cands []candidate, total float64) []float64 {
	bits := make([]float64, len(cands))
	workers := s.workers
	if workers > len(cands) {
		workers = len(cands)
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			var hist [game.NumMasks]float64
			for i := w; i < len(cands); i += workers {
				for j := range hist {
					hist[j] = 0
				}
				for _, a := range cands {
					hist[game.Compute(a.word, cands[i].word).Pack()] += a.weight
				}
				var h float64
				for _, mass := range hist {
					if mass == 0 {
						// Empty buckets carry no mass; log2(0) is never taken.
						continue
					}
					p := mass / total
					h -= p * math.Log2(p)
				}
				bits[i] = h
			}
		}(w)
	}
	wg.Wait()
	return bits
}
