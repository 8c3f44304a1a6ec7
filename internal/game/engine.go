// internal/game/engine.go
//
// Feedback computation and the per-playthrough game loop.
// Responsibilities:
//   - Score a guess against an answer with the classic two-pass algorithm
//     (duplicate letters credited at most as often as they occur unmatched
//     in the answer).
//   - Drive one playthrough: invoke the Guesser, detect the win, enforce
//     guess legality and the hard round cap, accumulate history.
//
// Notes:
//   - Words are validated at construction (words.Parse), so scoring is
//     total here and never fails.
//   - The loop is single-threaded; independent playthroughs may run on
//     separate goroutines against the same shared Dictionary.

package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/TheLionCoder/wordle-solver/internal/words"
)

// MaxRounds is the hard cap on rounds per playthrough. Deliberately larger
// than the human-facing limit of 6 so solver quality can be measured as a
// full round distribution rather than a win/lose bit.
const MaxRounds = 32

// ErrIllegalGuess reports a Guesser contract violation: the strategy
// returned a word outside the dictionary. The playthrough terminates; the
// loop never skips or retries an illegal guess.
var ErrIllegalGuess = errors.New("game: guess is not in the dictionary")

// ErrBadMask reports a feedback mask without exactly five marks.
var ErrBadMask = errors.New("game: mask must have exactly 5 marks")

// Compute scores guess against answer and returns the feedback mask.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count the answer letters not consumed by an exact match (a-z).
//
// Pass 2:
//   - For each non-Correct guess letter: if an unconsumed occurrence of
//     that letter remains, mark Misplaced and consume it; otherwise Wrong.
//
// The ordering guarantees a repeated guess letter is never credited more
// often than it occurs unmatched in the answer.
func Compute(answer, guess words.Word) Mask {
	var mask Mask
	var remaining [26]int

	for i := 0; i < words.Length; i++ {
		if guess[i] == answer[i] {
			mask[i] = Correct
		} else {
			mask[i] = Wrong
			remaining[answer[i]-'a']++
		}
	}

	for i := 0; i < words.Length; i++ {
		if mask[i] == Correct {
			continue
		}
		if j := guess[i] - 'a'; remaining[j] > 0 {
			mask[i] = Misplaced
			remaining[j]--
		}
	}
	return mask
}

// Outcome is the terminal state of one playthrough.
// Won with Rounds set, or not won after MaxRounds (exhausted).
type Outcome struct {
	Won    bool
	Rounds int
}

// Session drives playthroughs against a shared read-only dictionary.
type Session struct {
	dict *words.Dictionary
}

// NewSession constructs a Session over dict.
func NewSession(dict *words.Dictionary) *Session {
	return &Session{dict: dict}
}

// Play runs one playthrough of answer against guesser.
//
// Each round the guesser is invoked with the history so far. A guess equal
// to the answer wins and triggers guesser.Finish(round). Any other guess
// must be a legal dictionary word; an illegal one ends the playthrough
// with ErrIllegalGuess naming the word. Otherwise the guess is scored and
// appended to history. Exceeding MaxRounds is a normal outcome (no win
// within the cap), not an error.
func (s *Session) Play(answer words.Word, guesser Guesser) (Outcome, error) {
	history := make([]Guess, 0, 8)
	for round := 1; round <= MaxRounds; round++ {
		guess := guesser.Guess(history)
		if guess == answer {
			guesser.Finish(round)
			return Outcome{Won: true, Rounds: round}, nil
		}
		if !s.dict.Contains(guess) {
			return Outcome{}, fmt.Errorf("%w: %q", ErrIllegalGuess, guess)
		}
		history = append(history, Guess{Word: guess, Mask: Compute(answer, guess)})
	}
	log.Debug().Str("answer", string(answer)).Msg("playthrough exhausted round cap")
	return Outcome{Won: false, Rounds: MaxRounds}, nil
}
