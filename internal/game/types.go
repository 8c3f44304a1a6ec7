// internal/game/types.go
//
// Core type definitions for the solving engine.
// Defines:
//   - Correctness: per-letter feedback for a guess (correct/misplaced/wrong).
//   - Mask: the ordered five-slot feedback pattern for one guess.
//   - PackedMask: dense radix-3 integer encoding of a Mask (table index).
//   - Guess: immutable record of one played guess and its feedback.
//   - Guesser: the pluggable strategy the game loop drives.

package game

import (
	"fmt"

	"github.com/TheLionCoder/wordle-solver/internal/words"
)

// Correctness is the evaluation result for a single letter in a guess.
type Correctness uint8

const (
	// Correct: right letter in the right position (green).
	Correct Correctness = iota
	// Misplaced: letter occurs in the answer, but in another position (yellow).
	Misplaced
	// Wrong: no unmatched occurrence of the letter remains in the answer (gray).
	Wrong
)

// String returns the lowercase name used on the wire and in logs.
func (c Correctness) String() string {
	switch c {
	case Correct:
		return "correct"
	case Misplaced:
		return "misplaced"
	case Wrong:
		return "wrong"
	}
	return fmt.Sprintf("correctness(%d)", uint8(c))
}

// ParseCorrectness is the inverse of String.
func ParseCorrectness(s string) (Correctness, error) {
	switch s {
	case "correct":
		return Correct, nil
	case "misplaced":
		return Misplaced, nil
	case "wrong":
		return Wrong, nil
	}
	return 0, fmt.Errorf("game: unknown correctness %q", s)
}

// NumMasks is the number of distinct feedback patterns: 3^5.
// Three states per slot, five slots; the packed encoding is sized to this,
// not to any looser upper bound.
const NumMasks = 243

// Mask is the ordered feedback pattern for one guess, slot i describing
// guess letter i.
type Mask [words.Length]Correctness

// PackedMask is a Mask packed into a single integer in [0, NumMasks).
// Encoding: code = sum of slot[i] * 3^i with Correct=0, Misplaced=1,
// Wrong=2, so slot 0 is the least significant base-3 digit. Used purely
// as a table index; Mask stays the in-memory representation for logic.
type PackedMask uint8

// Pack encodes m into its radix-3 integer form.
func (m Mask) Pack() PackedMask {
	var code, radix PackedMask = 0, 1
	for i := 0; i < words.Length; i++ {
		code += PackedMask(m[i]) * radix
		radix *= 3
	}
	return code
}

// Unpack decodes p back into a Mask. Inverse of Pack for all 243 codes.
func Unpack(p PackedMask) Mask {
	var m Mask
	for i := 0; i < words.Length; i++ {
		m[i] = Correctness(p % 3)
		p /= 3
	}
	return m
}

// Guess is the immutable record of one played round: the word guessed and
// the feedback it produced. Records accumulate in a playthrough's history
// and act as monotonic constraints on the candidate set.
type Guess struct {
	Word words.Word
	Mask Mask
}

// Matches reports whether candidate, had it been the answer, would have
// produced exactly g.Mask when g.Word was guessed. This predicate is the
// sole filter used to shrink a candidate set.
func (g Guess) Matches(candidate words.Word) bool {
	return Compute(candidate, g.Word) == g.Mask
}

// Guesser is a guessing strategy. Guess returns the next word to play
// given the history so far; legality is enforced by the game loop, not
// here. Guess must be deterministic for a given history and instance
// state. Finish is invoked once with the round count when the answer is
// found, for metrics and logging only.
type Guesser interface {
	Guess(history []Guess) words.Word
	Finish(rounds int)
}
