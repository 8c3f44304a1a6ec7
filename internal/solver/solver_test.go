package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheLionCoder/wordle-solver/internal/game"
	"github.com/TheLionCoder/wordle-solver/internal/words"
)

func dictOf(t *testing.T, entries ...words.Entry) *words.Dictionary {
	t.Helper()
	d, err := words.New(entries)
	require.NoError(t, err)
	return d
}

func smallDict(t *testing.T) *words.Dictionary {
	t.Helper()
	return dictOf(t,
		words.Entry{Word: "crane", Weight: 100},
		words.Entry{Word: "slate", Weight: 90},
		words.Entry{Word: "about", Weight: 80},
		words.Entry{Word: "boost", Weight: 50},
		words.Entry{Word: "books", Weight: 40},
		words.Entry{Word: "which", Weight: 30},
		words.Entry{Word: "there", Weight: 20},
		words.Entry{Word: "gauge", Weight: 10},
	)
}

func TestSuggestSingleCandidate(t *testing.T) {
	t.Parallel()
	s := New(smallDict(t), Config{Workers: 2})
	// Feedback for guessing "boost" against answer "books" eliminates
	// everything except "books".
	history := []game.Guess{{Word: "boost", Mask: game.Compute("books", "boost")}}
	w, n, err := s.Suggest(history)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, words.Word("books"), w)
}

func TestSuggestNoCandidates(t *testing.T) {
	t.Parallel()
	s := New(smallDict(t), Config{})
	// All-correct feedback for a guess that is not the answer of any
	// other word leaves nothing.
	history := []game.Guess{
		{Word: "crane", Mask: game.Mask{game.Correct, game.Correct, game.Correct, game.Correct, game.Correct}},
		{Word: "slate", Mask: game.Mask{game.Correct, game.Correct, game.Correct, game.Correct, game.Correct}},
	}
	_, _, err := s.Suggest(history)
	require.ErrorIs(t, err, ErrNoCandidates)
}

func TestSuggestDeterministic(t *testing.T) {
	t.Parallel()
	s := New(smallDict(t), Config{Workers: 4})
	history := []game.Guess{{Word: "which", Mask: game.Compute("crane", "which")}}
	first, n1, err := s.Suggest(history)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, n2, err := s.Suggest(history)
		require.NoError(t, err)
		require.Equal(t, first, again)
		require.Equal(t, n1, n2)
	}
}

func TestFilterMonotonicAndSound(t *testing.T) {
	t.Parallel()
	s := New(smallDict(t), Config{})
	answer := words.Word("books")

	var history []game.Guess
	prev := s.filter(history)
	for _, guess := range []words.Word{"crane", "about", "boost"} {
		history = append(history, game.Guess{Word: guess, Mask: game.Compute(answer, guess)})
		cur := s.filter(history)
		// Never grows.
		require.LessOrEqual(t, len(cur), len(prev))
		// The true answer is never filtered out.
		require.True(t, containsWord(cur, answer))
		// Subset of the previous view.
		for _, c := range cur {
			require.True(t, containsWord(prev, c.word))
		}
		prev = cur
	}
}

func containsWord(cands []candidate, w words.Word) bool {
	for _, c := range cands {
		if c.word == w {
			return true
		}
	}
	return false
}

func TestSweepUniformPartition(t *testing.T) {
	t.Parallel()
	// Four pairwise-disjoint words with equal weight: any guess splits
	// the set into itself (mass 1/4) and the rest (mass 3/4), so every
	// guess reveals the same expected bits.
	s := New(smallDict(t), Config{Workers: 2})
	cands := []candidate{
		{word: "aaaaa", weight: 1},
		{word: "bbbbb", weight: 1},
		{word: "ccccc", weight: 1},
		{word: "ddddd", weight: 1},
	}
	bits := s.sweep(cands, 4)
	// H = -(1/4)log2(1/4) - (3/4)log2(3/4)
	want := 0.8112781244591328
	for i := range bits {
		require.InDelta(t, want, bits[i], 1e-12)
	}
}

func TestSolverWinsEveryAnswer(t *testing.T) {
	t.Parallel()
	dict := smallDict(t)
	s := New(dict, Config{Workers: 2})
	session := game.NewSession(dict)
	for _, e := range dict.Ranked() {
		e := e
		t.Run(string(e.Word), func(t *testing.T) {
			t.Parallel()
			outcome, err := session.Play(e.Word, s)
			require.NoError(t, err)
			require.True(t, outcome.Won, "no win within round cap")
			require.LessOrEqual(t, outcome.Rounds, game.MaxRounds)
		})
	}
}
