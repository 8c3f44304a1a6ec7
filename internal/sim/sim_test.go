package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheLionCoder/wordle-solver/internal/game"
	"github.com/TheLionCoder/wordle-solver/internal/solver"
	"github.com/TheLionCoder/wordle-solver/internal/store"
	"github.com/TheLionCoder/wordle-solver/internal/words"
)

func simDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.New([]words.Entry{
		{Word: "crane", Weight: 100},
		{Word: "slate", Weight: 90},
		{Word: "about", Weight: 80},
		{Word: "boost", Weight: 50},
		{Word: "books", Weight: 40},
		{Word: "which", Weight: 30},
		{Word: "there", Weight: 20},
		{Word: "gauge", Weight: 10},
	})
	require.NoError(t, err)
	return d
}

func TestRunSolvesEveryAnswer(t *testing.T) {
	t.Parallel()
	dict := simDict(t)
	sv := solver.New(dict, solver.Config{Workers: 2})

	answers := make([]words.Word, 0, dict.Len())
	for _, e := range dict.Ranked() {
		answers = append(answers, e.Word)
	}

	st := store.NewMemoryStore()
	var progressed int
	r := NewRunner(dict, func() game.Guesser { return sv }, 4)
	r.Store = st
	r.OnResult = func(store.Result) { progressed++ }

	summary, err := r.Run(context.Background(), answers)
	require.NoError(t, err)
	require.Equal(t, len(answers), summary.Games)
	require.Equal(t, len(answers), summary.Wins)
	require.Equal(t, len(answers), progressed)
	require.Greater(t, summary.AvgRounds, 0.0)

	var inHistogram int
	for _, n := range summary.Histogram {
		inHistogram += n
	}
	require.Equal(t, len(answers), inHistogram)

	stored, err := st.Summarize(context.Background())
	require.NoError(t, err)
	require.Equal(t, summary.Games, stored.Games)
	require.Equal(t, summary.Wins, stored.Wins)
}

// illegal violates the Guesser contract with an out-of-dictionary word.
type illegal struct{}

func (illegal) Guess([]game.Guess) words.Word { return "zzzzz" }
func (illegal) Finish(int)                    {}

func TestRunPropagatesContractViolation(t *testing.T) {
	t.Parallel()
	dict := simDict(t)
	r := NewRunner(dict, func() game.Guesser { return illegal{} }, 2)
	_, err := r.Run(context.Background(), []words.Word{"crane", "slate"})
	require.ErrorIs(t, err, game.ErrIllegalGuess)
}
