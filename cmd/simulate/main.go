// cmd/simulate/main.go
//
// Batch solver evaluation from the command line: plays the top N ranked
// dictionary words against the entropy solver and prints the round
// distribution. Optionally persists every result to a SQLite store.

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/TheLionCoder/wordle-solver/internal/game"
	"github.com/TheLionCoder/wordle-solver/internal/sim"
	"github.com/TheLionCoder/wordle-solver/internal/solver"
	"github.com/TheLionCoder/wordle-solver/internal/store"
	"github.com/TheLionCoder/wordle-solver/internal/words"
)

type options struct {
	Limit         int     `short:"n" long:"limit" description:"number of top-ranked answers to play (0 = all)"`
	Workers       int     `short:"w" long:"workers" description:"parallel games (0 = NumCPU)"`
	EntropyWeight float64 `long:"entropy-weight" description:"entropy coefficient in the blend score"`
	DB            string  `long:"db" description:"SQLite path to persist results (optional)"`
	Verbose       bool    `short:"v" long:"verbose" description:"debug logging"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if opts.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	dict := words.Default()

	ranked := dict.Ranked()
	limit := opts.Limit
	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	answers := make([]words.Word, 0, limit)
	for _, e := range ranked[:limit] {
		answers = append(answers, e.Word)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	sv := solver.New(dict, solver.Config{EntropyWeight: opts.EntropyWeight})
	runner := sim.NewRunner(dict, func() game.Guesser { return sv }, workers)

	if opts.DB != "" {
		st, err := store.OpenSQLite(opts.DB)
		if err != nil {
			log.Fatal().Err(err).Str("db", opts.DB).Msg("failed to open results store")
		}
		runner.Store = st
	}

	bar := progressbar.Default(int64(len(answers)), "simulating")
	runner.OnResult = func(store.Result) { _ = bar.Add(1) }

	summary, err := runner.Run(context.Background(), answers)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
	printSummary(summary)
}

// printSummary renders the round distribution to stdout.
func printSummary(s store.Summary) {
	fmt.Printf("\ngames: %d  wins: %d  failures: %d  avg rounds: %.3f\n",
		s.Games, s.Wins, s.Games-s.Wins, s.AvgRounds)
	rounds := make([]int, 0, len(s.Histogram))
	for r := range s.Histogram {
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)
	for _, r := range rounds {
		fmt.Printf("%2d: %d\n", r, s.Histogram[r])
	}
}
