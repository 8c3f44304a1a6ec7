// cmd/corpus/main.go
//
// Builds the "word count" dictionary resource from gzip-compressed n-gram
// frequency logs. The base word list fixes which words are emitted and in
// what order; logs only contribute counts.

package main

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/TheLionCoder/wordle-solver/internal/corpus"
	"github.com/TheLionCoder/wordle-solver/internal/words"
)

type options struct {
	Base string `short:"b" long:"base" required:"true" description:"base dictionary file, one word per line"`
	Args struct {
		Logs []string `positional-arg-name:"log.gz" required:"1"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	base, err := readBase(opts.Base)
	if err != nil {
		log.Fatal().Err(err).Str("base", opts.Base).Msg("failed to read base dictionary")
	}

	counts, err := corpus.Build(context.Background(), base, opts.Args.Logs)
	if err != nil {
		log.Fatal().Err(err).Msg("corpus build failed")
	}
	if err := corpus.Write(os.Stdout, base, counts); err != nil {
		log.Fatal().Err(err).Msg("failed to write counts")
	}
}

// readBase parses the base dictionary: one five-letter word per line.
func readBase(path string) ([]words.Word, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return words.ParseList(string(raw))
}
