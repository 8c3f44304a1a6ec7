// internal/words/words.go
//
// Word values and the ranked dictionary used by the solver.
//
// Responsibilities:
//   - Validate raw strings into Word values (exactly 5 letters a-z) through
//     a checked constructor; nothing else in the codebase builds a Word.
//   - Parse the dictionary resource ("word count" per line) into an
//     immutable ranked list plus a membership set.
//   - Load the process-wide default dictionary once, either from a
//     WORDS_FILE path or from the embedded asset.
//
// Constraints:
//   - Words are normalized to lowercase before validation.
//   - Ranking is by weight, highest first; ties keep resource order.
//   - The default dictionary is shared read-only and never mutated after
//     Init, so it is safe across goroutines without locking.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/TheLionCoder/wordle-solver/assets"
)

// Length is the number of letters in every legal word.
const Length = 5

var (
	// ErrWordLength reports a word that is not exactly Length bytes.
	ErrWordLength = errors.New("words: word must be exactly 5 letters")
	// ErrWordCharset reports a word containing a byte outside a-z.
	ErrWordCharset = errors.New("words: word must contain only letters a-z")
)

// Word is a validated lowercase five-letter word.
// Construct only through Parse or MustParse.
type Word string

// Parse normalizes raw (trim + lowercase) and validates it into a Word.
func Parse(raw string) (Word, error) {
	w := strings.ToLower(strings.TrimSpace(raw))
	if len(w) != Length {
		return "", fmt.Errorf("%w: %q", ErrWordLength, raw)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", fmt.Errorf("%w: %q", ErrWordCharset, raw)
		}
	}
	return Word(w), nil
}

// MustParse is Parse for literals in tests and hard-coded defaults.
func MustParse(raw string) Word {
	w, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return w
}

// Entry is one ranked dictionary entry: a word and its frequency weight.
// The weight is a relative-likelihood prior; the solver renormalizes it
// locally over whatever candidate set it is working with.
type Entry struct {
	Word   Word
	Weight uint64
}

// Dictionary is the immutable universe of legal guesses plus the
// frequency-ranked entry list used as priors.
type Dictionary struct {
	entries []Entry      // rank order, most frequent first
	rank    map[Word]int // word -> index into entries
}

// New builds a Dictionary from entries, sorting by weight (highest first)
// while keeping input order for equal weights.
func New(entries []Entry) (*Dictionary, error) {
	if len(entries) == 0 {
		return nil, errors.New("words: dictionary is empty")
	}
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})
	rank := make(map[Word]int, len(ranked))
	for i, e := range ranked {
		if _, dup := rank[e.Word]; dup {
			return nil, fmt.Errorf("words: duplicate dictionary word %q", e.Word)
		}
		rank[e.Word] = i
	}
	return &Dictionary{entries: ranked, rank: rank}, nil
}

// Contains reports whether w is a legal guess.
func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.rank[w]
	return ok
}

// Rank returns the frequency rank of w (0 = most frequent).
func (d *Dictionary) Rank(w Word) (int, bool) {
	i, ok := d.rank[w]
	return i, ok
}

// Ranked returns the entry list in rank order. Callers must not mutate it.
func (d *Dictionary) Ranked() []Entry { return d.entries }

// Len returns the number of dictionary entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// ParseLines converts dictionary resource lines into entries.
// Each line is "word" or "word count"; a missing count defaults to 1.
func ParseLines(lines []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || len(fields) > 2 {
			return nil, fmt.Errorf("words: line %d: malformed entry %q", i+1, line)
		}
		w, err := Parse(fields[0])
		if err != nil {
			return nil, fmt.Errorf("words: line %d: %w", i+1, err)
		}
		weight := uint64(1)
		if len(fields) == 2 {
			weight, err = strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("words: line %d: weight %q is not a number", i+1, fields[1])
			}
		}
		entries = append(entries, Entry{Word: w, Weight: weight})
	}
	return entries, nil
}

// ParseList parses newline-separated bare words (no weights), skipping
// blank lines and #-comments.
func ParseList(s string) ([]Word, error) {
	var out []Word
	for i, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("words: line %d: %w", i+1, err)
		}
		out = append(out, w)
	}
	return out, nil
}

var (
	initOnce   sync.Once
	defaultDic *Dictionary
	initialErr error
)

// Init loads the default dictionary exactly once.
// If WORDS_FILE is set it is read from there, otherwise the embedded
// asset is used. Returns the first error encountered.
func Init() error {
	initOnce.Do(func() {
		var lines []string
		var err error
		if path := os.Getenv("WORDS_FILE"); path != "" {
			lines, err = readLines(path)
		} else {
			lines, err = assets.DictionaryLines()
		}
		if err != nil {
			initialErr = err
			return
		}
		entries, err := ParseLines(lines)
		if err != nil {
			initialErr = err
			return
		}
		defaultDic, initialErr = New(entries)
	})
	return initialErr
}

// Default returns the dictionary loaded by Init, or nil before Init.
func Default() *Dictionary { return defaultDic }

// readLines loads non-blank, non-comment lines from a file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
