// internal/corpus/corpus.go
//
// Frequency builder: turns compressed n-gram frequency logs into the
// "word count" dictionary resource the solver consumes as priors.
//
// Input format (per gzip file): tab-separated lines; the first field is a
// token (anything after an underscore is a POS tag and dropped), each
// further field is comma-separated with the occurrence count in column 1.
// Only tokens that case-fold to exactly five ASCII letters and appear in
// the base dictionary are counted.
//
// Files are processed by one worker each (errgroup) into private count
// maps, then merged by summation. A malformed count field aborts that
// file's processing; counts feed directly into solver priors, so partial
// or silently wrong sums are worse than failing.

package corpus

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/TheLionCoder/wordle-solver/internal/words"
)

// Build counts occurrences of every base word across the given n-gram
// log files and merges the per-file counts by summation.
func Build(ctx context.Context, base []words.Word, paths []string) (map[words.Word]uint64, error) {
	baseSet := make(map[words.Word]struct{}, len(base))
	for _, w := range base {
		baseSet[w] = struct{}{}
	}

	perFile := make([]map[words.Word]uint64, len(paths))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			counts, err := countFile(path, baseSet)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			perFile[i] = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[words.Word]uint64, len(base))
	for _, counts := range perFile {
		for w, n := range counts {
			merged[w] += n
		}
	}
	return merged, nil
}

// countFile accumulates counts for base words within one gzip log.
func countFile(path string, base map[words.Word]struct{}) (map[words.Word]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	counts := make(map[words.Word]uint64)
	sc := bufio.NewScanner(gz)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Split(sc.Text(), "\t")
		token, _, _ := strings.Cut(fields[0], "_")
		w, err := words.Parse(token)
		if err != nil {
			// Not a five-letter word; n-gram logs are full of these.
			continue
		}
		if _, ok := base[w]; !ok {
			continue
		}
		for _, field := range fields[1:] {
			cols := strings.Split(field, ",")
			if len(cols) < 2 {
				return nil, fmt.Errorf("record for %q has no count column", w)
			}
			n, err := strconv.ParseUint(cols[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("record for %q: count %q is not a number", w, cols[1])
			}
			counts[w] += n
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Write emits one "word count" line per base word, in base order. Words
// never observed in the logs get a count of 1 so every dictionary entry
// keeps a nonzero prior.
func Write(w io.Writer, base []words.Word, counts map[words.Word]uint64) error {
	bw := bufio.NewWriter(w)
	for _, word := range base {
		n := counts[word]
		if n == 0 {
			n = 1
		}
		if _, err := fmt.Fprintf(bw, "%s %d\n", word, n); err != nil {
			return err
		}
	}
	return bw.Flush()
}
