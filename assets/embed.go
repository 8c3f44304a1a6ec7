package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed dictionary.txt
var FS embed.FS

// DictionaryLines returns the raw lines of the embedded ranked dictionary,
// one "word count" pair per line, most frequent first. Blank lines and
// #-comments are skipped.
func DictionaryLines() ([]string, error) {
	f, err := FS.Open("dictionary.txt")
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
