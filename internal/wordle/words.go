package wordle

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed carmodels.txt
var embeddedCarModels string

// WordList is an immutable set of valid uppercase words of WordLength letters.
// It is both the pool solutions are drawn from and the guess dictionary.
type WordList struct {
	words   []string
	set     map[string]struct{}
	skipped int
}

// NewWordList builds a word list from raw entries.
// Entries are trimmed and uppercased; entries that are not exactly WordLength
// letters A-Z, or that repeat an earlier entry, are skipped.
func NewWordList(entries []string) (*WordList, error) {
	wl := &WordList{
		words: make([]string, 0, len(entries)),
		set:   make(map[string]struct{}, len(entries)),
	}

	for _, e := range entries {
		w, ok := Normalize(e)
		if !ok {
			wl.skipped++
			continue
		}
		if _, dup := wl.set[w]; dup {
			wl.skipped++
			continue
		}
		wl.set[w] = struct{}{}
		wl.words = append(wl.words, w)
	}

	if len(wl.words) == 0 {
		return nil, ErrEmptyWordList
	}
	return wl, nil
}

// ParseWordList reads one word per line. Blank lines and lines starting
// with '#' are ignored and do not count as skipped.
func ParseWordList(r io.Reader) (*WordList, error) {
	var entries []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordle: cannot read word list: %w", err)
	}
	return NewWordList(entries)
}

// LoadWordList reads a word list file from disk.
func LoadWordList(path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordle: cannot open word list %s: %w", path, err)
	}
	defer f.Close()

	wl, err := ParseWordList(f)
	if err != nil {
		return nil, fmt.Errorf("wordle: %s: %w", path, err)
	}
	return wl, nil
}

// DefaultWordList returns the embedded car model list.
func DefaultWordList() *WordList {
	wl, err := ParseWordList(strings.NewReader(embeddedCarModels))
	if err != nil {
		// The embedded list is part of the binary.
		panic(err)
	}
	return wl
}

// Len returns the number of words.
func (wl *WordList) Len() int {
	return len(wl.words)
}

// At returns the i-th word in load order.
func (wl *WordList) At(i int) string {
	return wl.words[i]
}

// Contains reports whether w is in the list. Lookup is case-insensitive.
func (wl *WordList) Contains(w string) bool {
	_, ok := wl.set[strings.ToUpper(w)]
	return ok
}

// Words returns a copy of the words in load order.
func (wl *WordList) Words() []string {
	out := make([]string, len(wl.words))
	copy(out, wl.words)
	return out
}

// Skipped returns how many entries were dropped while building the list.
func (wl *WordList) Skipped() int {
	return wl.skipped
}

// Normalize trims and uppercases w and reports whether the result is a
// playable word of WordLength letters A-Z.
func Normalize(w string) (string, bool) {
	w = strings.ToUpper(strings.TrimSpace(w))
	return w, isWord(w)
}

// isWord reports whether w is exactly WordLength uppercase ASCII letters.
func isWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
