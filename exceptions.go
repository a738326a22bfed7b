package acdat

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// ErrExceptionLength is returned for exception point vectors which do not
// have one entry more than the word has letters.
var ErrExceptionLength = errors.New("acdat: exception points must have len(word)+1 entries")

// ExceptionReader yields hyphenation exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
//
// positions holds one entry per letter of word; an odd entry marks a
// hyphenation point in front of the letter.
type ExceptionReader interface {
	Next() (word string, positions []int, err error)
}

// Exceptions is a dictionary of words with explicit hyphenation points,
// overriding the patterns. Lookups match words exactly, including case.
//
// Exceptions may be read concurrently once loading is done.
type Exceptions struct {
	words *trie.Trie
	size  int
}

// NewExceptions creates an empty exception dictionary.
func NewExceptions() *Exceptions {
	return &Exceptions{words: trie.New()}
}

// Point vectors of English words which the en-US patterns get wrong.
var defaultExceptions = map[string][]uint8{
	"associate":     {0, 0, 1, 0, 1, 0, 0, 0, 0, 0},
	"associates":    {0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0},
	"declination":   {0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0},
	"obligatory":    {0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
	"philanthropic": {0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0},
	"present":       {0, 0, 0, 0, 0, 0, 0, 0},
	"presents":      {0, 0, 0, 0, 0, 0, 0, 0, 0},
	"project":       {0, 0, 0, 0, 0, 0, 0, 0},
	"projects":      {0, 0, 0, 0, 0, 0, 0, 0, 0},
	"reciprocity":   {0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
	"recognizance":  {0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0},
	"reformation":   {0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0},
	"retribution":   {0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0},
	"table":         {0, 0, 1, 0, 0, 0},
}

// DefaultExceptions returns a new dictionary holding the built-in US English
// exceptions ("associate", "present", "table", …).
func DefaultExceptions() *Exceptions {
	x := NewExceptions()
	for word, points := range defaultExceptions {
		if err := x.Add(word, points); err != nil {
			panic(err)
		}
	}
	return x
}

// Add registers the point vector of word. points[k] is the weight of the gap
// before letter k, points[len] the gap after the word. An existing entry for
// word is replaced.
func (x *Exceptions) Add(word string, points []uint8) error {
	if n := utf8.RuneCountInString(word); n == 0 || len(points) != n+1 {
		return fmt.Errorf("%w: %q has %d points", ErrExceptionLength, word, len(points))
	}
	if _, ok := x.words.Find(word); !ok {
		x.size++
	}
	// Add replaces the terminal node of an existing key
	x.words.Add(word, append([]uint8(nil), points...))
	return nil
}

// AddHyphenated registers a word written with explicit hyphens, such as
// "ta-ble". A word without hyphens is never hyphenated.
func (x *Exceptions) AddHyphenated(hyphenated string) error {
	word, positions := splitHyphenated(hyphenated)
	return x.Add(word, positionsToPoints(positions))
}

// Lookup returns the point vector registered for word.
func (x *Exceptions) Lookup(word string) ([]uint8, bool) {
	if x == nil || x.size == 0 {
		return nil, false
	}
	node, ok := x.words.Find(word)
	if !ok {
		return nil, false
	}
	return node.Meta().([]uint8), true
}

// Len returns the number of words in the dictionary.
func (x *Exceptions) Len() int {
	if x == nil {
		return 0
	}
	return x.size
}

// Words returns all words of the dictionary in ascending order.
func (x *Exceptions) Words() []string {
	if x == nil {
		return nil
	}
	words := x.words.Keys()
	sort.Strings(words)
	return words
}

// LoadExceptionReader loads all exception entries from a streaming source.
func (x *Exceptions) LoadExceptionReader(reader ExceptionReader) (err error) {
	for {
		var word string
		var positions []int
		word, positions, err = reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err = x.Add(word, positionsToPoints(positions)); err != nil {
			return err
		}
		tracer().Debugf("exception %q", word)
	}
}

// positionsToPoints converts per-letter break markers to a point vector,
// adding the gap after the last letter.
func positionsToPoints(positions []int) []uint8 {
	points := make([]uint8, len(positions)+1)
	for i, p := range positions {
		points[i] = uint8(p)
	}
	return points
}

// splitHyphenated removes hyphens from s and returns one marker per letter,
// 1 if a hyphen precedes the letter.
func splitHyphenated(s string) (string, []int) {
	positions := make([]int, 0, len(s))
	wasHyphen := false
	for _, ch := range s {
		if ch == '-' {
			wasHyphen = true
			continue
		}
		if wasHyphen {
			positions = append(positions, 1)
			wasHyphen = false
		} else {
			positions = append(positions, 0)
		}
	}
	return strings.ReplaceAll(s, "-", ""), positions
}
