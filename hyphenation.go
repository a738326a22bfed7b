package acdat

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// SoftHyphen is the discretionary hyphen U+00AD inserted by Hyphen.
const SoftHyphen = "\u00AD"

// Words with fewer letters are never hyphenated.
const minLetters = 5

// Option configures a Hyphenator.
type Option func(*Hyphenator)

// WithExceptions sets a dictionary of words overriding the patterns.
func WithExceptions(x *Exceptions) Option {
	return func(h *Hyphenator) {
		h.exceptions = x
	}
}

// WithCache sets a cache for point vectors.
func WithCache(c *Cache) Option {
	return func(h *Hyphenator) {
		h.cache = c
	}
}

// Hyphenator inserts hyphenation points into words, using an automaton and an
// optional exception dictionary. It is safe for concurrent use.
type Hyphenator struct {
	automaton  *Automaton
	exceptions *Exceptions
	cache      *Cache
}

// NewHyphenator creates a Hyphenator for automaton a.
func NewHyphenator(a *Automaton, opts ...Option) *Hyphenator {
	assert(a != nil, "hyphenator needs an automaton")
	h := &Hyphenator{automaton: a}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Automaton returns the automaton h uses.
func (h *Hyphenator) Automaton() *Automaton {
	return h.automaton
}

// Hyphen returns word with soft hyphens at every legal hyphenation point.
// Words with fewer than five letters, and words containing anything other
// than Western letters, are returned unchanged.
func (h *Hyphenator) Hyphen(word string) string {
	return h.HyphenationString(word, SoftHyphen)
}

// HyphenationString returns word with sep inserted at hyphenation points.
// Example:
//
//	"computer", "-" => "com-puter".
func (h *Hyphenator) HyphenationString(word, sep string) string {
	return strings.Join(h.Hyphenate(word), sep)
}

// Hyphenate splits word at legal hyphenation positions.
//
// Example:
//
//	"table" => [ "ta", "ble" ].
//
// Letters with diacritics are hyphenated like their base letters.
// At least two letters stay in front of the first break and at least three
// letters after the last one.
func (h *Hyphenator) Hyphenate(word string) []string {
	key, ends, ok := foldLetters(word)
	if !ok || len(ends) < minLetters {
		return []string{word}
	}
	points, found := h.exceptions.Lookup(word)
	if !found || len(points) != len(ends)+1 {
		points = h.points(key)
	}
	return splitAtPositions(word, ends, points)
}

// points returns the point vector of a folded word.
func (h *Hyphenator) points(key string) []uint8 {
	if h.cache != nil {
		if p, ok := h.cache.Get(key); ok {
			return p
		}
	}
	p := h.automaton.detect(key)
	if h.cache != nil {
		h.cache.Put(key, p)
	}
	return p
}

// Helper: split a word after letter i wherever points[i+1] is odd.
// ends[i] is the byte offset in word behind letter i.
func splitAtPositions(word string, ends []int, points []uint8) []string {
	n := len(ends)
	pp := make([]string, 0, max(1, n/3))
	prev := 0
	for i := 1; i < n-3; i++ {
		if points[i+1]&1 != 0 {
			pp = append(pp, word[prev:ends[i]])
			prev = ends[i]
		}
	}
	return append(pp, word[prev:])
}

// foldLetters maps the letters of word to lower case ASCII letters. Combining
// marks belong to the letter in front of them. ends holds the byte offset
// behind each letter. foldLetters fails if a letter has no ASCII base letter.
func foldLetters(word string) (key string, ends []int, ok bool) {
	folded := make([]byte, 0, len(word))
	ends = make([]int, 0, len(word))
	for i := 0; i < len(word); {
		r, size := utf8.DecodeRuneInString(word[i:])
		i += size
		switch {
		case r < utf8.RuneSelf:
			if !isLetter(byte(r)) {
				return "", nil, false
			}
			folded = append(folded, byte(r)|0x20)
			ends = append(ends, i)
		case unicode.Is(unicode.Mn, r):
			if len(ends) == 0 {
				return "", nil, false
			}
			ends[len(ends)-1] = i
		default:
			c, ok := baseLetter(r)
			if !ok {
				return "", nil, false
			}
			folded = append(folded, c|0x20)
			ends = append(ends, i)
		}
	}
	return string(folded), ends, true
}

// baseLetter decomposes r and returns its ASCII base letter, if r is such a
// letter followed by nonspacing marks only.
func baseLetter(r rune) (byte, bool) {
	d := norm.NFD.String(string(r))
	if len(d) < 2 || !isLetter(d[0]) {
		return 0, false
	}
	for _, m := range d[1:] {
		if !unicode.Is(unicode.Mn, m) {
			return 0, false
		}
	}
	return d[0], true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
