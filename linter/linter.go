/*
Package linter typesets mixed Chinese and Western text for HTML.

A single pass over the text

  - inserts a thin space U+2009 between Chinese text and Western words or numbers,
  - hyphenates Western words with soft hyphens U+00AD,
  - escapes the HTML special characters " & ' < >.

Example:

	linter.Process(">这是Hyphenation的文字")
	// "&gt;这是\u2009Hy\u00ADphen\u00ADation\u2009的文字"
*/
package linter

import (
	"strings"
	"sync"

	"github.com/npillmayer/acdat"
	"github.com/npillmayer/acdat/enus"
)

// ThinSpace separates Chinese text from Western words and numbers.
const ThinSpace = '\u2009'

// Linter processes text with a given hyphenator. It is safe for concurrent use.
type Linter struct {
	hyphenator *acdat.Hyphenator
}

// New creates a Linter hyphenating with h.
func New(h *acdat.Hyphenator) *Linter {
	return &Linter{hyphenator: h}
}

// Process returns text with hyphenation, spacing and HTML escaping applied,
// using US English hyphenation.
func Process(text string) string {
	return defaultLinter().Process(text)
}

var defaultLinter = sync.OnceValue(func() *Linter {
	return New(enus.Hyphenator())
})

// Process returns text with hyphenation, spacing and HTML escaping applied.
func (l *Linter) Process(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	l.WriteText(&b, text)
	return b.String()
}

// WriteText appends the processed text to b.
func (l *Linter) WriteText(b *strings.Builder, text string) {
	ws := Unknown
	word := 0 // start of the current Western run
	for i, ch := range text {
		ns := ScriptOf(ch)
		if ws != ns {
			if ws == Chinese && ns != Unknown {
				b.WriteRune(ThinSpace)
			}
			if ws == Western {
				b.WriteString(l.hyphenator.Hyphen(text[word:i]))
			}
			if ns == Chinese && ws != Unknown {
				b.WriteRune(ThinSpace)
			}
			word = i
		}
		if ns != Western {
			writeEscaped(b, ch)
		}
		ws = ns
	}
	if ws == Western {
		b.WriteString(l.hyphenator.Hyphen(text[word:]))
	}
}

func writeEscaped(b *strings.Builder, ch rune) {
	switch ch {
	case '"':
		b.WriteString("&#34;")
	case '&':
		b.WriteString("&#38;")
	case '\'':
		b.WriteString("&#39;")
	case '<':
		b.WriteString("&lt;")
	case '>':
		b.WriteString("&gt;")
	default:
		b.WriteRune(ch)
	}
}
