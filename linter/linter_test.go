package linter

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/acdat"
	"github.com/npillmayer/acdat/enus"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{">这是Hyphenation的文字", "&gt;这是\u2009Hy\u00ADphen\u00ADation\u2009的文字"},
		{"共有2018个", "共有\u20092018\u2009个"},
		{"中文 table", "中文 ta\u00ADble"},
		{"the hyphenation algorithm", "the hy\u00ADphen\u00ADation al\u00ADgo\u00ADrithm"},
		{`a<b & "c" 'd'`, "a&lt;b &#38; &#34;c&#34; &#39;d&#39;"},
		{"中文", "中文"},
		{"", ""},
		{"computer2018", "com\u00ADputer2018"},
	}
	for _, tt := range tests {
		if got := Process(tt.text); got != tt.want {
			t.Fatalf("Process(%q): got %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestWriteTextAppends(t *testing.T) {
	l := New(enus.Hyphenator())
	var b strings.Builder
	b.WriteString("<p>")
	l.WriteText(&b, "中文table")
	if got, want := b.String(), "<p>中文\u2009ta\u00ADble"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCustomHyphenator(t *testing.T) {
	l := New(acdat.NewHyphenator(enus.Automaton())) // no exceptions
	if got, want := l.Process("表table"), "表\u2009table"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Processing twice must not put soft hyphens next to existing ones.
func TestProcessIsIdempotentForHyphens(t *testing.T) {
	texts := []string{
		"这是Hyphenation的文字",
		"documentation and characteristic concatenation",
		"supercalifragilistic representation 国际international",
	}
	for _, text := range texts {
		once := Process(text)
		twice := Process(once)
		if strings.Contains(twice, acdat.SoftHyphen+acdat.SoftHyphen) {
			t.Fatalf("adjacent soft hyphens in %q", twice)
		}
		old, all := hyphenPositions(once), hyphenPositions(twice)
		for b := range all {
			if old[b] {
				continue
			}
			if old[b-1] || old[b+1] {
				t.Fatalf("soft hyphen inserted one letter apart from existing one in %q", twice)
			}
		}
		for a := range old {
			if !all[a] {
				t.Fatalf("soft hyphen lost in %q", twice)
			}
		}
	}
}

// hyphenPositions maps soft hyphens to the number of other runes in front of them.
func hyphenPositions(s string) map[int]bool {
	pos := make(map[int]bool)
	n := 0
	for _, r := range s {
		if r == '\u00AD' {
			pos[n] = true
			continue
		}
		n++
	}
	return pos
}

func TestScriptOf(t *testing.T) {
	tests := []struct {
		r    rune
		want Script
	}{
		{'0', Numbers},
		{'9', Numbers},
		{'a', Western},
		{'Z', Western},
		{'é', Western},
		{'ß', Western},
		{'\u0301', Western},
		{'×', Unknown},
		{'中', Chinese},
		{'\U00020000', Chinese},
		{'\U0002F800', Chinese},
		{' ', Unknown},
		{'\u2009', Unknown},
		{'\u00AD', Unknown},
		{'。', Unknown},
		{'あ', Unknown},
		{utf8.RuneError, Unknown},
	}
	for _, tt := range tests {
		if got := ScriptOf(tt.r); got != tt.want {
			t.Fatalf("ScriptOf(%U): got %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestScriptOfIsTotal(t *testing.T) {
	for r := rune(0); r <= utf8.MaxRune; r++ {
		s := ScriptOf(r)
		if s > Chinese || ScriptOf(r) != s {
			t.Fatalf("ScriptOf(%U) = %d", r, s)
		}
	}
}

func TestNeedsSpace(t *testing.T) {
	tests := []struct {
		from, to Script
		want     bool
	}{
		{Chinese, Western, true},
		{Western, Chinese, true},
		{Numbers, Chinese, true},
		{Chinese, Numbers, true},
		{Chinese, Unknown, false},
		{Unknown, Chinese, false},
		{Western, Numbers, false},
		{Chinese, Chinese, false},
	}
	for _, tt := range tests {
		if got := NeedsSpace(tt.from, tt.to); got != tt.want {
			t.Fatalf("NeedsSpace(%v, %v): got %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestConcurrentProcess(t *testing.T) {
	text := ">这是Hyphenation的文字, 共有2018个 documentation"
	want := Process(text)
	var wg sync.WaitGroup
	failed := make(chan string, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if got := Process(text); got != want {
					failed <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(failed)
	for got := range failed {
		t.Fatalf("concurrent Process produced %q", got)
	}
}
