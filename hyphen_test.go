package acdat_test

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/acdat"
	"github.com/npillmayer/acdat/compiler"
	"github.com/npillmayer/acdat/texpatterns"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Patterns from "The TeXbook", appendix H.
const knuthPatterns = "hy3ph he2n hena4 hen5at 1na n2at 1tio 2io o2n"

func compile(t *testing.T, patterns string) *acdat.Automaton {
	t.Helper()
	art, err := compiler.Compile("test", texpatterns.NewPatternReader(strings.NewReader(patterns)))
	if err != nil {
		t.Fatal(err)
	}
	a, err := art.Automaton()
	if err != nil {
		t.Fatal(err)
	}
	return a
}

type sliceExceptionReader struct {
	entries []struct {
		word      string
		positions []int
	}
	index int
}

func (r *sliceExceptionReader) Next() (string, []int, error) {
	if r.index >= len(r.entries) {
		return "", nil, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.word, entry.positions, nil
}

func TestDetect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "acdat")
	defer teardown()
	//
	a := compile(t, knuthPatterns)
	tests := []struct {
		word string
		want []uint8
	}{
		{"hyphenation", []uint8{0, 0, 3, 0, 0, 2, 5, 4, 2, 0, 2, 0}},
		{"HYPHENATION", []uint8{0, 0, 3, 0, 0, 2, 5, 4, 2, 0, 2, 0}},
		{"nation", []uint8{1, 2, 1, 2, 0, 2, 0}},
		{"xyz", []uint8{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		got, err := a.Detect(tt.word)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Detect(%q): got %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestDetectInvalidInput(t *testing.T) {
	a := compile(t, knuthPatterns)
	for _, word := range []string{"", "hy-phen", "über", "word1", "two words"} {
		_, err := a.Detect(word)
		if !errors.Is(err, acdat.ErrInvalidInput) {
			t.Fatalf("Detect(%q): expected ErrInvalidInput, got %v", word, err)
		}
	}
}

func TestHyphenate(t *testing.T) {
	h := acdat.NewHyphenator(compile(t, knuthPatterns))
	tests := []struct {
		word string
		want []string
	}{
		{"hyphenation", []string{"hy", "phen", "ation"}},
		{"Hyphenation", []string{"Hy", "phen", "ation"}},
		{"nation", []string{"na", "tion"}},
		{"henat", []string{"henat"}},
		{"hyph", []string{"hyph"}},
		{"hyphénation", []string{"hy", "phén", "ation"}},
		{"hyphe\u0301nation", []string{"hy", "phe\u0301n", "ation"}},
		{"hyphenation!", []string{"hyphenation!"}},
		{"straße", []string{"straße"}},
	}
	for _, tt := range tests {
		if got := h.Hyphenate(tt.word); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Hyphenate(%q): got %q, want %q", tt.word, got, tt.want)
		}
	}
	if s := h.HyphenationString("hyphenation", "-"); s != "hy-phen-ation" {
		t.Fatalf("hyphenation should be hy-phen-ation, is %s", s)
	}
}

func TestExceptionReaderAPI(t *testing.T) {
	x := acdat.NewExceptions()
	err := x.LoadExceptionReader(&sliceExceptionReader{
		entries: []struct {
			word      string
			positions []int
		}{
			{
				word:      "nation",
				positions: []int{0, 0, 0, 1, 0, 0},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	h := acdat.NewHyphenator(compile(t, knuthPatterns), acdat.WithExceptions(x))
	if s := h.HyphenationString("nation", "-"); s != "nat-ion" {
		t.Fatalf("nation should be nat-ion, is %s", s)
	}
	if s := h.HyphenationString("hyphenation", "-"); s != "hy-phen-ation" {
		t.Fatalf("hyphenation should be hy-phen-ation, is %s", s)
	}
}

func TestCachedHyphenator(t *testing.T) {
	cache := acdat.NewCache(0)
	h := acdat.NewHyphenator(compile(t, knuthPatterns), acdat.WithCache(cache))
	for i := 0; i < 3; i++ {
		if s := h.HyphenationString("Hyphenation", "-"); s != "Hy-phen-ation" {
			t.Fatalf("round %d: Hyphenation should be Hy-phen-ation, is %s", i, s)
		}
	}
	if cache.Len() != 1 {
		t.Fatalf("expected 1 cached word, have %d", cache.Len())
	}
	if _, ok := cache.Get("hyphenation"); !ok {
		t.Fatalf("expected cache to be keyed by lower case word")
	}
}

func TestNewRejectsMalformedTables(t *testing.T) {
	tests := []struct {
		name        string
		transitions []uint16
		raw         []byte
	}{
		{"empty", nil, nil},
		{"odd size", []uint16{0, 0xFFFF, 0}, nil},
		{"bad fail", []uint16{0, 0xFFFF, 8, 0}, nil},
		{"bad descriptor", []uint16{0, 0xFFFF, 0, 0x12}, []byte{1}},
		{"bad parent", []uint16{0, 0xFFFF, 0, 0, 0, 6, 0, 0}, nil},
		{"fails to itself", []uint16{0, 0xFFFF, 0, 0, 0, 0, 4, 0}, nil},
		{"fail cycle", []uint16{0, 0xFFFF, 0, 0, 0, 0, 8, 0, 0, 0, 4, 0}, nil},
		{"fails to unused", []uint16{0, 0xFFFF, 0, 0, 0, 0, 8, 0, 0, 0xFFFF, 4, 0}, nil},
		{"parent cycle", []uint16{0, 0xFFFF, 0, 0, 0, 8, 0, 0, 0, 4, 0, 0}, nil},
	}
	for _, tt := range tests {
		if _, err := acdat.New(tt.transitions, tt.raw); !errors.Is(err, acdat.ErrMalformedTables) {
			t.Fatalf("%s: expected ErrMalformedTables, got %v", tt.name, err)
		}
	}
	// a single child of the root, failing to the root
	if _, err := acdat.New([]uint16{0, 0xFFFF, 0, 0, 0, 0, 0, 0}, nil); err != nil {
		t.Fatalf("expected well-formed tables to be accepted, got %v", err)
	}
}

func TestStates(t *testing.T) {
	a := compile(t, knuthPatterns)
	if a.States() <= 1 || a.RawSize() == 0 {
		t.Fatalf("implausible automaton: %d states, %d bytes", a.States(), a.RawSize())
	}
}
