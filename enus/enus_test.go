package enus

import (
	"bytes"
	"errors"
	"io"
	"os"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/acdat"
	"github.com/npillmayer/acdat/compiler"
	"github.com/npillmayer/acdat/texpatterns"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var sampleWords = []string{
	"hyphenation", "computer", "algorithm", "concatenation", "documentation",
	"characteristic", "supercalifragilistic", "present", "table", "hello",
	"reformation", "associate", "typography", "dictionary", "automaton",
	"encyclopedia", "international", "representation", "programming",
}

func TestHyphenationPoints(t *testing.T) {
	points, err := Automaton().Detect("Hyphenation")
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{0, 0, 3, 0, 0, 2, 5, 4, 2, 0, 2, 0}
	if !reflect.DeepEqual(points, want) {
		t.Fatalf("points of Hyphenation: got %v, want %v", points, want)
	}
}

func TestPatternHyphenation(t *testing.T) {
	h := acdat.NewHyphenator(Automaton())
	tests := []struct {
		word string
		want string
	}{
		{word: "Hyphenation", want: "Hy-phen-ation"},
		{word: "computer", want: "com-puter"},
		{word: "algorithm", want: "al-go-rithm"},
		{word: "concatenation", want: "con-cate-na-tion"},
		{word: "documentation", want: "doc-u-men-ta-tion"},
		{word: "characteristic", want: "char-ac-ter-is-tic"},
		{word: "supercalifragilistic", want: "su-per-cal-ifrag-ilis-tic"},
		{word: "hello", want: "hello"},
		{word: "present", want: "pre-sent"},
		{word: "reformation", want: "re-for-ma-tion"},
		{word: "table", want: "table"},
	}
	for _, tt := range tests {
		if got := h.HyphenationString(tt.word, "-"); got != tt.want {
			t.Fatalf("hyphenation mismatch for %q: got %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestExceptionHyphenation(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{word: "table", want: "ta-ble"},
		{word: "present", want: "present"},
		{word: "projects", want: "projects"},
		{word: "associate", want: "as-so-ciate"},
		{word: "declination", want: "dec-li-na-tion"},
		{word: "obligatory", want: "oblig-a-tory"},
		{word: "philanthropic", want: "phil-an-thropic"},
		{word: "reciprocity", want: "reci-procity"},
		{word: "recognizance", want: "re-cog-ni-zance"},
		{word: "reformation", want: "ref-or-ma-tion"},
		{word: "retribution", want: "ret-ri-bu-tion"},
		{word: "Table", want: "Table"}, // exceptions are case sensitive
	}
	for _, tt := range tests {
		if got := Hyphenator().HyphenationString(tt.word, "-"); got != tt.want {
			t.Fatalf("hyphenation mismatch for %q: got %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestSoftHyphen(t *testing.T) {
	if h := Hyphenator().Hyphen("Hyphenation"); h != "Hy\u00ADphen\u00ADation" {
		t.Fatalf("Hyphenation should be Hy-phen-ation, is %q", h)
	}
	if h := Hyphenator().Hyphen("table"); h != "ta\u00ADble" {
		t.Fatalf("table should be ta-ble, is %q", h)
	}
}

func TestShortWordsAreNotHyphenated(t *testing.T) {
	for _, word := range []string{"", "a", "of", "the", "king", "word"} {
		if h := Hyphenator().Hyphen(word); h != word {
			t.Fatalf("%q must not be hyphenated, is %q", word, h)
		}
	}
}

func TestHyphenIsIdempotent(t *testing.T) {
	for _, word := range sampleWords {
		once := Hyphenator().Hyphen(word)
		if twice := Hyphenator().Hyphen(once); twice != once {
			t.Fatalf("hyphenating %q twice yields %q", once, twice)
		}
		if strings.Contains(once, acdat.SoftHyphen+acdat.SoftHyphen) {
			t.Fatalf("adjacent soft hyphens in %q", once)
		}
		if strings.ReplaceAll(once, acdat.SoftHyphen, "") != word {
			t.Fatalf("removing soft hyphens from %q does not restore %q", once, word)
		}
	}
}

func TestDetectRejectsInvalidInput(t *testing.T) {
	_, err := Automaton().Detect("naïve")
	if !errors.Is(err, acdat.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var ierr *acdat.InvalidInputError
	if !errors.As(err, &ierr) || ierr.Pos != 2 {
		t.Fatalf("expected error at position 2, got %v", err)
	}
}

// Every pattern must be reflected in the points of its own letters: merged
// weights never fall below the weights of a single matching pattern.
func TestPatternsAreMonotone(t *testing.T) {
	f, err := os.Open("hyph-en-us.pat")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r := texpatterns.NewPatternReader(f)
	count := 0
	for {
		text, weights, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		word, w := text, weights
		if strings.HasPrefix(word, ".") {
			word, w = word[1:], w[1:]
		}
		if strings.HasSuffix(word, ".") {
			word, w = word[:len(word)-1], w[:len(w)-1]
		}
		if word == "" {
			continue
		}
		points, err := Automaton().Detect(word)
		if err != nil {
			t.Fatalf("pattern %q: %v", text, err)
		}
		for k := range w {
			if points[k] < w[k] {
				t.Fatalf("pattern %q: points(%q) = %v below weights %v", text, word, points, w)
			}
		}
		count++
	}
	if count != 4447 {
		t.Fatalf("expected to check 4447 patterns, checked %d", count)
	}
}

func TestCompiledTablesMatchPatterns(t *testing.T) {
	if testing.Short() {
		t.Skip("compiling the full pattern set")
	}
	teardown := gotestingadapter.QuickConfig(t, "acdat")
	defer teardown()
	//
	f, err := os.Open("hyph-en-us.pat")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	art, err := compiler.Compile("hyph-en-us.pat", texpatterns.NewPatternReader(f))
	if err != nil {
		t.Fatal(err)
	}
	fresh, err := art.Automaton()
	if err != nil {
		t.Fatal(err)
	}
	for _, word := range sampleWords {
		want, _ := Automaton().Detect(word)
		got, err := fresh.Detect(word)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("compiled automaton disagrees for %q: got %v, want %v", word, got, want)
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	n, err := Automaton().WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("WriteTo reports %d bytes, wrote %d", n, buf.Len())
	}
	a, err := acdat.ReadAutomaton(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if a.States() != Automaton().States() || a.RawSize() != Automaton().RawSize() {
		t.Fatalf("sizes differ after round trip: %d/%d", a.States(), a.RawSize())
	}
	for _, word := range sampleWords {
		want, _ := Automaton().Detect(word)
		got, _ := a.Detect(word)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip changes points of %q: got %v, want %v", word, got, want)
		}
	}
}

func TestConcurrentHyphenation(t *testing.T) {
	h := acdat.NewHyphenator(Automaton(), acdat.WithCache(acdat.NewCache(0)))
	want := make([]string, len(sampleWords))
	for i, word := range sampleWords {
		want[i] = acdat.NewHyphenator(Automaton()).Hyphen(word)
	}
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := 0; round < 50; round++ {
				for i, word := range sampleWords {
					if got := h.Hyphen(word); got != want[i] {
						errs <- got
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatalf("concurrent hyphenation produced %q", e)
	}
}

func TestHyphenatorIsShared(t *testing.T) {
	hyphenators := make(chan *acdat.Hyphenator, 8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hyphenators <- Hyphenator()
		}()
	}
	wg.Wait()
	close(hyphenators)
	for h := range hyphenators {
		if h != Hyphenator() {
			t.Fatalf("expected a single process-wide hyphenator")
		}
	}
	if Hyphenator().Automaton() != Automaton() {
		t.Fatalf("hyphenator must use the shared automaton")
	}
}
