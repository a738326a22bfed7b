package compiler

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/acdat/texpatterns"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const knuthPatterns = "hy3ph he2n hena4 hen5at 1na n2at 1tio 2io o2n"

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "acdat")
	defer teardown()
	//
	r := texpatterns.NewPatternReader(strings.NewReader(knuthPatterns + " f4ür"))
	art, err := Compile("knuth", r, Workers(2))
	if err != nil {
		t.Fatal(err)
	}
	if art.Patterns != 9 || art.Rejected != 1 {
		t.Fatalf("expected 9 patterns and 1 rejected, have %d/%d", art.Patterns, art.Rejected)
	}
	if len(art.Transitions) != 4*art.States {
		t.Fatalf("expected %d transition words, have %d", 4*art.States, len(art.Transitions))
	}
	if art.FillRatio <= 0 || art.FillRatio > 1 {
		t.Fatalf("fill ratio out of range: %f", art.FillRatio)
	}
	a, err := art.Automaton()
	if err != nil {
		t.Fatal(err)
	}
	points, err := a.Detect("hyphenation")
	if err != nil {
		t.Fatal(err)
	}
	if want := []uint8{0, 0, 3, 0, 0, 2, 5, 4, 2, 0, 2, 0}; !reflect.DeepEqual(points, want) {
		t.Fatalf("points: got %v, want %v", points, want)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	compile := func(workers int) *Artifact {
		r := texpatterns.NewPatternReader(strings.NewReader(knuthPatterns))
		art, err := Compile("knuth", r, Workers(workers))
		if err != nil {
			t.Fatal(err)
		}
		return art
	}
	a, b := compile(1), compile(8)
	if !reflect.DeepEqual(a.Transitions, b.Transitions) || !bytes.Equal(a.Raw, b.Raw) {
		t.Fatalf("compiled tables depend on number of workers")
	}
}

type failingReader struct{}

func (failingReader) Next() (string, []uint8, error) {
	return "", nil, io.ErrUnexpectedEOF
}

type badWeightsReader struct{ done bool }

func (r *badWeightsReader) Next() (string, []uint8, error) {
	if r.done {
		return "", nil, io.EOF
	}
	r.done = true
	return "abc", []uint8{1}, nil
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile("failing", failingReader{}); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected reader error to be passed on, got %v", err)
	}
	art, err := Compile("bad", &badWeightsReader{})
	if err != nil {
		t.Fatal(err)
	}
	if art.Rejected != 1 || art.Patterns != 0 {
		t.Fatalf("expected 1 rejected pattern, have %d/%d", art.Rejected, art.Patterns)
	}
}

func TestWriteGo(t *testing.T) {
	art := &Artifact{
		Name:        "test.pat",
		Transitions: make([]uint16, 20),
		Raw:         []uint8{1, 2, 3},
		Patterns:    7,
	}
	art.Transitions[1] = 0xFFFF
	var buf bytes.Buffer
	if err := art.WriteGo(&buf, "tables"); err != nil {
		t.Fatal(err)
	}
	want := `// Code generated by acdatc from test.pat; DO NOT EDIT.

package tables

// 5 states, 7 patterns, 3 bytes of weights.

var transitions = [...]uint16{
	0, 65535, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0,
}

var raw = [...]uint8{
	1, 2, 3,
}
`
	if got := buf.String(); got != want {
		t.Fatalf("generated source mismatch:\n%s\nwant:\n%s", got, want)
	}
}
