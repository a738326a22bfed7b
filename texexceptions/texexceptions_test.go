package texexceptions

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/acdat"
)

func TestReader(t *testing.T) {
	src := strings.NewReader(`\patterns{
a1b
}
\hyphenation{ % exceptions
ta-ble
schön-heit as-so-ciate
}`)
	r := NewReader(src)
	word, positions, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if word != "table" {
		t.Fatalf("word mismatch: got %q", word)
	}
	if !reflect.DeepEqual(positions, []int{0, 0, 1, 0, 0}) {
		t.Fatalf("positions mismatch: %v", positions)
	}
	word, positions, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if word != "schönheit" {
		t.Fatalf("word mismatch: got %q", word)
	}
	if !reflect.DeepEqual(positions, []int{0, 0, 0, 0, 0, 1, 0, 0, 0}) {
		t.Fatalf("positions mismatch: %v", positions)
	}
	word, _, err = r.Next()
	if err != nil || word != "associate" {
		t.Fatalf("expected associate, got %q, %v", word, err)
	}
	_, _, err = r.Next()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestUnclosedBlock(t *testing.T) {
	r := NewReader(strings.NewReader("\\hyphenation{\nta-ble\n"))
	if _, _, err := r.Next(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Next(); err == nil || err == io.EOF {
		t.Fatalf("expected error for unclosed block, got %v", err)
	}
}

func TestLoadExceptions(t *testing.T) {
	x := acdat.NewExceptions()
	err := LoadExceptions(x, strings.NewReader(`\hyphenation{
füh-rung
schön-heit
}`))
	if err != nil {
		t.Fatal(err)
	}
	if x.Len() != 2 {
		t.Fatalf("expected 2 exceptions, have %d", x.Len())
	}
	points, ok := x.Lookup("führung")
	if !ok || !reflect.DeepEqual(points, []uint8{0, 0, 0, 1, 0, 0, 0, 0}) {
		t.Fatalf("führung: got %v, %v", points, ok)
	}
}
