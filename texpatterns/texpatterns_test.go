package texpatterns

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		token   string
		text    string
		weights []uint8
	}{
		{"a5ban", "aban", []uint8{0, 5, 0, 0, 0}},
		{".ach4", ".ach", []uint8{0, 0, 0, 0, 4}},
		{"4ab.", "ab.", []uint8{4, 0, 0, 0}},
		{"hy3ph", "hyph", []uint8{0, 0, 3, 0, 0}},
		{"e", "e", []uint8{0, 0}},
	}
	for _, tt := range tests {
		text, weights, err := Decode(tt.token)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", tt.token, err)
		}
		if text != tt.text || !reflect.DeepEqual(weights, tt.weights) {
			t.Fatalf("Decode(%q): got %q %v, want %q %v", tt.token, text, weights, tt.text, tt.weights)
		}
	}
}

func TestDecodeRejects(t *testing.T) {
	for _, token := range []string{"a45b", "für", "Ab", "12", "a-b"} {
		if _, _, err := Decode(token); !errors.Is(err, ErrMalformedPattern) {
			t.Fatalf("Decode(%q): expected ErrMalformedPattern, got %v", token, err)
		}
	}
}

func TestReaderTeXFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "acdat")
	defer teardown()
	//
	src := `% hyphenation patterns for testing
\message{test patterns}
\patterns{ % first block
.ach4 .ad4der
a5ban abe2 % two on a line
f4ür
}
\hyphenation{
ta-ble
}
`
	r := NewPatternReader(strings.NewReader(src))
	var texts []string
	for {
		text, _, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		texts = append(texts, text)
	}
	want := []string{".ach", ".adder", "aban", "abe"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("got %q, want %q", texts, want)
	}
	if r.Rejected() != 1 {
		t.Fatalf("expected 1 rejected token, have %d", r.Rejected())
	}
	if r.Identifier() != "test patterns" {
		t.Fatalf("identifier mismatch: got %q", r.Identifier())
	}
}

func TestReaderUnclosedBlock(t *testing.T) {
	r := NewPatternReader(strings.NewReader("\\patterns{\na1b\n"))
	if _, _, err := r.Next(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Next(); err == nil || err == io.EOF {
		t.Fatalf("expected error for unclosed block, got %v", err)
	}
}

func TestReaderSkipsExceptionBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "acdat")
	defer teardown()
	//
	src := "\\hyphenation{ta-ble}\n\\patterns{\n.ach4\na1b\n}\n" +
		"\\hyphenation{\nas-so-ciate\npre-sent }\n\\patterns{ o2n }\n"
	r := NewPatternReader(strings.NewReader(src))
	var texts []string
	for {
		text, _, err := r.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		texts = append(texts, text)
	}
	if want := []string{".ach", "ab", "on"}; !reflect.DeepEqual(texts, want) {
		t.Fatalf("got patterns %v, want %v", texts, want)
	}
}

func TestReaderUSPatternFile(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "enus", "hyph-en-us.pat"))
	if err != nil {
		t.Fatalf("cannot open pattern file: %v", err)
	}
	defer f.Close()
	r := NewPatternReader(f)
	count := 0
	for {
		text, weights, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if len(weights) != len(text)+1 {
			t.Fatalf("pattern %q has %d weights", text, len(weights))
		}
		count++
	}
	if count != 4447 || r.Rejected() != 0 {
		t.Fatalf("expected 4447 patterns without rejects, have %d/%d", count, r.Rejected())
	}
}
