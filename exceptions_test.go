package acdat

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultExceptions(t *testing.T) {
	x := DefaultExceptions()
	if x.Len() != 14 {
		t.Fatalf("expected 14 built-in exceptions, have %d", x.Len())
	}
	words := x.Words()
	if words[0] != "associate" || words[len(words)-1] != "table" {
		t.Fatalf("words not sorted: %v", words)
	}
	points, ok := x.Lookup("table")
	if !ok || !reflect.DeepEqual(points, []uint8{0, 0, 1, 0, 0, 0}) {
		t.Fatalf("table: got %v, %v", points, ok)
	}
	if _, ok := x.Lookup("tab"); ok {
		t.Fatalf("prefix of an exception must not match")
	}
	if _, ok := x.Lookup("Table"); ok {
		t.Fatalf("lookup must be case sensitive")
	}
}

func TestAddHyphenated(t *testing.T) {
	x := NewExceptions()
	if err := x.AddHyphenated("schön-heit"); err != nil {
		t.Fatal(err)
	}
	if err := x.AddHyphenated("ta-ble"); err != nil {
		t.Fatal(err)
	}
	if err := x.AddHyphenated("ta-bl-e"); err != nil { // replaces ta-ble
		t.Fatal(err)
	}
	if x.Len() != 2 {
		t.Fatalf("expected 2 exceptions, have %d", x.Len())
	}
	points, _ := x.Lookup("schönheit")
	if want := []uint8{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}; !reflect.DeepEqual(points, want) {
		t.Fatalf("schönheit: got %v, want %v", points, want)
	}
	points, _ = x.Lookup("table")
	if want := []uint8{0, 0, 1, 0, 1, 0}; !reflect.DeepEqual(points, want) {
		t.Fatalf("table: got %v, want %v", points, want)
	}
}

func TestReplaceKeepsOtherWords(t *testing.T) {
	x := NewExceptions()
	for _, h := range []string{"pro-ject", "pro-jects", "ta-ble", "pro-ject", "pro-j-ect"} {
		if err := x.AddHyphenated(h); err != nil {
			t.Fatal(err)
		}
	}
	if want := []string{"project", "projects", "table"}; !reflect.DeepEqual(x.Words(), want) {
		t.Fatalf("words: got %v, want %v", x.Words(), want)
	}
	if x.Len() != 3 {
		t.Fatalf("expected 3 exceptions, have %d", x.Len())
	}
	tests := []struct {
		word string
		want []uint8
	}{
		{"projects", []uint8{0, 0, 0, 1, 0, 0, 0, 0, 0}},
		{"table", []uint8{0, 0, 1, 0, 0, 0}},
		{"project", []uint8{0, 0, 0, 1, 1, 0, 0, 0}},
	}
	for _, tt := range tests {
		if points, ok := x.Lookup(tt.word); !ok || !reflect.DeepEqual(points, tt.want) {
			t.Fatalf("%s: got %v, %v, want %v", tt.word, points, ok, tt.want)
		}
	}
}

func TestAddRejectsBadLength(t *testing.T) {
	x := NewExceptions()
	if err := x.Add("table", []uint8{0, 1}); !errors.Is(err, ErrExceptionLength) {
		t.Fatalf("expected ErrExceptionLength, got %v", err)
	}
	if err := x.Add("", []uint8{0}); !errors.Is(err, ErrExceptionLength) {
		t.Fatalf("expected ErrExceptionLength for empty word, got %v", err)
	}
	if x.Len() != 0 {
		t.Fatalf("rejected words must not be counted")
	}
}

func TestNilExceptions(t *testing.T) {
	var x *Exceptions
	if _, ok := x.Lookup("table"); ok || x.Len() != 0 || x.Words() != nil {
		t.Fatalf("nil dictionary must be empty")
	}
}

func TestFoldLetters(t *testing.T) {
	tests := []struct {
		word string
		key  string
		ends []int
		ok   bool
	}{
		{"Table", "table", []int{1, 2, 3, 4, 5}, true},
		{"caf\u00e9", "cafe", []int{1, 2, 3, 5}, true},
		{"cafe\u0301s", "cafes", []int{1, 2, 3, 6, 7}, true},
		{"\u00c6r\u00f8", "", nil, false},
		{"\u0301ab", "", nil, false},
		{"a b", "", nil, false},
	}
	for _, tt := range tests {
		key, ends, ok := foldLetters(tt.word)
		if ok != tt.ok || key != tt.key || (ok && !reflect.DeepEqual(ends, tt.ends)) {
			t.Fatalf("foldLetters(%q): got %q %v %v, want %q %v %v", tt.word, key, ends, ok,
				tt.key, tt.ends, tt.ok)
		}
	}
}

func TestCacheLimit(t *testing.T) {
	c := NewCache(2)
	c.Put("one", []uint8{0})
	c.Put("two", []uint8{0})
	c.Put("three", []uint8{0})
	c.Put("one", []uint8{1})
	if c.Len() != 2 {
		t.Fatalf("expected 2 cached words, have %d", c.Len())
	}
	if p, _ := c.Get("one"); p[0] != 1 {
		t.Fatalf("existing words must be updated in a full cache")
	}
	if _, ok := c.Get("three"); ok {
		t.Fatalf("full cache must not accept new words")
	}
}
