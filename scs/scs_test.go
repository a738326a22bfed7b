package scs

import (
	"bytes"
	"math/rand"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"abc", "bcd", 2},
		{"abc", "xyz", 0},
		{"aaa", "aaab", 3},
		{"abab", "abab", 4},
		{"", "abc", 0},
		{"abc", "c", 1},
	}
	for _, tt := range tests {
		if got := Overlap([]byte(tt.a), []byte(tt.b)); got != tt.want {
			t.Fatalf("Overlap(%q,%q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDedup(t *testing.T) {
	in := [][]byte{
		[]byte("bc"),
		[]byte("abcd"),
		[]byte("xy"),
		[]byte("abcd"),
		[]byte("b"),
		[]byte("wxyz"),
	}
	got := Dedup(in)
	want := [][]byte{[]byte("abcd"), []byte("wxyz")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Dedup: got %q, want %q", got, want)
	}
}

func TestProcessSmall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "acdat")
	defer teardown()
	//
	vectors := [][]byte{
		{0, 0, 1, 0},
		{0, 3, 0},
		{1, 0, 3, 0},
		{0, 0, 2, 0},
		{2, 0, 0, 5},
	}
	raw, err := Process(vectors, Workers(2))
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, v := range vectors {
		total += len(v)
	}
	if len(raw) >= total {
		t.Fatalf("expected shared buffer to be shorter than %d, is %d: %v", total, len(raw), raw)
	}
}

func TestProcessEmpty(t *testing.T) {
	raw, err := Process(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 0 {
		t.Fatalf("expected empty buffer, have %v", raw)
	}
}

func TestProcessDoesNotModifyInput(t *testing.T) {
	vectors := [][]byte{[]byte("abc"), []byte("cde")}
	if _, err := Process(vectors); err != nil {
		t.Fatal(err)
	}
	if string(vectors[0]) != "abc" || string(vectors[1]) != "cde" {
		t.Fatalf("input modified: %q", vectors)
	}
}

func TestProcessCoversRandomVectors(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	vectors := make([][]byte, 300)
	for i := range vectors {
		v := make([]byte, 1+rnd.Intn(12))
		for k := range v {
			if rnd.Intn(3) == 0 {
				v[k] = byte(1 + rnd.Intn(5))
			}
		}
		vectors[i] = v
	}
	raw, err := Process(vectors, Workers(4))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range vectors {
		if !bytes.Contains(raw, v) {
			t.Fatalf("vector #%d %v not covered", i, v)
		}
	}
}

func TestProcessIsDeterministic(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	vectors := make([][]byte, 120)
	for i := range vectors {
		v := make([]byte, 2+rnd.Intn(8))
		rnd.Read(v)
		for k := range v {
			v[k] %= 4
		}
		vectors[i] = v
	}
	first, err := Process(vectors, Workers(1))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Process(vectors, Workers(8))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("result depends on number of workers")
	}
}

func TestVerify(t *testing.T) {
	if !Verify([]byte("abcdef"), [][]byte{[]byte("bcd"), []byte("f")}) {
		t.Fatalf("expected coverage")
	}
	if Verify([]byte("abcdef"), [][]byte{[]byte("fa")}) {
		t.Fatalf("expected missing vector to be detected")
	}
}
