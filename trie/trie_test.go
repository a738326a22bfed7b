package trie

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertBuildsRoutes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "acdat")
	defer teardown()
	//
	tr := New()
	if err := tr.Insert("hyph", []uint8{0, 0, 3, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if err := tr.Insert("hen", []uint8{0, 0, 2, 0}); err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 7 {
		t.Fatalf("expected 7 nodes, have %d", tr.Len())
	}
	n, ok := tr.Find("hyph")
	if !ok {
		t.Fatalf("pattern hyph not found")
	}
	node := tr.Node(n)
	if string(node.Route) != "hyph" || node.Depth != 4 || node.Code != 'h' {
		t.Fatalf("unexpected node %+v", node)
	}
	if !reflect.DeepEqual(node.Data, []uint8{0, 0, 3, 0, 0}) {
		t.Fatalf("weights mismatch: got %v", node.Data)
	}
	inner, _ := tr.Find("hy")
	if tr.Node(inner).Data != nil {
		t.Fatalf("inner node should not carry data")
	}
}

func TestChildrenAreSorted(t *testing.T) {
	tr := New()
	for _, s := range []string{"z", "c", "x", "a", ".", "m"} {
		if err := tr.Insert(s, []uint8{0, 1}); err != nil {
			t.Fatal(err)
		}
	}
	var codes []byte
	for _, ch := range tr.Children(tr.Root()) {
		codes = append(codes, ch.Code)
	}
	if string(codes) != ".acmxz" {
		t.Fatalf("children not sorted: %q", codes)
	}
}

func TestInsertLastWriteWins(t *testing.T) {
	tr := New()
	_ = tr.Insert("ab", []uint8{0, 1, 0})
	_ = tr.Insert("ab", []uint8{0, 4, 0})
	n, _ := tr.Find("ab")
	if !reflect.DeepEqual(tr.Node(n).Data, []uint8{0, 4, 0}) {
		t.Fatalf("expected last definition to win, have %v", tr.Node(n).Data)
	}
	if tr.Patterns() != 1 || tr.Redefined() != 1 {
		t.Fatalf("expected 1 pattern and 1 redefinition, have %d/%d", tr.Patterns(), tr.Redefined())
	}
}

func TestInsertRejectsBadInput(t *testing.T) {
	tr := New()
	if err := tr.Insert("", []uint8{0}); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("expected ErrEmptyPattern, got %v", err)
	}
	if err := tr.Insert("abc", []uint8{0, 1}); !errors.Is(err, ErrWeightCount) {
		t.Fatalf("expected ErrWeightCount, got %v", err)
	}
	if tr.Len() != 1 {
		t.Fatalf("rejected patterns must not create nodes, have %d nodes", tr.Len())
	}
}

func TestWalkPreOrder(t *testing.T) {
	tr := New()
	_ = tr.Insert("ba", []uint8{0, 0, 0})
	_ = tr.Insert("ab", []uint8{0, 0, 0})
	var routes []string
	tr.Walk(func(id int, node *Node) {
		routes = append(routes, string(node.Route))
	})
	want := []string{"", "a", "ab", "b", "ba"}
	if !reflect.DeepEqual(routes, want) {
		t.Fatalf("walk order: got %v, want %v", routes, want)
	}
}
