/*
Package trie holds the build-time pattern trie for the hyphenation compiler.

Patterns are inserted one by one and stored in an arena of nodes which are
addressed by integer index. Node 0 is the root. Every node knows the byte on
its incoming edge, its depth and the full route of edge bytes from the root;
the route is needed later on, when failure links are computed from the
suffixes of a node.

The trie is a construction-only structure. Once it has been converted into a
double-array trie (package dat) it may be dropped.
*/
package trie

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'acdat'
func tracer() tracing.Trace {
	return tracing.Select("acdat")
}

var (
	// ErrEmptyPattern is returned when inserting a pattern without text.
	ErrEmptyPattern = errors.New("trie: empty pattern")
	// ErrWeightCount is returned when len(weights) != len(text)+1.
	ErrWeightCount = errors.New("trie: weight count must be one more than text length")
)

// Child is an entry in the association list of a node's children.
type Child struct {
	Code byte // edge label
	Node int  // index of the child node
}

// Node is a single node of the pattern trie.
type Node struct {
	Code     byte    // incoming edge byte (0 for the root)
	Depth    int     // distance from the root
	Route    []byte  // edge bytes from the root to this node
	Data     []uint8 // pattern weights ending here, nil if none
	children []Child // sorted by Code
}

// Trie is an arena-allocated prefix trie of hyphenation patterns.
type Trie struct {
	nodes     []Node
	patterns  int
	redefined int
}

// New creates an empty trie consisting of the root node.
func New() *Trie {
	return &Trie{
		nodes: make([]Node, 1, 1024),
	}
}

// Root returns the index of the root node.
func (t *Trie) Root() int { return 0 }

// Len returns the number of nodes, including the root.
func (t *Trie) Len() int { return len(t.nodes) }

// Patterns returns the number of distinct patterns stored.
func (t *Trie) Patterns() int { return t.patterns }

// Redefined returns how many insertions replaced an existing pattern.
func (t *Trie) Redefined() int { return t.redefined }

// Node returns the node at index id.
func (t *Trie) Node(id int) *Node { return &t.nodes[id] }

// Children returns the children of node id in ascending order of edge bytes.
// Clients must not modify the returned slice.
func (t *Trie) Children(id int) []Child { return t.nodes[id].children }

// Insert stores a pattern. weights has one entry per gap of text, i.e., it must
// be exactly one longer than text. Inserting the same text twice replaces the
// weights of the first insertion.
func (t *Trie) Insert(text string, weights []uint8) error {
	if len(text) == 0 {
		return ErrEmptyPattern
	}
	if len(weights) != len(text)+1 {
		return fmt.Errorf("%w: pattern %q has %d weights", ErrWeightCount, text, len(weights))
	}
	n := t.Root()
	for i := 0; i < len(text); i++ {
		n = t.child(n, text[i])
	}
	if t.nodes[n].Data != nil {
		tracer().Infof("pattern %q redefined, last definition wins", text)
		t.redefined++
	} else {
		t.patterns++
	}
	data := make([]uint8, len(weights))
	copy(data, weights)
	t.nodes[n].Data = data
	return nil
}

// child returns the child of n with edge code, creating it on demand.
func (t *Trie) child(n int, code byte) int {
	children := t.nodes[n].children
	i := sort.Search(len(children), func(i int) bool {
		return children[i].Code >= code
	})
	if i < len(children) && children[i].Code == code {
		return children[i].Node
	}
	parent := &t.nodes[n]
	route := make([]byte, len(parent.Route)+1)
	copy(route, parent.Route)
	route[len(route)-1] = code
	id := len(t.nodes)
	node := Node{
		Code:  code,
		Depth: parent.Depth + 1,
		Route: route,
	}
	children = append(children, Child{})
	copy(children[i+1:], children[i:])
	children[i] = Child{Code: code, Node: id}
	t.nodes[n].children = children
	t.nodes = append(t.nodes, node) // may move the arena, parent is stale now
	return id
}

// Find returns the node reached from the root by text.
func (t *Trie) Find(text string) (int, bool) {
	n := t.Root()
	for i := 0; i < len(text); i++ {
		children := t.nodes[n].children
		j := sort.Search(len(children), func(j int) bool {
			return children[j].Code >= text[i]
		})
		if j == len(children) || children[j].Code != text[i] {
			return 0, false
		}
		n = children[j].Node
	}
	return n, true
}

// Walk visits all nodes depth-first in pre-order, children in ascending order
// of their edge bytes.
func (t *Trie) Walk(visit func(id int, node *Node)) {
	var walk func(int)
	walk = func(id int) {
		visit(id, &t.nodes[id])
		for _, ch := range t.nodes[id].children {
			walk(ch.Node)
		}
	}
	walk(t.Root())
}
