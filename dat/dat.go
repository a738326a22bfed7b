/*
Package dat implements a double-array trie (DAT) with Aho–Corasick failure
links for Liang-style hyphenation patterns.

  - States are indices into the parallel arrays Base, Mark, Fail and Data.
    State 0 is the root.
  - Transition: t := Base[s] + c; valid if Mark[t] == s; next state is t.
  - c is the raw pattern byte ('.' or 'a'…'z'), no dense alphabet mapping is used.
  - Mark is NoParent for the root and for unused slots.
  - Fail[s] is the state for the longest proper suffix of the route of s which
    is a state itself, 0 (the root) if there is none.
  - Data[s] is the weight vector of s after Aho–Corasick merging, i.e., the
    right-aligned maximum of the weights of every pattern which is a suffix
    of the route of s.

A DATrie is built once from a pattern trie (Convert, then Prepare) and finally
packed into a flat table of 16-bit words (Pack).
*/
package dat

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'acdat'
func tracer() tracing.Trace {
	return tracing.Select("acdat")
}

// NoParent marks the root and unused slots in Mark.
const NoParent = 0xFFFF

// DATrie is a double-array trie under construction.
type DATrie struct {
	Base []int
	Mark []int
	Fail []int
	Data [][]uint8

	used  []bool
	state []int // trie node id → DAT state
}

// New creates a DATrie consisting of the root state only.
func New() *DATrie {
	return &DATrie{
		Base: []int{0},
		Mark: []int{NoParent},
		Fail: []int{0},
		Data: [][]uint8{nil},
		used: []bool{true},
	}
}

// Len returns the number of allocated slots, used or not.
func (d *DATrie) Len() int { return len(d.Base) }

// State returns the DAT state of trie node id, as assigned by Convert.
func (d *DATrie) State(node int) int {
	if node < 0 || node >= len(d.state) {
		return 0
	}
	return d.state[node]
}

// Transition returns (nextState, ok) for a single byte.
func (d *DATrie) Transition(state int, c byte) (int, bool) {
	t := d.Base[state] + int(c)
	if t >= len(d.Mark) || d.Mark[t] != state {
		return 0, false
	}
	return t, true
}

// Fetch walks text from the root and returns the state reached.
func (d *DATrie) Fetch(text []byte) (int, bool) {
	cursor := 0
	for _, c := range text {
		next, ok := d.Transition(cursor, c)
		if !ok {
			return 0, false
		}
		cursor = next
	}
	return cursor, true
}

// resize grows all arrays to hold index idx. Arrays never shrink.
func (d *DATrie) resize(idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int, grow)...)
	d.Fail = append(d.Fail, make([]int, grow)...)
	d.Data = append(d.Data, make([][]uint8, grow)...)
	d.used = append(d.used, make([]bool, grow)...)
	for ; grow > 0; grow-- {
		d.Mark = append(d.Mark, NoParent)
	}
}

func (d *DATrie) String() string {
	return fmt.Sprintf("DAT(slots=%d,used=%d)", d.Len(), d.Stats().UsedSlots)
}

// Dump formats the arrays as a table, one column per slot. It is meant for
// debugging small automata.
func (d *DATrie) Dump() string {
	var b strings.Builder
	row := func(name string, n int, value func(int) int) {
		b.WriteString(name)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "|%5d", value(i))
		}
		b.WriteString("|\n")
	}
	n := d.Len()
	row(" idx", n, func(i int) int { return i })
	row("base", n, func(i int) int { return d.Base[i] })
	row("mark", n, func(i int) int { return d.Mark[i] })
	row("fail", n, func(i int) int { return d.Fail[i] })
	row("used", n, func(i int) int {
		if d.used[i] {
			return 1
		}
		return 0
	})
	return b.String()
}
