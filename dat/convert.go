package dat

import (
	"github.com/npillmayer/acdat/trie"
)

// Convert flattens a pattern trie into d. Nodes are placed depth-first; all
// children of a node are placed together before descending into any of them.
func (d *DATrie) Convert(t *trie.Trie) {
	d.state = make([]int, t.Len())
	d.convert(t, t.Root())
	tracer().Debugf("converted %d trie nodes into %d DAT slots", t.Len(), d.Len())
}

func (d *DATrie) convert(t *trie.Trie, node int) {
	s := d.state[node]
	if data := t.Node(node).Data; data != nil {
		d.Data[s] = append([]uint8(nil), data...)
	}
	children := t.Children(node)
	base := d.findBase(children)
	d.Base[s] = base
	for _, ch := range children {
		idx := base + int(ch.Code)
		d.resize(idx)
		assert(!d.used[idx], "DAT slot collision")
		d.Mark[idx] = s
		d.used[idx] = true
		d.state[ch.Node] = idx
	}
	for _, ch := range children {
		d.convert(t, ch.Node)
	}
}

// findBase returns the smallest offset for which every child slot is unused.
// Slots beyond the current arrays are unused by definition.
func (d *DATrie) findBase(children []trie.Child) int {
	for base := 0; ; base++ {
		ok := true
		for _, ch := range children {
			t := base + int(ch.Code)
			if t < len(d.used) && d.used[t] {
				ok = false
				break
			}
		}
		if ok {
			d.resize(base)
			return base
		}
	}
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
