package dat

import (
	"github.com/npillmayer/acdat/trie"
)

// Prepare adds failure links and merges weight vectors along suffix chains.
// It must be called after Convert, with the same trie.
//
// For every node all proper suffixes of its route are probed, longest first.
// The first suffix which is a state becomes the failure link. The weights of
// every suffix state are merged into the node's vector, aligned at the right
// edge, taking the maximum at each position.
func (d *DATrie) Prepare(t *trie.Trie) {
	links := 0
	t.Walk(func(id int, node *trie.Node) {
		s := d.state[id]
		route := node.Route
		for i := 1; i < len(route); i++ {
			suffix, ok := d.Fetch(route[i:])
			if !ok {
				continue
			}
			if d.Fail[s] == 0 {
				d.Fail[s] = suffix
				links++
			}
			if that := d.Data[suffix]; that != nil {
				d.Data[s] = mergeRight(d.Data[s], that)
			}
		}
	})
	tracer().Debugf("computed %d failure links", links)
}

// mergeRight merges that into this, both aligned at their right edges.
func mergeRight(this, that []uint8) []uint8 {
	if len(this) < len(that) {
		ext := make([]uint8, len(that))
		copy(ext[len(that)-len(this):], this)
		this = ext
	} else {
		this = append([]uint8(nil), this...)
	}
	delta := len(this) - len(that)
	for i, w := range that {
		if w > this[i+delta] {
			this[i+delta] = w
		}
	}
	return this
}
