/*
Package acdat hyphenates words with a compiled Aho–Corasick automaton.

The hyphenation algorithm is the one described by Frank Liang
(F.M.Liang http://www.tug.org/docs/liang/). Instead of probing a pattern trie
for every suffix of a word, patterns are compiled offline into an Aho–Corasick
automaton laid out as a double-array trie (DAT). Each state of the automaton
carries the merged weights of every pattern ending in it, so a single left-to-right
pass over a word yields its hyphenation points.

A compiled automaton consists of two arrays:

	transitions  4 uint16 words per state: base, parent, fail, data descriptor
	raw          weight vectors, overlapped into one shared buffer

Sub-packages build these arrays (see packages trie, dat, scs and compiler) and
package enus ships the arrays for US English. At run time an Automaton computes
point vectors and a Hyphenator turns them into discretionary hyphens.

	h := acdat.NewHyphenator(enus.Automaton(), acdat.WithExceptions(acdat.DefaultExceptions()))
	h.Hyphen("Hyphenation")   // "Hy\u00ADphen\u00ADation"

Further Reading

	https://www.tug.org/docs/liang/
	https://linux.thai.net/~thep/datrie/datrie.html   (double-array tries)
	https://en.wikipedia.org/wiki/Aho%E2%80%93Corasick_algorithm

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package acdat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'acdat'
func tracer() tracing.Trace {
	return tracing.Select("acdat")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
