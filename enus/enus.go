/*
Package enus provides compiled hyphenation tables for US English.

The tables are generated from hyph-en-us.pat, the classic Liang pattern set
shipped with TeX (4447 patterns), by

	go generate ./enus
*/
package enus

import (
	"sync"

	"github.com/npillmayer/acdat"
)

//go:generate go run ../cmd/acdatc -patterns hyph-en-us.pat -o tables.go -pkg enus

var automaton = acdat.MustNew(transitions[:], raw[:])

// Automaton returns the US English automaton. It is shared and safe for
// concurrent use.
func Automaton() *acdat.Automaton {
	return automaton
}

// Hyphenator returns a process-wide hyphenator for US English, using the
// built-in exception words.
func Hyphenator() *acdat.Hyphenator {
	return hyphenator()
}

var hyphenator = sync.OnceValue(func() *acdat.Hyphenator {
	return acdat.NewHyphenator(automaton, acdat.WithExceptions(acdat.DefaultExceptions()))
})
