/*
Package compiler turns Liang hyphenation patterns into the arrays of a
compiled acdat.Automaton.

Compilation runs offline, in five steps:

	patterns ─► trie ─► double-array ─► failure links ─► shared weights ─► packed tables

The result is an Artifact, which may be used directly or written as Go source,
to be compiled into a program (see package enus).
*/
package compiler

import (
	"fmt"
	"io"

	"github.com/npillmayer/acdat"
	"github.com/npillmayer/acdat/dat"
	"github.com/npillmayer/acdat/scs"
	"github.com/npillmayer/acdat/trie"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'acdat'
func tracer() tracing.Trace {
	return tracing.Select("acdat")
}

// PatternReader yields patterns one-by-one, with
// len(weights) == len(text)+1. It should return io.EOF when the stream is
// exhausted.
type PatternReader interface {
	Next() (text string, weights []uint8, err error)
}

// Option configures Compile.
type Option func(*config)

type config struct {
	workers int
}

// Workers sets the number of goroutines used for weight vector compression.
func Workers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// Artifact is a compiled pattern set.
type Artifact struct {
	Name        string
	Transitions []uint16
	Raw         []uint8
	States      int
	Patterns    int
	Rejected    int     // malformed patterns skipped
	FillRatio   float64 // used slots of the double-array
}

// Compile reads all patterns from r and compiles them. Malformed patterns are
// skipped; readers reporting skipped input by a Rejected() method have those
// counted as well.
func Compile(name string, r PatternReader, opts ...Option) (*Artifact, error) {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	art := &Artifact{Name: name}
	tr := trie.New()
	for {
		text, weights, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading patterns of %s: %w", name, err)
		}
		if err = tr.Insert(text, weights); err != nil {
			tracer().Errorf("pattern %q: %v", text, err)
			art.Rejected++
		}
	}
	if rr, ok := r.(interface{ Rejected() int }); ok {
		art.Rejected += rr.Rejected()
	}
	art.Patterns = tr.Patterns()
	tracer().Infof("%s: %d patterns, %d trie nodes, %d redefined, %d rejected",
		name, art.Patterns, tr.Len(), tr.Redefined(), art.Rejected)
	//
	d := dat.New()
	d.Convert(tr)
	d.Prepare(tr)
	stats := d.Stats()
	art.States, art.FillRatio = d.Len(), stats.FillRatio()
	tracer().Infof("%s: %d states, fill ratio %.2f%%, %d states carry weights",
		name, art.States, 100*art.FillRatio, stats.Vectors)
	//
	vectors := d.DataList()
	raw, err := scs.Process(vectors, scs.Workers(c.workers))
	if err != nil {
		return nil, fmt.Errorf("compressing weights of %s: %w", name, err)
	}
	tracer().Infof("%s: %d distinct weight vectors in %d bytes", name, len(vectors), len(raw))
	art.Raw = raw
	if art.Transitions, err = d.Pack(raw); err != nil {
		return nil, fmt.Errorf("packing %s: %w", name, err)
	}
	return art, nil
}

// Automaton creates a runtime automaton from the compiled tables.
func (art *Artifact) Automaton() (*acdat.Automaton, error) {
	return acdat.New(art.Transitions, art.Raw)
}
