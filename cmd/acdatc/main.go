// Command acdatc compiles Liang hyphenation patterns into automaton tables.
//
// Patterns are read from a plain pattern list or a TeX pattern file. Output is
// either Go source declaring the arrays transitions and raw (used by package
// enus through go generate), or a zstd-compressed binary automaton:
//
//	acdatc -patterns hyph-en-us.pat -o tables.go -pkg enus
//	acdatc -patterns hyph-en-us.tex -format zst -o en-us.acdat
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/npillmayer/acdat/compiler"
	"github.com/npillmayer/acdat/texpatterns"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	patterns := flag.String("patterns", "", "pattern file (plain or TeX format)")
	output := flag.String("o", "", "output file, default stdout")
	pkg := flag.String("pkg", "enus", "package name of generated Go source")
	format := flag.String("format", "go", "output format: go or zst")
	workers := flag.Int("workers", 0, "goroutines for weight compression, 0 = all CPUs")
	trace := flag.String("trace", "Error", "trace level: Error, Info or Debug")
	flag.Parse()

	if *patterns == "" {
		fmt.Fprintf(os.Stderr, "Usage: acdatc -patterns <file> [-o <file>] [-pkg <name>] [-format go|zst]\n")
		os.Exit(1)
	}
	tracing.SetTraceSelector(newTraceSelector(gologadapter.GetAdapter()))
	tracing.Select("acdat").SetTraceLevel(tracing.TraceLevelFromString(*trace))

	if err := run(*patterns, *output, *pkg, *format, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "acdatc: %v\n", err)
		os.Exit(1)
	}
}

// traceSelector hands out one tracer per key, created by adapter on first use.
type traceSelector struct {
	mx      sync.Mutex
	adapter tracing.Adapter
	tracers map[string]tracing.Trace
}

func newTraceSelector(adapter tracing.Adapter) *traceSelector {
	return &traceSelector{adapter: adapter, tracers: make(map[string]tracing.Trace)}
}

func (sel *traceSelector) Select(key string) tracing.Trace {
	sel.mx.Lock()
	defer sel.mx.Unlock()
	t, ok := sel.tracers[key]
	if !ok {
		t = sel.adapter()
		sel.tracers[key] = t
	}
	return t
}

func run(patterns, output, pkg, format string, workers int) error {
	if format != "go" && format != "zst" {
		return fmt.Errorf("unknown output format %q", format)
	}
	data, err := os.ReadFile(patterns)
	if err != nil {
		return err
	}
	reader := texpatterns.NewPatternReader(bytes.NewReader(data))
	art, err := compiler.Compile(filepath.Base(patterns), reader, compiler.Workers(workers))
	if err != nil {
		return err
	}
	if art.Rejected > 0 {
		fmt.Fprintf(os.Stderr, "acdatc: skipped %d malformed patterns\n", art.Rejected)
	}
	var out bytes.Buffer
	if err = write(&out, art, pkg, format); err != nil {
		return err
	}
	if output == "" {
		_, err = os.Stdout.Write(out.Bytes())
		return err
	}
	return os.WriteFile(output, out.Bytes(), 0o644)
}

func write(w io.Writer, art *compiler.Artifact, pkg, format string) error {
	if format == "go" {
		return art.WriteGo(w, pkg)
	}
	a, err := art.Automaton()
	if err != nil {
		return err
	}
	if _, err = a.WriteTo(w); err != nil {
		return fmt.Errorf("writing binary automaton: %w", err)
	}
	return nil
}
