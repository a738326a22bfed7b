package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/acdat"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func writePatterns(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knuth.pat")
	src := "hy3ph he2n hena4 hen5at 1na n2at 1tio 2io o2n\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunGoSource(t *testing.T) {
	patterns := writePatterns(t)
	out := filepath.Join(t.TempDir(), "tables.go")
	if err := run(patterns, out, "knuth", "go", 1); err != nil {
		t.Fatal(err)
	}
	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(src), "// Code generated by acdatc from knuth.pat; DO NOT EDIT.\n\npackage knuth\n") {
		t.Fatalf("unexpected header:\n%s", src)
	}
}

func TestRunBinary(t *testing.T) {
	patterns := writePatterns(t)
	out := filepath.Join(t.TempDir(), "knuth.acdat")
	if err := run(patterns, out, "", "zst", 0); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	a, err := acdat.ReadAutomaton(f)
	if err != nil {
		t.Fatal(err)
	}
	if s := acdat.NewHyphenator(a).HyphenationString("hyphenation", "-"); s != "hy-phen-ation" {
		t.Fatalf("hyphenation should be hy-phen-ation, is %s", s)
	}
}

func TestRunErrors(t *testing.T) {
	if err := run(filepath.Join(t.TempDir(), "missing.pat"), "", "x", "go", 0); err == nil {
		t.Fatalf("expected error for missing pattern file")
	}
	if err := run(writePatterns(t), "", "x", "json", 0); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestTraceSelector(t *testing.T) {
	sel := newTraceSelector(gologadapter.GetAdapter())
	a := sel.Select("acdat")
	a.SetTraceLevel(tracing.LevelDebug)
	if b := sel.Select("acdat"); b != a || b.GetTraceLevel() != tracing.LevelDebug {
		t.Fatalf("expected the same tracer for the same key")
	}
	if sel.Select("other") == a {
		t.Fatalf("expected a separate tracer for another key")
	}
	var _ tracing.TraceSelector = sel
}
