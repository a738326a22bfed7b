package tex

import (
	"bytes"
	"io"

	"github.com/npillmayer/acdat"
	"github.com/npillmayer/acdat/compiler"
	"github.com/npillmayer/acdat/texexceptions"
	"github.com/npillmayer/acdat/texpatterns"
)

// Compile compiles a pattern file in TeX format and loads its exception list,
// returning a ready-to-use hyphenator.
//
// Please refer to
//
//	https://github.com/hyphenation/tex-hyphen/tree/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex
//
// for a list of real-world pattern files. Only patterns over the letters a…z
// are compiled; other patterns are skipped.
//
// Example usage:
//
//	f, _ := os.Open("path/to/patterns/hyph-en-us.tex")
//	defer f.Close()
//
//	h, err := tex.Compile("en-us", f)
//
// This will load the patterns and exceptions temporarily into memory.
func Compile(name string, reader io.Reader, opts ...compiler.Option) (*acdat.Hyphenator, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	art, err := compiler.Compile(name, texpatterns.NewPatternReader(bytes.NewReader(data)), opts...)
	if err != nil {
		return nil, err
	}
	a, err := art.Automaton()
	if err != nil {
		return nil, err
	}
	x := acdat.NewExceptions()
	if err = texexceptions.LoadExceptions(x, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return acdat.NewHyphenator(a, acdat.WithExceptions(x)), nil
}
