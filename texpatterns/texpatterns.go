package texpatterns

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'acdat'
func tracer() tracing.Trace {
	return tracing.Select("acdat")
}

// ErrMalformedPattern is reported for pattern tokens which cannot be decoded.
var ErrMalformedPattern = errors.New("texpatterns: malformed pattern")

// PatternReader streams Liang patterns from pattern files.
//
// Two layouts are understood: plain pattern lists as produced by patgen,
// and TeX-style source files, where patterns are enclosed in between
//
//	\patterns{ % some comment
//	 ...
//	.wil5i
//	.ye4
//	4ab.
//	a5bal
//	a5ban
//	abe2
//	 ...
//	}
//
// A line may carry several whitespace-separated patterns; '%' starts a
// comment. Odd numbers stand for possible discretionary breakpoints, even
// numbers forbid hyphenation. Digits belong to the gap in front of the
// character after them, i.e.,
//
//	"a5ban" => (a)(5b)(a)(n) => weights["aban"] = [0,5,0,0,0].
//
// Patterns consist of the letters a…z and the word boundary '.'. Tokens with
// other characters or with adjacent digits are skipped and counted.
//
// Exceptions from \hyphenation{...} are intentionally not read here.
type PatternReader struct {
	scanner    *bufio.Scanner
	identifier string
	pending    []string
	inPatterns bool
	rejected   int
	line       int
}

// NewPatternReader creates a PatternReader for reader.
func NewPatternReader(reader io.Reader) *PatternReader {
	return &PatternReader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the dictionary identifier announced by a \message{...}
// line, if any has been read.
func (r *PatternReader) Identifier() string {
	return r.identifier
}

// Rejected returns the number of malformed tokens skipped so far.
func (r *PatternReader) Rejected() int {
	return r.rejected
}

// Next returns the next pattern as (text, weights), with
// len(weights) == len(text)+1.
// It returns io.EOF when exhausted.
func (r *PatternReader) Next() (string, []uint8, error) {
	for {
		for len(r.pending) > 0 {
			token := r.pending[0]
			r.pending = r.pending[1:]
			text, weights, err := Decode(token)
			if err != nil {
				r.rejected++
				tracer().Errorf("line %d: %v", r.line, err)
				continue
			}
			return text, weights, nil
		}
		if !r.scanner.Scan() {
			break
		}
		r.line++
		r.pending = r.tokens(r.scanner.Text())
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	if r.inPatterns {
		return "", nil, errors.New("unexpected end of file (unclosed \\patterns block)")
	}
	return "", nil, io.EOF
}

// tokens splits a line into pattern tokens, skipping TeX markup.
func (r *PatternReader) tokens(line string) []string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "\\message{") && strings.HasSuffix(line, "}") {
		r.identifier = line[9 : len(line)-1]
		return nil
	}
	if i := strings.IndexByte(line, '%'); i >= 0 {
		line = line[:i]
	}
	switch {
	case strings.HasPrefix(line, "\\hyphenation{"):
		if !strings.Contains(line, "}") {
			skipTeXBlock(r.scanner, &r.line)
		}
		return nil
	case strings.HasPrefix(line, "\\patterns{"):
		r.inPatterns = true
		line = line[len("\\patterns{"):]
	case strings.HasPrefix(line, "\\"):
		return nil
	}
	if i := strings.IndexByte(line, '}'); i >= 0 {
		r.inPatterns = false
		line = line[:i]
	}
	return strings.Fields(line)
}

// Decode converts a single pattern token such as "a5ban" into its letters and
// weights.
func Decode(token string) (string, []uint8, error) {
	text := make([]byte, 0, len(token))
	weights := make([]uint8, 1, len(token)+1)
	wasDigit := false
	for i := 0; i < len(token); i++ {
		ch := token[i]
		switch {
		case ch >= '0' && ch <= '9':
			if wasDigit {
				return "", nil, fmt.Errorf("%w: adjacent digits in %q", ErrMalformedPattern, token)
			}
			weights[len(weights)-1] = ch - '0'
			wasDigit = true
		case ch == '.' || ch >= 'a' && ch <= 'z':
			text = append(text, ch)
			weights = append(weights, 0)
			wasDigit = false
		default:
			return "", nil, fmt.Errorf("%w: invalid character %q in %q", ErrMalformedPattern, ch, token)
		}
	}
	if len(text) == 0 {
		return "", nil, fmt.Errorf("%w: no letters in %q", ErrMalformedPattern, token)
	}
	return string(text), weights, nil
}

func skipTeXBlock(scanner *bufio.Scanner, line *int) {
	for scanner.Scan() {
		*line++
		if strings.Contains(scanner.Text(), "}") {
			return
		}
	}
}
