package texexceptions

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/acdat"
)

// Reader streams hyphenation exceptions from TeX \hyphenation{...} blocks.
// Patterns and other markup are skipped.
type Reader struct {
	scanner *bufio.Scanner
	pending []string
	inBlock bool
}

// LoadExceptions parses TeX exception data from reader and adds all
// \hyphenation{...} entries to x.
func LoadExceptions(x *acdat.Exceptions, reader io.Reader) error {
	return x.LoadExceptionReader(NewReader(reader))
}

// NewReader creates a Reader for reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next exception as (word, positions), with one position per
// letter of word, 1 if the letter is preceded by a hyphen.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, []int, error) {
	for {
		if len(r.pending) > 0 {
			entry := r.pending[0]
			r.pending = r.pending[1:]
			word, positions := split(entry)
			return word, positions, nil
		}
		if !r.scanner.Scan() {
			break
		}
		line := r.scanner.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if !r.inBlock {
			if !strings.HasPrefix(line, "\\hyphenation{") {
				continue
			}
			r.inBlock = true
			line = line[len("\\hyphenation{"):]
		}
		if i := strings.IndexByte(line, '}'); i >= 0 {
			r.inBlock = false
			line = line[:i]
		}
		r.pending = strings.Fields(line)
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	if r.inBlock {
		return "", nil, errors.New("unexpected end of file (unclosed \\hyphenation block)")
	}
	return "", nil, io.EOF
}

func split(entry string) (string, []int) {
	positions := make([]int, 0, len(entry))
	wasHyphen := false
	for _, ch := range entry {
		if ch == '-' {
			wasHyphen = true
			continue
		}
		if wasHyphen {
			positions = append(positions, 1)
			wasHyphen = false
		} else {
			positions = append(positions, 0)
		}
	}
	return strings.ReplaceAll(entry, "-", ""), positions
}
