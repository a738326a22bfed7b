package acdat

import (
	"errors"
	"fmt"
)

// StateWidth is the number of transition words per state.
const StateWidth = 4

// noParent marks the root and unused slots in the parent word of a state.
const noParent = 0xFFFF

var (
	// ErrInvalidInput is matched by errors returned for words which are not
	// sequences of ASCII letters.
	ErrInvalidInput = errors.New("acdat: word must consist of ASCII letters")
	// ErrMalformedTables is returned by New for inconsistent automaton arrays.
	ErrMalformedTables = errors.New("acdat: malformed automaton tables")
)

// InvalidInputError reports the first byte of a word outside [a-zA-Z].
type InvalidInputError struct {
	Word string
	Pos  int
	Byte byte
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("acdat: invalid byte %q at position %d in %q", e.Byte, e.Pos, e.Word)
}

// Is lets errors.Is match e against ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Automaton is a compiled, immutable hyphenation automaton. It is safe for
// concurrent use.
type Automaton struct {
	transitions []uint16
	raw         []uint8
	start       int // state reached from the root by '.', if any
}

// New wraps compiled automaton arrays. The arrays are not copied and must not
// be modified afterwards.
//
// New checks that every fail link and data descriptor stays within the
// arrays, and that fail links lead to shallower states, ending at the root.
func New(transitions []uint16, raw []byte) (*Automaton, error) {
	n := len(transitions)
	if n == 0 || n%StateWidth != 0 {
		return nil, fmt.Errorf("%w: %d transition words", ErrMalformedTables, n)
	}
	for s := 0; s < n; s += StateWidth {
		if mark := transitions[s+1]; mark != noParent && (int(mark) >= n || mark%StateWidth != 0) {
			return nil, fmt.Errorf("%w: state %d has parent %d", ErrMalformedTables, s/StateWidth, mark)
		}
		if int(transitions[s+2]) >= n || transitions[s+2]%StateWidth != 0 {
			return nil, fmt.Errorf("%w: state %d fails to %d", ErrMalformedTables, s/StateWidth, transitions[s+2])
		}
		if desc := transitions[s+3]; desc != 0 {
			off, length := int(desc>>4), int(desc&0x0F)
			if off+length > len(raw) {
				return nil, fmt.Errorf("%w: state %d references raw[%d:%d]", ErrMalformedTables,
					s/StateWidth, off, off+length)
			}
		}
	}
	if transitions[1] != noParent {
		return nil, fmt.Errorf("%w: root has parent %d", ErrMalformedTables, transitions[1])
	}
	if err := checkFailLinks(transitions); err != nil {
		return nil, err
	}
	a := &Automaton{transitions: transitions, raw: raw}
	a.start, _ = a.step(0, '.'<<2) // stays at the root without boundary patterns
	tracer().Debugf("automaton with %d states, %d bytes of weights", a.States(), len(raw))
	return a, nil
}

// checkFailLinks makes sure every fail chain ends at the root, so that
// matching terminates. A used state has to fail to a used state of smaller
// depth or to the root.
func checkFailLinks(T []uint16) error {
	n := len(T) / StateWidth
	depth := make([]int, n) // -1 = not yet known
	for i := range depth {
		depth[i] = -1
	}
	var path []int
	for s := 0; s < n; s++ {
		path = path[:0]
		t := s
		for depth[t] < 0 {
			mark := T[t*StateWidth+1]
			if mark == noParent {
				depth[t] = 0
				break
			}
			if len(path) == n {
				return fmt.Errorf("%w: parent cycle at state %d", ErrMalformedTables, s)
			}
			path = append(path, t)
			t = int(mark) / StateWidth
		}
		for i := len(path) - 1; i >= 0; i-- {
			depth[path[i]] = depth[t] + 1
			t = path[i]
		}
	}
	for s := 1; s < n; s++ {
		if T[s*StateWidth+1] == noParent {
			continue // unused, never reached
		}
		f := int(T[s*StateWidth+2]) / StateWidth
		if f != 0 && (T[f*StateWidth+1] == noParent || depth[f] >= depth[s]) {
			return fmt.Errorf("%w: state %d fails to state %d", ErrMalformedTables, s, f)
		}
	}
	return nil
}

// MustNew is like New but panics on malformed tables. It is meant for
// package-level variables holding generated tables.
func MustNew(transitions []uint16, raw []byte) *Automaton {
	a, err := New(transitions, raw)
	if err != nil {
		panic(err)
	}
	return a
}

// States returns the number of states, used or not.
func (a *Automaton) States() int {
	return len(a.transitions) / StateWidth
}

// RawSize returns the size of the shared weight buffer in bytes.
func (a *Automaton) RawSize() int {
	return len(a.raw)
}

// step follows the goto function of state cur for the scaled input ch.
func (a *Automaton) step(cur, ch int) (int, bool) {
	T := a.transitions
	offset := int(T[cur]) + ch
	if offset < len(T) && int(T[offset+1]) == cur {
		return offset, true
	}
	return cur, false
}

// Detect computes the hyphenation point vector for word. The result has
// len(word)+1 entries; entry k holds the weight of the gap before letter k,
// the last entry the gap after the word. Odd weights mark legal hyphenation
// points.
//
// word must be a non-empty sequence of ASCII letters. Upper case letters are
// matched as lower case.
func (a *Automaton) Detect(word string) ([]uint8, error) {
	if len(word) == 0 {
		return nil, &InvalidInputError{Word: word}
	}
	for i := 0; i < len(word); i++ {
		if c := word[i]; !isLetter(c) {
			return nil, &InvalidInputError{Word: word, Pos: i, Byte: c}
		}
	}
	return a.detect(word), nil
}

// detect expects word to be validated.
func (a *Automaton) detect(word string) []uint8 {
	T, n := a.transitions, len(word)
	points := make([]uint8, n+1)
	cur := a.start
	for idx := 0; idx <= n; idx++ {
		ch := int('.') << 2
		if idx < n {
			ch = int(word[idx]|0x20) << 2 // ASCII letters only: lower case
		}
		for {
			next, ok := a.step(cur, ch)
			if ok {
				cur = next
				break
			}
			if cur == 0 { // the root consumes bytes it has no edge for
				break
			}
			cur = int(T[cur+2])
		}
		desc := T[cur+3]
		if desc == 0 {
			continue
		}
		off, length := int(desc>>4), int(desc&0x0F)
		for i, p := range a.raw[off : off+length] {
			if p == 0 {
				continue
			}
			if g := idx + i + 2 - length; g >= 0 && g <= n && p > points[g] {
				points[g] = p
			}
		}
	}
	return points
}
