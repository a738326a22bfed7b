package dat

import (
	"bytes"
	"errors"
	"fmt"
)

// StateWidth is the number of 16-bit words per packed state.
const StateWidth = 4

// Limits of the packed payload descriptor (offset<<4 | length).
const (
	MaxVectorLen = 0x0F   // length lives in the low nibble
	MaxRawOffset = 0x0FFF // offset lives in the remaining 12 bits
)

var (
	// ErrVectorTooLong is returned if a weight vector does not fit into 4 bits of length.
	ErrVectorTooLong = errors.New("dat: weight vector longer than 15 bytes")
	// ErrOffsetOverflow is returned if a weight vector starts beyond the addressable raw offset.
	ErrOffsetOverflow = errors.New("dat: raw offset does not fit into 12 bits")
	// ErrVectorMissing is returned if a weight vector is not a substring of the raw buffer.
	ErrVectorMissing = errors.New("dat: weight vector not contained in raw buffer")
	// ErrTooManyStates is returned if scaled state indices do not fit into 16 bits.
	ErrTooManyStates = errors.New("dat: too many states for 16-bit transitions")
)

// DataList returns the distinct weight vectors referenced by states, in
// ascending order of the first state referencing them.
func (d *DATrie) DataList() [][]byte {
	seen := make(map[string]struct{})
	list := make([][]byte, 0, 1024)
	for _, v := range d.Data {
		if v == nil {
			continue
		}
		if _, ok := seen[string(v)]; ok {
			continue
		}
		seen[string(v)] = struct{}{}
		list = append(list, append([]byte(nil), v...))
	}
	return list
}

// Pack serializes d into a table of StateWidth words per state:
//
//	[ Base*4, Mark*4, Fail*4, offset<<4 | length ]
//
// Mark is stored verbatim if it is NoParent. raw must contain every weight
// vector of d as a substring; the first occurrence is referenced.
// A descriptor of 0 means "no data".
func (d *DATrie) Pack(raw []byte) ([]uint16, error) {
	if StateWidth*len(d.Base) > 0x10000 {
		return nil, fmt.Errorf("%w: %d states", ErrTooManyStates, len(d.Base))
	}
	table := make([]uint16, 0, StateWidth*len(d.Base))
	for s := range d.Base {
		desc, err := descriptor(d.Data[s], raw)
		if err != nil {
			return nil, fmt.Errorf("state %d: %w", s, err)
		}
		mark := d.Mark[s]
		if mark != NoParent {
			mark *= StateWidth
		}
		table = append(table,
			uint16(d.Base[s]*StateWidth),
			uint16(mark),
			uint16(d.Fail[s]*StateWidth),
			desc)
	}
	return table, nil
}

func descriptor(data []uint8, raw []byte) (uint16, error) {
	if len(data) == 0 {
		return 0, nil
	}
	if len(data) > MaxVectorLen {
		return 0, fmt.Errorf("%w: length %d", ErrVectorTooLong, len(data))
	}
	off := bytes.Index(raw, data)
	if off < 0 {
		return 0, fmt.Errorf("%w: %v", ErrVectorMissing, data)
	}
	if off > MaxRawOffset {
		return 0, fmt.Errorf("%w: offset %d", ErrOffsetOverflow, off)
	}
	return uint16(off<<4 | len(data)), nil
}
