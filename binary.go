package acdat

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Binary automaton format, zstd-compressed as a whole:
//
//	magic    "ACDT"
//	version  uint32
//	words    uint32, number of transition words
//	rawsize  uint32
//	transitions, uint16 each
//	raw bytes
//
// All integers are little endian.
const (
	binaryMagic   = "ACDT"
	binaryVersion = 1
)

// ErrBinaryFormat is returned for streams which do not hold a binary automaton.
var ErrBinaryFormat = errors.New("acdat: not a binary automaton")

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo writes a in binary format to w. It returns the number of compressed
// bytes written.
func (a *Automaton) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return 0, err
	}
	header := struct {
		Magic   [4]byte
		Version uint32
		Words   uint32
		RawSize uint32
	}{
		Version: binaryVersion,
		Words:   uint32(len(a.transitions)),
		RawSize: uint32(len(a.raw)),
	}
	copy(header.Magic[:], binaryMagic)
	bw := bufio.NewWriter(enc)
	for _, data := range []any{header, a.transitions, a.raw} {
		if err = binary.Write(bw, binary.LittleEndian, data); err != nil {
			enc.Close()
			return cw.n, err
		}
	}
	if err = bw.Flush(); err != nil {
		enc.Close()
		return cw.n, err
	}
	err = enc.Close()
	return cw.n, err
}

// ReadAutomaton reads an automaton in binary format, as written by WriteTo.
func ReadAutomaton(r io.Reader) (*Automaton, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	var header struct {
		Magic   [4]byte
		Version uint32
		Words   uint32
		RawSize uint32
	}
	if err = binary.Read(dec, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBinaryFormat, err)
	}
	if string(header.Magic[:]) != binaryMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrBinaryFormat, header.Magic[:])
	}
	if header.Version != binaryVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBinaryFormat, header.Version)
	}
	if header.Words > 0x10000 || header.RawSize > 0x10000 {
		return nil, fmt.Errorf("%w: implausible sizes %d/%d", ErrBinaryFormat, header.Words, header.RawSize)
	}
	transitions := make([]uint16, header.Words)
	raw := make([]uint8, header.RawSize)
	if err = binary.Read(dec, binary.LittleEndian, transitions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBinaryFormat, err)
	}
	if _, err = io.ReadFull(dec, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBinaryFormat, err)
	}
	tracer().Infof("read binary automaton: %d states, %d bytes of weights", header.Words/StateWidth, header.RawSize)
	return New(transitions, raw)
}
