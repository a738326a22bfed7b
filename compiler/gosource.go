package compiler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// valuesPerLine is the number of array elements per line of generated source.
const valuesPerLine = 16

// WriteGo writes the tables as Go source of package pkg, declaring the arrays
// transitions and raw.
func (art *Artifact) WriteGo(w io.Writer, pkg string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Code generated by acdatc from %s; DO NOT EDIT.\n\n", art.Name)
	fmt.Fprintf(bw, "package %s\n\n", pkg)
	fmt.Fprintf(bw, "// %d states, %d patterns, %d bytes of weights.\n\n",
		len(art.Transitions)/4, art.Patterns, len(art.Raw))
	bw.WriteString("var transitions = [...]uint16{\n")
	writeValues(bw, len(art.Transitions), func(i int) uint64 { return uint64(art.Transitions[i]) })
	bw.WriteString("}\n\nvar raw = [...]uint8{\n")
	writeValues(bw, len(art.Raw), func(i int) uint64 { return uint64(art.Raw[i]) })
	bw.WriteString("}\n")
	return bw.Flush()
}

func writeValues(bw *bufio.Writer, n int, value func(int) uint64) {
	var buf []byte
	for i := 0; i < n; i++ {
		if i%valuesPerLine == 0 {
			buf = append(buf[:0], '\t')
		} else {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendUint(buf, value(i), 10)
		buf = append(buf, ',')
		if i%valuesPerLine == valuesPerLine-1 || i == n-1 {
			buf = append(buf, '\n')
			bw.Write(buf)
		}
	}
}
