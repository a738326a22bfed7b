/*
Package scs merges byte vectors into one shared buffer, approximating a
shortest common superstring.

Every input vector is guaranteed to be a contiguous substring of the result,
so a vector may be addressed by (offset, length) into the shared buffer. The
heuristic is greedy:

 1. remove duplicates and vectors which are substrings of other vectors
 2. compute the longest suffix/prefix overlap for every ordered pair
 3. merge all pairs with the largest overlap, each vector at most once per round
 4. repeat until a single vector remains

Step 2 is quadratic in the number of vectors and is computed by a pool of
workers. Ties are broken deterministically: among pairs with equal overlap,
pairs adding fewer bytes come first, then pairs are ordered by index.
*/
package scs

import (
	"bytes"
	"errors"
	"runtime"
	"sort"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'acdat'
func tracer() tracing.Trace {
	return tracing.Select("acdat")
}

// ErrNotCovered is returned if the result does not contain every input vector.
var ErrNotCovered = errors.New("scs: input vector not contained in shared buffer")

// Option configures Process.
type Option func(*config)

type config struct {
	workers int
}

// Workers sets the number of goroutines computing pairwise overlaps.
// Values < 1 select runtime.GOMAXPROCS(0).
func Workers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// Process merges vectors into a shared buffer and verifies that every vector
// is a substring of it. vectors is not modified.
func Process(vectors [][]byte, opts ...Option) ([]byte, error) {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.workers < 1 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	data := make([][]byte, len(vectors))
	for i, v := range vectors {
		data[i] = append([]byte(nil), v...)
	}
	result := solve(data, c.workers)
	if !Verify(result, vectors) {
		return nil, ErrNotCovered
	}
	tracer().Infof("shared buffer of %d bytes for %d vectors verified", len(result), len(vectors))
	return result, nil
}

// Verify checks that every vector is a substring of buf.
func Verify(buf []byte, vectors [][]byte) bool {
	for _, v := range vectors {
		if !bytes.Contains(buf, v) {
			return false
		}
	}
	return true
}

// Contains reports whether b is a substring of a.
func Contains(a, b []byte) bool {
	if len(a) < len(b) {
		return false
	}
	return bytes.Contains(a, b)
}

// Overlap returns the length of the longest suffix of a which is a prefix of b.
func Overlap(a, b []byte) int {
	i := 0
	for !bytes.HasPrefix(b, a[i:]) {
		i++
	}
	return len(a) - i
}

// Dedup removes vectors contained in other vectors. The order of surviving
// vectors is stable.
func Dedup(data [][]byte) [][]byte {
	result := make([][]byte, 0, len(data))
next:
	for _, v := range data {
		for j := len(result) - 1; j >= 0; j-- {
			if Contains(result[j], v) {
				continue next
			}
			if Contains(v, result[j]) {
				result = append(result[:j], result[j+1:]...)
			}
		}
		result = append(result, v)
	}
	return result
}

type pair struct {
	i, j    int
	overlap int
	ext     int // bytes appended when merging j into i
}

func solve(data [][]byte, workers int) []byte {
	data = Dedup(data)
	if len(data) == 0 {
		return []byte{}
	}
	size := len(data)
	for round := 1; len(data) > 1; round++ {
		tracer().Infof("round %3d: progress %5.2f%%", round, 100-float64(len(data))/float64(size)*100)
		pairs := overlaps(data, workers)
		sort.Slice(pairs, func(x, y int) bool {
			p, q := pairs[x], pairs[y]
			if p.overlap != q.overlap {
				return p.overlap > q.overlap
			}
			if p.ext != q.ext {
				return p.ext < q.ext
			}
			if p.i != q.i {
				return p.i < q.i
			}
			return p.j < q.j
		})
		best := pairs[0].overlap
		merged := make([]bool, len(data))
		for _, p := range pairs {
			if p.overlap != best {
				break
			}
			if merged[p.i] || merged[p.j] {
				continue
			}
			data[p.i] = append(data[p.i], data[p.j][p.overlap:]...)
			merged[p.i], merged[p.j] = true, true
		}
		data = Dedup(data)
		tracer().Debugf("round %3d: best overlap %d, %d vectors left", round, best, len(data))
	}
	return data[0]
}

// overlaps computes all ordered pairs of distinct vectors. Rows of the pair
// matrix are distributed over workers; every worker writes a disjoint range
// of the result.
func overlaps(data [][]byte, workers int) []pair {
	n := len(data)
	pairs := make([]pair, n*(n-1))
	row := func(i int) {
		k := i * (n - 1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			ov := Overlap(data[i], data[j])
			pairs[k] = pair{i: i, j: j, overlap: ov, ext: len(data[j]) - ov}
			k++
		}
	}
	if workers > n {
		workers = n
	}
	var wg sync.WaitGroup
	rows := make(chan int, n)
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				row(i)
			}
		}()
	}
	wg.Wait()
	return pairs
}
