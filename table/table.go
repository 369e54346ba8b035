package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/hungarian/kuhn"
)

var (
	// ErrBadShape indicates non-positive row or column counts.
	ErrBadShape = errors.New("table: rows and columns must be positive")

	// ErrBadRange indicates a negative maxValue for Random.
	ErrBadRange = errors.New("table: maxValue must be non-negative")

	// ErrTruncated indicates the stream ended before n·m values were read.
	ErrTruncated = errors.New("table: input ended before the table was complete")

	// ErrBadCell indicates a token that is not a valid signed integer.
	ErrBadCell = errors.New("table: cell is not a valid integer")
)

// defaultSeed is the fixed seed used when callers pass seed==0, keeping
// zero-value usage reproducible.
const defaultSeed int64 = 1

// Random returns an n×m table of uniform values in [0, maxValue].
// Generation is fully deterministic: the same seed always yields the same
// table. Seed 0 selects defaultSeed.
//
// Complexity: O(n·m) time and memory.
func Random(n, m int, maxValue kuhn.Cell, seed int64) ([][]kuhn.Cell, error) {
	if n <= 0 || m <= 0 {
		return nil, ErrBadShape
	}
	if maxValue < 0 {
		return nil, ErrBadRange
	}

	s := seed
	if s == 0 {
		s = defaultSeed
	}
	rng := rand.New(rand.NewSource(s))

	t := make([][]kuhn.Cell, n)
	for i := range t {
		row := make([]kuhn.Cell, m)
		for j := range row {
			row[j] = kuhn.Cell(rng.Int63n(int64(maxValue) + 1))
		}
		t[i] = row
	}

	return t, nil
}

// Read parses an n×m table from r: n·m whitespace-separated signed
// integers in row-major order. Returns ErrTruncated if the stream ends
// early and ErrBadCell (wrapped with the offending token) on a parse
// failure.
//
// Complexity: O(n·m) time and memory.
func Read(r io.Reader, n, m int) ([][]kuhn.Cell, error) {
	if n <= 0 || m <= 0 {
		return nil, ErrBadShape
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return readBody(sc, n, m)
}

// ReadSized parses a table preceded by its dimensions: two integers n and
// m, then n·m values as in Read.
func ReadSized(r io.Reader) ([][]kuhn.Cell, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := nextCell(sc)
	if err != nil {
		return nil, err
	}
	m, err := nextCell(sc)
	if err != nil {
		return nil, err
	}
	if n <= 0 || m <= 0 {
		return nil, ErrBadShape
	}

	return readBody(sc, int(n), int(m))
}

func readBody(sc *bufio.Scanner, n, m int) ([][]kuhn.Cell, error) {
	t := make([][]kuhn.Cell, n)
	for i := 0; i < n; i++ {
		row := make([]kuhn.Cell, m)
		for j := 0; j < m; j++ {
			v, err := nextCell(sc)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		t[i] = row
	}

	return t, nil
}

func nextCell(sc *bufio.Scanner) (kuhn.Cell, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}

		return 0, ErrTruncated
	}
	v, err := strconv.ParseInt(sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCell, sc.Text())
	}

	return kuhn.Cell(v), nil
}
