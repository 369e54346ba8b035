package kuhn

// Match computes a minimum-cost complete matching of rows to columns for a
// rectangular cost table with len(table) ≤ len(table[0]). It returns
// exactly n (row, column) pairs in ascending row order, columns pairwise
// distinct.
//
// By default Match solves on a private copy and the caller's table is left
// untouched; see WithInPlace and WithMaximize for the other modes.
//
// Contracts:
//   - table must be rectangular and non-empty with n ≤ m; violations are
//     rejected with a sentinel error before any mutation.
//   - entries must be small enough that repeated row/column reductions
//     cannot overflow Cell.
//
// Complexity: O(n³) time for n ≈ m, O(n·m) memory.
func Match(table [][]Cell, opts ...Option) ([]Pos, error) {
	n, m, err := validate(table)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	work := table
	if !o.InPlace || o.Maximize {
		work = cloneTable(table)
	}
	if o.Maximize {
		for i := range work {
			for j := range work[i] {
				work[i][j] = -work[i][j]
			}
		}
	}

	reduceRows(work)
	marks := newMarks(n, m)
	initialStars(work, marks)

	rowCov := make([]bool, n)
	colCov := make([]bool, m)

	// starredColumns both decides completion and seeds the column cover
	// for the next search phase.
	for starredColumns(marks, colCov) != n {
		var terminal Pos
		for {
			p, ok := findPrime(work, marks, rowCov, colCov)
			if ok {
				terminal = p
				break
			}
			adjustCovers(work, rowCov, colCov)
		}

		augmentPath(marks, terminal)
		resetCovers(rowCov)
		resetCovers(colCov)
	}

	return assignment(marks), nil
}

// Total sums the table values at the assigned positions. Callers that used
// the default copy mode can pass the very table they solved; callers that
// used WithInPlace must pass a copy retained before Match, since the solved
// table no longer holds the original costs.
//
// Complexity: O(n) time.
func Total(table [][]Cell, pairs []Pos) Cell {
	var sum Cell
	for _, p := range pairs {
		sum += table[p.Row][p.Col]
	}

	return sum
}

// resetCovers clears a cover vector in place.
func resetCovers(cov []bool) {
	for i := range cov {
		cov[i] = false
	}
}
