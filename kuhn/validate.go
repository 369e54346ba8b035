package kuhn

// validate checks the shape preconditions and returns (n, m) on success.
// It runs before any mutation so a rejected table is returned untouched.
//
// Contract:
//   - at least one row and one column (ErrEmptyTable),
//   - all rows of equal length (ErrNonRectangular),
//   - n ≤ m (ErrRowsExceedCols).
//
// Complexity: O(n) time, no allocations.
func validate(table [][]Cell) (int, int, error) {
	if len(table) == 0 || len(table[0]) == 0 {
		return 0, 0, ErrEmptyTable
	}

	n, m := len(table), len(table[0])
	for _, row := range table {
		if len(row) != m {
			return 0, 0, ErrNonRectangular
		}
	}
	if n > m {
		return 0, 0, ErrRowsExceedCols
	}

	return n, m, nil
}

// cloneTable deep-copies a rectangular table.
//
// Complexity: O(n·m) time and memory.
func cloneTable(t [][]Cell) [][]Cell {
	out := make([][]Cell, len(t))
	for i := range t {
		out[i] = append([]Cell(nil), t[i]...)
	}

	return out
}
