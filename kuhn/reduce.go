package kuhn

import "math"

// reduceRows subtracts each row's minimum from every entry in that row,
// leaving at least one zero per row. Subtracting a constant from a whole
// row does not change which assignment is optimal, so the reduced table
// has the same optimum as the original.
//
// Complexity: O(n·m) time, no allocations.
func reduceRows(t [][]Cell) {
	for i := range t {
		min := t[i][0]
		for _, v := range t[i][1:] {
			if v < min {
				min = v
			}
		}
		for j := range t[i] {
			t[i][j] -= min
		}
	}
}

// adjustCovers applies the dual update when no uncovered zero remains:
// find the minimum over all cells with uncovered row and uncovered column,
// add it to every entry of a covered row and subtract it from every entry
// of an uncovered column. A cell on a covered row and uncovered column
// nets to unchanged; cells uncovered both ways strictly decrease, so at
// least one new uncovered zero appears and the search is guaranteed to
// progress.
//
// Complexity: O(n·m) time, no allocations.
func adjustCovers(t [][]Cell, rowCov, colCov []bool) {
	min := Cell(math.MaxInt64)
	for i := range t {
		if rowCov[i] {
			continue
		}
		for j, v := range t[i] {
			if !colCov[j] && v < min {
				min = v
			}
		}
	}

	for i := range t {
		for j := range t[i] {
			if rowCov[i] {
				t[i][j] += min
			}
			if !colCov[j] {
				t[i][j] -= min
			}
		}
	}
}
