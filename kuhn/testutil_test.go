package kuhn_test

import (
	"math"

	"github.com/katalvlaran/hungarian/kuhn"
)

// bruteForce returns the optimal (minimum) assignment cost by enumerating
// every way to place one pick per row on distinct columns. Exponential;
// only for tables with n, m ≤ 6 in tests.
func bruteForce(t [][]kuhn.Cell) kuhn.Cell {
	n, m := len(t), len(t[0])
	used := make([]bool, m)
	best := kuhn.Cell(math.MaxInt64)

	var rec func(row int, acc kuhn.Cell)
	rec = func(row int, acc kuhn.Cell) {
		if row == n {
			if acc < best {
				best = acc
			}

			return
		}
		for j := 0; j < m; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			rec(row+1, acc+t[row][j])
			used[j] = false
		}
	}
	rec(0, 0)

	return best
}

// bruteForceMax is the maximization twin of bruteForce.
func bruteForceMax(t [][]kuhn.Cell) kuhn.Cell {
	n, m := len(t), len(t[0])
	used := make([]bool, m)
	best := kuhn.Cell(math.MinInt64)

	var rec func(row int, acc kuhn.Cell)
	rec = func(row int, acc kuhn.Cell) {
		if row == n {
			if acc > best {
				best = acc
			}

			return
		}
		for j := 0; j < m; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			rec(row+1, acc+t[row][j])
			used[j] = false
		}
	}
	rec(0, 0)

	return best
}

// cloneCells deep-copies a table so tests can compare against the original.
func cloneCells(t [][]kuhn.Cell) [][]kuhn.Cell {
	out := make([][]kuhn.Cell, len(t))
	for i := range t {
		out[i] = append([]kuhn.Cell(nil), t[i]...)
	}

	return out
}

// checkComplete asserts structural validity of an assignment: one pair per
// row in ascending order, all columns distinct and in range.
func checkComplete(pairs []kuhn.Pos, n, m int) (rowsOK, colsOK bool) {
	if len(pairs) != n {
		return false, false
	}
	rowsOK = true
	for i, p := range pairs {
		if p.Row != i {
			rowsOK = false
		}
	}
	seen := make(map[int]bool, n)
	colsOK = true
	for _, p := range pairs {
		if p.Col < 0 || p.Col >= m || seen[p.Col] {
			colsOK = false
		}
		seen[p.Col] = true
	}

	return rowsOK, colsOK
}
