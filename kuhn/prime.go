package kuhn

import "github.com/katalvlaran/hungarian/bitset"

// findPrime searches for an uncovered zero that ends an augmenting path.
//
// It seeds a zero locator with every (i, j) whose value is zero on an
// uncovered row and uncovered column, packed row-major as i·m+j, then pops
// members one at a time:
//
//   - the popped cell is primed;
//   - if its row holds a star at some column c, the row cannot extend the
//     matching directly: the row is covered, column c is uncovered, and
//     locator membership is patched for the two affected lines only (the
//     popped row and the reopened column) instead of rebuilding;
//   - if its row is star-free, that prime terminates an augmenting path
//     and is returned with ok = true.
//
// When the locator drains without finding a star-free row, findPrime
// returns ok = false; the caller must run adjustCovers and call again
// (covers keep their state across the retry, the locator is reseeded from
// the adjusted table).
//
// Invariant: locator membership ⇔ zero value ∧ uncovered row ∧ uncovered
// column, restored after every cover flip before the next pop.
//
// Complexity: O(n·m) per invocation plus O(n+m) per cover flip.
func findPrime(t [][]Cell, marks [][]mark, rowCov, colCov []bool) (Pos, bool) {
	n, m := len(t), len(t[0])

	// Error is unreachable: validate guarantees n·m ≥ 1.
	zeros, _ := bitset.New(n * m)
	for i := 0; i < n; i++ {
		if rowCov[i] {
			continue
		}
		for j := 0; j < m; j++ {
			if !colCov[j] && t[i][j] == 0 {
				zeros.Set(i*m + j)
			}
		}
	}

	for {
		p := zeros.Any()
		if p == bitset.NoBit {
			return Pos{}, false
		}
		row, col := p/m, p%m

		marks[row][col] = primed

		starCol := -1
		for j := 0; j < m; j++ {
			if marks[row][j] == starred {
				starCol = j
			}
		}
		if starCol < 0 {
			// Star-free row: augmenting path found, ending at this prime.
			return Pos{Row: row, Col: col}, true
		}

		rowCov[row] = true
		colCov[starCol] = false

		// Membership changed only along the covered row and the reopened
		// column; resync those cells instead of rebuilding the locator.
		for i := 0; i < n; i++ {
			if t[i][starCol] == 0 && i != row {
				syncZero(zeros, i*m+starCol, rowCov[i], colCov[starCol])
			}
		}
		for j := 0; j < m; j++ {
			if t[row][j] == 0 && j != col {
				syncZero(zeros, row*m+j, rowCov[row], colCov[j])
			}
		}
		syncZero(zeros, p, rowCov[row], colCov[col])
	}
}

// syncZero aligns one known-zero cell's locator membership with the cover
// state: member iff both its row and column are uncovered.
func syncZero(zeros *bitset.BitSet, idx int, rowCovered, colCovered bool) {
	if !rowCovered && !colCovered {
		zeros.Set(idx)
	} else {
		zeros.Unset(idx)
	}
}
