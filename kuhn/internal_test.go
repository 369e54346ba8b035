package kuhn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReduceRows_EveryRowGainsZero verifies that reduction leaves each
// row's minimum at exactly zero and no entry negative (for non-negative
// input).
func TestReduceRows_EveryRowGainsZero(t *testing.T) {
	tab := [][]Cell{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	reduceRows(tab)

	for i, row := range tab {
		min := row[0]
		for _, v := range row {
			assert.GreaterOrEqual(t, v, Cell(0))
			if v < min {
				min = v
			}
		}
		assert.Equal(t, Cell(0), min, "row %d must contain a zero", i)
	}
}

// TestInitialStars_DisjointRowsAndColumns verifies the greedy seeding
// invariant: at most one star per row and per column, and stars only on
// zeros.
func TestInitialStars_DisjointRowsAndColumns(t *testing.T) {
	tab := [][]Cell{
		{0, 0, 1},
		{0, 2, 0},
		{3, 0, 0},
	}
	marks := newMarks(3, 3)
	initialStars(tab, marks)

	rowCount := make([]int, 3)
	colCount := make([]int, 3)
	for i := range marks {
		for j, mk := range marks[i] {
			if mk == starred {
				assert.Equal(t, Cell(0), tab[i][j], "stars sit on zeros only")
				rowCount[i]++
				colCount[j]++
			}
		}
	}
	for i := range rowCount {
		assert.LessOrEqual(t, rowCount[i], 1, "row %d", i)
		assert.LessOrEqual(t, colCount[i], 1, "col %d", i)
	}
}

// TestStarredColumns_IgnoresStaleCovers verifies the completion check
// recomputes coverage from star positions and overwrites whatever scratch
// state the cover vector held.
func TestStarredColumns_IgnoresStaleCovers(t *testing.T) {
	marks := newMarks(2, 3)
	marks[0][1] = starred
	marks[1][2] = starred

	colCov := []bool{true, false, true} // stale scratch from a search phase
	count := starredColumns(marks, colCov)

	assert.Equal(t, 2, count)
	assert.Equal(t, []bool{false, true, true}, colCov,
		"coverage must be derived from stars alone")
}

// TestAdjustCovers_CreatesUncoveredZero verifies the progress guarantee:
// after a dual update at least one cell with uncovered row and column is
// zero, while cells whose add and subtract cancel are unchanged.
func TestAdjustCovers_CreatesUncoveredZero(t *testing.T) {
	tab := [][]Cell{
		{3, 7, 2},
		{5, 1, 4},
	}
	rowCov := []bool{true, false}
	colCov := []bool{false, true, false}
	netZero := tab[0][0]   // covered row, uncovered column: +min then -min
	untouched := tab[1][1] // uncovered row, covered column: neither applies

	adjustCovers(tab, rowCov, colCov)

	assert.Equal(t, netZero, tab[0][0], "covered row + uncovered column nets to zero")
	assert.Equal(t, untouched, tab[1][1], "uncovered row + covered column is untouched")

	zeros := 0
	for i := range tab {
		if rowCov[i] {
			continue
		}
		for j, v := range tab[i] {
			if !colCov[j] && v == 0 {
				zeros++
			}
		}
	}
	assert.Greater(t, zeros, 0, "adjustment must create an uncovered zero")
}

// TestFindPrime_NoUncoveredZero verifies the ok=false signal when every
// zero is covered.
func TestFindPrime_NoUncoveredZero(t *testing.T) {
	tab := [][]Cell{
		{0, 1},
		{2, 3},
	}
	marks := newMarks(2, 2)
	rowCov := []bool{false, false}
	colCov := []bool{true, false} // the only zero sits on a covered column

	_, ok := findPrime(tab, marks, rowCov, colCov)
	assert.False(t, ok)
}

// TestFindPrime_StarFreeRowTerminates verifies that a zero on a star-free
// row is primed and returned as the augmenting-path terminus.
func TestFindPrime_StarFreeRowTerminates(t *testing.T) {
	tab := [][]Cell{
		{1, 0},
		{0, 2},
	}
	marks := newMarks(2, 2)
	rowCov := []bool{false, false}
	colCov := []bool{false, false}

	p, ok := findPrime(tab, marks, rowCov, colCov)
	require.True(t, ok)
	assert.Equal(t, primed, marks[p.Row][p.Col])
	assert.Equal(t, Cell(0), tab[p.Row][p.Col])
}

// TestAugmentPath_GrowsMatching replays one augmentation by hand: a single
// star blocking a column, a prime chain around it, and verifies the flip
// gains exactly one star and clears all primes.
func TestAugmentPath_GrowsMatching(t *testing.T) {
	// Star at (0,0); primes at (1,0) (terminal is (1,0)'s row chain) and (0,1).
	marks := newMarks(2, 2)
	marks[0][0] = starred
	marks[0][1] = primed
	marks[1][0] = primed

	augmentPath(marks, Pos{Row: 1, Col: 0})

	assert.Equal(t, starred, marks[1][0], "terminal prime becomes a star")
	assert.Equal(t, starred, marks[0][1], "row 0's prime becomes its new star")
	assert.Equal(t, unmarked, marks[0][0], "old star is removed")
	for i := range marks {
		for j := range marks[i] {
			assert.NotEqual(t, primed, marks[i][j], "no primes survive augmentation")
		}
	}
}
