package kuhn

// mark is the 3-valued tag carried by each cell during the search.
// Stars denote the current partial matching (at most one per row and per
// column); primes are transient and live only within one search phase.
type mark uint8

const (
	unmarked mark = iota
	starred
	primed
)

// newMarks allocates an n×m mark matrix, all unmarked.
func newMarks(n, m int) [][]mark {
	marks := make([][]mark, n)
	for i := range marks {
		marks[i] = make([]mark, m)
	}

	return marks
}

// initialStars greedily seeds the partial matching: scanning row-major, a
// zero cell is starred iff neither its row nor its column holds a star yet.
//
// Complexity: O(n·m) time, O(n+m) scratch.
func initialStars(t [][]Cell, marks [][]mark) {
	rowUsed := make([]bool, len(t))
	colUsed := make([]bool, len(t[0]))

	for i := range t {
		for j, v := range t[i] {
			if v == 0 && !rowUsed[i] && !colUsed[j] {
				marks[i][j] = starred
				rowUsed[i] = true
				colUsed[j] = true
			}
		}
	}
}

// starredColumns recomputes column coverage from star positions alone,
// writing it into colCov, and returns the number of covered columns. The
// matching is complete when the count equals n.
//
// The cover vectors are repurposed as scratch state inside a search phase,
// so this completion check must never trust their incoming contents; it is
// kept as a separate helper for exactly that reason. Its output doubles as
// the initial column cover for the next search phase (stars sit on covered
// columns when a phase begins).
//
// Complexity: O(n·m) time, no allocations.
func starredColumns(marks [][]mark, colCov []bool) int {
	for j := range colCov {
		colCov[j] = false
	}

	count := 0
	for i := range marks {
		for j, mk := range marks[i] {
			if mk == starred && !colCov[j] {
				colCov[j] = true
				count++
			}
		}
	}

	return count
}

// assignment extracts the final matching: the starred position of each row,
// in ascending row order.
//
// Complexity: O(n·m) time, O(n) memory.
func assignment(marks [][]mark) []Pos {
	pairs := make([]Pos, 0, len(marks))
	for i := range marks {
		for j, mk := range marks[i] {
			if mk == starred {
				pairs = append(pairs, Pos{Row: i, Col: j})
				break
			}
		}
	}

	return pairs
}
