package kuhn

// augmentPath grows the matching by one row. Starting from the terminal
// prime (which sits on a star-free row), it builds the alternating path
//
//	prime(r0,c0) → star(r1,c0) → prime(r1,c1) → star(r2,c1) → …
//
// ending when a column holds no star, then flips every cell on the path:
// stars become unmarked, primes become stars. All remaining primes are
// cleared afterwards; the caller resets both cover vectors.
//
// Every covered row holds exactly one prime when this runs, so rowPrime
// lookups on path rows always succeed.
//
// Complexity: O(n·m) time, O(n+m) memory.
func augmentPath(marks [][]mark, prime Pos) {
	n, m := len(marks), len(marks[0])

	// Column → star row and row → prime column indices for O(1) path steps.
	colStar := make([]int, m)
	rowPrime := make([]int, n)
	for j := range colStar {
		colStar[j] = -1
	}
	for i := range rowPrime {
		rowPrime[i] = -1
	}
	for i := range marks {
		for j, mk := range marks[i] {
			switch mk {
			case starred:
				colStar[j] = i
			case primed:
				rowPrime[i] = j
			}
		}
	}

	path := make([]Pos, 1, 2*n+1)
	path[0] = prime
	for {
		last := path[len(path)-1]
		row := colStar[last.Col]
		if row < 0 {
			break
		}
		path = append(path, Pos{Row: row, Col: last.Col})
		path = append(path, Pos{Row: row, Col: rowPrime[row]})
	}

	for _, p := range path {
		if marks[p.Row][p.Col] == starred {
			marks[p.Row][p.Col] = unmarked
		} else {
			marks[p.Row][p.Col] = starred
		}
	}

	for i := range marks {
		for j := range marks[i] {
			if marks[i][j] == primed {
				marks[i][j] = unmarked
			}
		}
	}
}
