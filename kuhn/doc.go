// Package kuhn computes minimum-cost assignments on dense rectangular
// integer cost tables using the O(n³) primal-dual Hungarian algorithm
// (Kuhn–Munkres).
//
// Given an n×m table with n ≤ m, Match returns exactly n (row, column)
// pairs, one per row on pairwise-distinct columns, whose total cost is
// minimal. The result is exact; there is no approximation and no internal
// randomness.
//
// Algorithm Outline:
//  1. Row reduction: subtract each row's minimum, creating structural zeros
//     without changing the optimal assignment.
//  2. Initial starring: greedily star zeros on distinct rows and columns —
//     the seed partial matching.
//  3. Completion check: the matching is complete when the columns holding
//     stars number n. Coverage is recomputed from star positions, never
//     read from the scratch cover vectors.
//  4. Prime search: pop uncovered zeros from a bitset.BitSet zero locator,
//     priming each. A prime on a star-free row ends an augmenting path; a
//     prime on a starred row flips covers and patches locator membership
//     incrementally. When no uncovered zero remains, a dual adjustment
//     manufactures one.
//  5. Augmentation: flip stars and primes along the alternating path,
//     growing the matching by one row, then clear primes and covers.
//
// Mutation contract:
//
//	Match works on a private copy by default, leaving the caller's table
//	untouched. WithInPlace opts into the destructive zero-copy path: the
//	table is reduced and dual-adjusted in place, and afterwards holds the
//	fully reduced values (re-solving it yields a total reduced cost of 0).
//
// Errors (sentinel):
//
//	– ErrEmptyTable      if the table has no rows or no columns.
//	– ErrNonRectangular  if rows differ in length.
//	– ErrRowsExceedCols  if n > m (transpose first).
//
// Complexity:
//
//	– Time:  O(n³) for n ≈ m; each phase augments the matching by one row,
//	  and each dual adjustment creates at least one new uncovered zero.
//	– Space: O(n·m) for the mark matrix and the zero locator.
//
// Concurrency: a Match call owns all of its state; run independent calls
// on independent tables for parallelism.
//
// Example usage:
//
//	pairs, err := kuhn.Match(table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("total cost:", kuhn.Total(table, pairs))
package kuhn
