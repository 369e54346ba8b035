// Package hungarian solves the rectangular assignment problem exactly:
// given an n×m cost table, pick one cell per row on pairwise-distinct
// columns so that the total cost is minimal.
//
// 🚀 What is hungarian?
//
//	An O(n³) primal-dual implementation of the Hungarian algorithm
//	(Kuhn–Munkres), built for dense integer cost tables of up to a few
//	thousand rows and columns. Typical uses:
//	  • Task → worker dispatch with per-pair costs
//	  • Detection → track association in sensor pipelines
//	  • Seat/slot allocation and other bipartite matchings
//
// ✨ Why choose hungarian?
//
//   - Exact – always the optimal matching, never a heuristic
//   - Fast in practice – a linked-limb bit set keeps the zero search
//     sub-quadratic between cover changes
//   - Predictable – single-threaded, allocation-light, no hidden state
//   - Honest API – destructive and copying entry modes are explicit
//
// Everything is organized under four subpackages:
//
//	bitset/ — fixed-capacity bit set with O(1) insert, remove and "any member"
//	kuhn/   — the matching engine: Match, Total, options and sentinel errors
//	table/  — cost-table sources: deterministic random tables, text streams
//	render/ — terminal rendering of a table with its assignment highlighted
//
// Quick start:
//
//	pairs, err := kuhn.Match(table)         // table is [][]kuhn.Cell, n ≤ m
//	sum := kuhn.Total(table, pairs)         // cost under the original values
//
// A runnable demo lives in cmd/hungarian; see each package's example_test.go
// for focused usage.
//
//	go get github.com/katalvlaran/hungarian
package hungarian
