package kuhn

import "errors"

// Sentinel errors returned by Match. All are precondition violations:
// they are reported before any mutation of the input table.
var (
	// ErrEmptyTable indicates the table has no rows or no columns.
	ErrEmptyTable = errors.New("kuhn: table must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("kuhn: all rows must have the same length")

	// ErrRowsExceedCols indicates n > m; a complete one-column-per-row
	// matching cannot exist. Callers wanting the opposite orientation must
	// transpose the table first.
	ErrRowsExceedCols = errors.New("kuhn: table must have no more rows than columns")
)

// Cell is the numeric type of table entries. It is deliberately wide:
// reduction and dual updates repeatedly subtract and add row/column minima,
// and the engine does not guard against overflow beyond the width of this
// type (caller's contract, see package doc).
type Cell int64

// Pos identifies a table cell by row and column.
type Pos struct {
	Row int
	Col int
}

// Options configures Match.
//
// InPlace  – mutate the caller's table (destructive reduction) instead of
//
//	working on a private copy. Saves one n·m allocation.
//
// Maximize – maximize total cost via sign inversion. Always works on a
//
//	private copy so the caller's table never holds negated values.
type Options struct {
	InPlace  bool // solve directly on the caller's table
	Maximize bool // negate a working copy to maximize instead of minimize
}

// Option represents a functional option for configuring Match.
type Option func(*Options)

// WithInPlace makes Match solve directly on the caller's table. The table
// is destroyed in the process: after Match returns it holds the fully
// reduced values, not the original costs. Retain a copy if the original
// values are needed (for example to compute Total).
func WithInPlace() Option {
	return func(o *Options) {
		o.InPlace = true
	}
}

// WithMaximize makes Match maximize total cost instead of minimizing, by
// negating a working copy of the table. Implies copy mode: the caller's
// table is never mutated, even when WithInPlace is also given.
func WithMaximize() Option {
	return func(o *Options) {
		o.Maximize = true
	}
}

// DefaultOptions returns the Options used when no functional options are
// passed: copy mode (input preserved), minimization.
func DefaultOptions() Options {
	return Options{
		InPlace:  false,
		Maximize: false,
	}
}
