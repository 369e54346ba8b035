// Package table supplies cost tables to the matching engine.
//
// Two sources are provided:
//
//   - Random — deterministic pseudo-random tables for demos and benchmarks.
//     Same seed ⇒ identical table across platforms; seed 0 selects a fixed
//     default seed, never a time-based one.
//   - Read / ReadSized — whitespace-separated integers from a text stream,
//     row-major, with the dimensions passed by the caller (Read) or taken
//     from a leading "n m" header (ReadSized).
//
// The produced tables are freshly allocated and owned by the caller; they
// can be handed to kuhn.Match in either copy or in-place mode.
package table
