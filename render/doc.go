// Package render draws a cost table as fixed-width text for terminal
// inspection, with the cells of an assignment visually distinguished.
//
// Rendering consumes engine output but never mutates it; pass the table
// retained before an in-place solve to show original costs. With a nil
// assignment the bare table is printed, which makes the same call usable
// for "Input:" and "Output:" views.
package render
