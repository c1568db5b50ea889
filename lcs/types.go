package lcs

import (
	"errors"

	"github.com/katalvlaran/stralign/flattable"
)

// Sentinel errors returned by the LCS engine.
var (
	// ErrCoordOutOfRange indicates that a traceback entry point was called
	// with a coordinate outside the table's height or width.
	ErrCoordOutOfRange = errors.New("lcs: coordinate out of table range")
)

// Table holds a fully populated LCS table for a pair of strings.
//
// The table has height len(X)+1 and width len(Y)+1; cell (i, j) is the LCS
// length of the prefixes X[0..i) and Y[0..j). Row 0 and column 0 are zero.
// A Table is immutable once built and owned by the call that built it.
type Table struct {
	x, y  string                // the strings the table was built from
	cells *flattable.Table[int] // (len(x)+1)×(len(y)+1) length table
}

// X returns the first input string the table was built from.
func (t *Table) X() string { return t.x }

// Y returns the second input string the table was built from.
func (t *Table) Y() string { return t.y }

// Rows returns the table height, len(X)+1.
func (t *Table) Rows() int { return t.cells.Rows() }

// Cols returns the table width, len(Y)+1.
func (t *Table) Cols() int { return t.cells.Cols() }

// At returns the LCS length of the prefixes X[0..i) and Y[0..j).
// Out-of-range coordinates panic; see Extract for a checked entry point.
func (t *Table) At(i, j int) int { return t.cells.At(i, j) }

// Length returns the LCS length of the full strings, the value at
// (len(X), len(Y)).
func (t *Table) Length() int { return t.cells.At(len(t.x), len(t.y)) }

// String renders the length table row by row for debugging.
// Presentation only; not part of the numeric contract.
func (t *Table) String() string { return t.cells.String() }
