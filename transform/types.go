package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stralign/flattable"
)

// Sentinel errors returned by the edit-transform engine.
var (
	// ErrCoordOutOfRange indicates that a traceback entry point was called
	// with a coordinate outside the table's height or width.
	ErrCoordOutOfRange = errors.New("transform: coordinate out of table range")

	// ErrIntegrity indicates that applying an extracted script to the source
	// string did not reproduce the target. This is a defect in table
	// construction or traceback, never a property of valid input, and is
	// surfaced as a hard failure rather than silently corrected.
	ErrIntegrity = errors.New("transform: applied script does not reproduce target")
)

// OpKind enumerates the closed set of edit operations.
// All consumers (traceback, Apply, rendering) switch exhaustively over it.
type OpKind int

const (
	// Copy emits one source character unchanged, consuming it.
	Copy OpKind = iota

	// Replace consumes one source character and emits the target's.
	Replace

	// Insert emits one target character without consuming the source.
	Insert

	// Delete consumes one source character and emits nothing.
	Delete

	// NoOp is the inert sentinel recorded at table origin (0,0).
	NoOp
)

// NoOpChar is the placeholder character carried by NoOp operations.
const NoOpChar byte = '-'

// String returns the short tag used in table dumps and script rendering.
func (k OpKind) String() string {
	switch k {
	case Copy:
		return "cpy"
	case Replace:
		return "rep"
	case Insert:
		return "ins"
	case Delete:
		return "del"
	case NoOp:
		return "---"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Operation is one step of an edit script: an operation kind plus the single
// character it applies to the output. NoOp carries NoOpChar.
type Operation struct {
	Kind OpKind
	Char byte
}

// String renders the operation as tag:char, e.g. "cpy:C".
func (o Operation) String() string {
	return fmt.Sprintf("%s:%c", o.Kind, o.Char)
}

// Costs holds the four signed unit costs of the edit model.
// Copy may be negative — a reward biasing the optimum toward preserving
// matched characters.
type Costs struct {
	Copy    int
	Replace int
	Delete  int
	Insert  int
}

// Table holds the fully populated cost and operation tables for a pair of
// strings under a cost model.
//
// Both tables have height len(X)+1 and width len(Y)+1; cost cell (i, j) is
// the minimum cost of transforming X[0..i) into Y[0..j), and the op cell
// records the last operation of one such cheapest transformation. A Table is
// immutable once built and owned by the call that built it.
type Table struct {
	x, y  string
	costs Costs
	cost  *flattable.Table[int]       // minimum transform cost per prefix pair
	op    *flattable.Table[Operation] // last operation achieving that cost
}

// X returns the source string the table was built from.
func (t *Table) X() string { return t.x }

// Y returns the target string the table was built from.
func (t *Table) Y() string { return t.y }

// Costs returns the cost model the table was built with.
func (t *Table) Costs() Costs { return t.costs }

// Rows returns the table height, len(X)+1.
func (t *Table) Rows() int { return t.cost.Rows() }

// Cols returns the table width, len(Y)+1.
func (t *Table) Cols() int { return t.cost.Cols() }

// CostAt returns the minimum cost of transforming X[0..i) into Y[0..j).
// Out-of-range coordinates panic; see Extract for a checked entry point.
func (t *Table) CostAt(i, j int) int { return t.cost.At(i, j) }

// OpAt returns the operation recorded for cell (i, j).
func (t *Table) OpAt(i, j int) Operation { return t.op.At(i, j) }

// Cost returns the minimum cost of transforming all of X into all of Y,
// the value at (len(X), len(Y)).
func (t *Table) Cost() int { return t.cost.At(len(t.x), len(t.y)) }
