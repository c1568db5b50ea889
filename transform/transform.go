package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stralign/flattable"
)

// Build computes the full cost and operation tables for transforming x into
// y under the given cost model.
//
// Stage 1 (Prepare): allocate the parallel (len(x)+1)×(len(y)+1) tables;
// seed (0,0) with zero cost and the NoOp sentinel.
// Stage 2 (Boundary): column 0 is pure deletion of x's prefix, row 0 pure
// insertion of y's prefix.
// Stage 3 (Fill): for every inner cell evaluate the diagonal candidate
// (Copy on match, Replace otherwise), then Delete from above, then Insert
// from the left. A later candidate overrides only when strictly cheaper, so
// ties keep the earlier one: diagonal, then delete, then insert.
// Stage 4 (Finalize): return the populated Table.
//
// Empty inputs are valid: an empty x makes every script pure inserts, an
// empty y pure deletes.
//
// Complexity: O(len(x)·len(y)) time and memory.
func Build(x, y string, costs Costs) *Table {
	height, width := len(x)+1, len(y)+1

	cost, err := flattable.New[int](height, width)
	if err != nil {
		panic(err) // unreachable: dimensions are length+1, never negative
	}
	op, err := flattable.New[Operation](height, width)
	if err != nil {
		panic(err) // unreachable, as above
	}

	// Origin: nothing transformed into nothing.
	op.Set(0, 0, Operation{Kind: NoOp, Char: NoOpChar})

	// Left column: delete the first i characters of x.
	var i, j int
	for i = 1; i < height; i++ {
		cost.Set(i, 0, i*costs.Delete)
		op.Set(i, 0, Operation{Kind: Delete, Char: x[i-1]})
	}

	// Top row: insert the first j characters of y.
	for j = 1; j < width; j++ {
		cost.Set(0, j, j*costs.Insert)
		op.Set(0, j, Operation{Kind: Insert, Char: y[j-1]})
	}

	// Inner cells: pick the cheapest of the three candidates, recording the
	// operation that achieved the stored minimum.
	var best int
	for i = 1; i < height; i++ {
		for j = 1; j < width; j++ {
			// Diagonal candidate: Copy on a character match, Replace otherwise.
			if x[i-1] == y[j-1] {
				best = cost.At(i-1, j-1) + costs.Copy
				op.Set(i, j, Operation{Kind: Copy, Char: y[j-1]})
			} else {
				best = cost.At(i-1, j-1) + costs.Replace
				op.Set(i, j, Operation{Kind: Replace, Char: y[j-1]})
			}
			// Delete candidate overrides only when strictly cheaper.
			if c := cost.At(i-1, j) + costs.Delete; c < best {
				best = c
				op.Set(i, j, Operation{Kind: Delete, Char: x[i-1]})
			}
			// Insert candidate, same strict rule.
			if c := cost.At(i, j-1) + costs.Insert; c < best {
				best = c
				op.Set(i, j, Operation{Kind: Insert, Char: y[j-1]})
			}
			cost.Set(i, j, best)
		}
	}

	return &Table{x: x, y: y, costs: costs, cost: cost, op: op}
}

// Extract recovers the minimum-cost operation script transforming X[0..i)
// into Y[0..j) from the populated table.
//
// Stage 1 (Validate): (i, j) must address a cell; otherwise ErrCoordOutOfRange.
// Stage 2 (Traceback): follow each cell's recorded operation to its
// predecessor — Copy/Replace to (i-1,j-1), Delete to (i-1,j), Insert to
// (i,j-1) — until the NoOp sentinel at the origin. Every visited coordinate
// is in bounds by construction: boundary cells only ever point further along
// their own row or column toward (0,0).
// Stage 3 (Finalize): the walk collects operations latest first; reverse in
// place so the script runs earliest edit first, with the NoOp sentinel at
// index 0.
//
// The traceback is iterative to keep stack depth constant.
//
// Complexity: O(i+j) time and memory.
func (t *Table) Extract(i, j int) ([]Operation, error) {
	// Validate the caller-supplied entry coordinate.
	if !t.op.InBounds(i, j) {
		return nil, fmt.Errorf("transform.Extract(%d,%d): %w", i, j, ErrCoordOutOfRange)
	}

	script := make([]Operation, 0, i+j+1)
	for {
		o := t.op.At(i, j)
		script = append(script, o)

		switch o.Kind {
		case NoOp:
			// Origin reached; the script is complete.
			// Reverse in place: collected latest-to-earliest.
			for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
				script[l], script[r] = script[r], script[l]
			}

			return script, nil
		case Copy, Replace:
			i--
			j--
		case Delete:
			i--
		case Insert:
			j--
		}
	}
}

// Apply deterministically replays an edit script against the source string x.
//
// The script is consumed front to back, earliest edit first — the order
// Extract produces. A cursor advances through x: Copy emits the character
// under the cursor, Replace emits the operation's character, both advancing
// the cursor; Delete advances without emitting; Insert emits without
// advancing; NoOp is inert.
//
// Complexity: O(len(script)) time, O(len(result)) memory.
func Apply(x string, script []Operation) string {
	out := make([]byte, 0, len(script))
	pos := 0 // cursor into x

	for _, o := range script {
		switch o.Kind {
		case Copy:
			out = append(out, x[pos])
			pos++
		case Replace:
			out = append(out, o.Char)
			pos++
		case Insert:
			out = append(out, o.Char)
		case Delete:
			pos++
		case NoOp:
			// inert
		}
	}

	return string(out)
}

// Transform builds the tables for x and y, extracts the minimum-cost script,
// applies it, and verifies the round trip.
//
// Returns the table, the script (earliest edit first, NoOp sentinel at index
// 0), and the reconstructed string. If the reconstruction does not equal y,
// Transform returns ErrIntegrity: that can only mean a defect in table
// construction or traceback, and is surfaced rather than corrected.
//
// Complexity: O(len(x)·len(y)) time and memory.
func Transform(x, y string, costs Costs) (*Table, []Operation, string, error) {
	t := Build(x, y, costs)

	script, err := t.Extract(len(x), len(y))
	if err != nil {
		panic(err) // unreachable: terminal coordinate is always in bounds
	}

	z := Apply(x, script)
	if z != y {
		return t, script, z, fmt.Errorf("transform: applying script to %q produced %q, want %q: %w", x, z, y, ErrIntegrity)
	}

	return t, script, z, nil
}

// String renders the combined cost/op table row by row for debugging, one
// "cost tag:char" entry per cell. Presentation only; not part of the
// numeric contract.
func (t *Table) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < t.Rows(); i++ {
		for j = 0; j < t.Cols(); j++ {
			fmt.Fprintf(&sb, "%7d %s", t.cost.At(i, j), t.op.At(i, j))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
