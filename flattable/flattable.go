package flattable

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions indicates that requested table dimensions are negative.
var ErrInvalidDimensions = errors.New("flattable: dimensions must be >= 0")

// Table is a row-major 2-D table of V values.
// rows is the height, cols the width, and cells holds rows*cols elements in
// row-major order; cell (i, j) lives at linear index j + i*cols.
type Table[V any] struct {
	rows, cols int // table height and width
	cells      []V // flat backing storage, length == rows*cols
}

// New creates a rows×cols Table with every cell set to the zero value of V.
// Stage 1 (Validate): ensure rows and cols >= 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Table or ErrInvalidDimensions.
// Complexity: O(rows*cols) time and memory.
func New[V any](rows, cols int) (*Table[V], error) {
	// Validate dimensions; zero is legal (a table may be empty along one axis)
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("flattable.New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// Allocate flat slice
	cells := make([]V, rows*cols)

	// Return initialized Table
	return &Table[V]{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the table height.
// Complexity: O(1).
func (t *Table[V]) Rows() int {
	return t.rows // return stored row count
}

// Cols returns the table width.
// Complexity: O(1).
func (t *Table[V]) Cols() int {
	return t.cols // return stored column count
}

// Len returns the total number of cells, rows*cols.
// Complexity: O(1).
func (t *Table[V]) Len() int {
	return len(t.cells)
}

// InBounds reports whether (row, col) addresses a cell of the table.
// Complexity: O(1).
func (t *Table[V]) InBounds(row, col int) bool {
	return row >= 0 && row < t.rows && col >= 0 && col < t.cols
}

// Index computes the flat index j + i*cols for cell (row, col).
// The mapping is a bijection onto [0, rows*cols).
// An out-of-range coordinate is a programming error and panics.
// Complexity: O(1).
func (t *Table[V]) Index(row, col int) int {
	if !t.InBounds(row, col) {
		panic(fmt.Sprintf("flattable: index (%d,%d) out of bounds for %dx%d table", row, col, t.rows, t.cols))
	}

	// Compute flat offset
	return col + row*t.cols
}

// At retrieves the element at (row, col).
// Bounds are asserted via Index; out-of-range access panics.
// Complexity: O(1).
func (t *Table[V]) At(row, col int) V {
	return t.cells[t.Index(row, col)]
}

// Set assigns value v at (row, col).
// Bounds are asserted via Index; out-of-range access panics.
// Complexity: O(1).
func (t *Table[V]) Set(row, col int, v V) {
	t.cells[t.Index(row, col)] = v
}

// Clone returns a deep copy of the Table.
// Complexity: O(rows*cols) time and memory.
func (t *Table[V]) Clone() *Table[V] {
	// Allocate new slice for cell copy
	copied := make([]V, len(t.cells))
	// Copy all elements into new slice
	copy(copied, t.cells)

	return &Table[V]{rows: t.rows, cols: t.cols, cells: copied}
}

// String implements fmt.Stringer for easy debugging.
// The rendering is presentation-only and carries no contract.
// Complexity: O(rows*cols) for string construction.
func (t *Table[V]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < t.rows; i++ { // iterate over rows
		sb.WriteByte('[')           // open row
		for j = 0; j < t.cols; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%v", t.cells[j+i*t.cols])
			if j < t.cols-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
