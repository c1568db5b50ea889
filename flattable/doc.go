// Package flattable provides the flat row-major 2-D table that backs every
// engine in stralign (LCS, edit-transform, exact-match automaton).
//
// 🚀 What is a flat table?
//
//	A table of height H and width W stored as a single contiguous slice of
//	H·W cells, with cell (row i, col j) mapped to linear index j + i·W.
//	One allocation, predictable layout, cache-friendly row scans — without
//	needing a native multi-dimensional array type.
//
// ✨ Key properties:
//   - Index(i, j) = j + i·W is a bijection onto [0, H·W)
//   - At/Set assert bounds: an out-of-range coordinate is a caller
//     programming error, never a recoverable condition
//   - InBounds lets engine entry points validate caller-supplied
//     coordinates before touching the table
//   - zero-sized tables are legal (an automaton over empty text has
//     width 0)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stralign/flattable"
//
//	t, err := flattable.New[int](rows, cols)
//	if err != nil {
//	  // handle ErrInvalidDimensions
//	}
//	t.Set(i, j, v)
//	v := t.At(i, j)
//
// Performance:
//
//   - Time:   O(1) per access
//   - Memory: O(H·W) for the backing slice
package flattable
