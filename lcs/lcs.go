package lcs

import (
	"fmt"

	"github.com/katalvlaran/stralign/flattable"
)

// Build computes the full LCS table for x and y.
//
// Stage 1 (Prepare): allocate the (len(x)+1)×(len(y)+1) flat table; row 0 and
// column 0 stay at their zero initialization.
// Stage 2 (Fill): apply the recurrence cell by cell — each cell depends only
// on its left, upper and upper-left neighbors, so a single row-major pass
// suffices.
// Stage 3 (Finalize): return the populated Table.
//
// Empty inputs are valid and yield an all-zero table.
//
// Complexity: O(len(x)·len(y)) time and memory.
func Build(x, y string) *Table {
	height, width := len(x)+1, len(y)+1

	cells, err := flattable.New[int](height, width)
	if err != nil {
		panic(err) // unreachable: dimensions are length+1, never negative
	}

	// Fill the inner table; the zeroed boundary row/column is already correct.
	var i, j int
	for i = 1; i < height; i++ {
		for j = 1; j < width; j++ {
			if x[i-1] == y[j-1] {
				// Characters match: extend the diagonal prefix solution.
				cells.Set(i, j, cells.At(i-1, j-1)+1)
			} else if up, left := cells.At(i-1, j), cells.At(i, j-1); up >= left {
				cells.Set(i, j, up)
			} else {
				cells.Set(i, j, left)
			}
		}
	}

	return &Table{x: x, y: y, cells: cells}
}

// Extract recovers one longest common subsequence of the prefixes X[0..i)
// and Y[0..j) from the populated table.
//
// Stage 1 (Validate): (i, j) must address a cell; otherwise ErrCoordOutOfRange.
// Stage 2 (Traceback): walk from (i, j) toward the zero boundary. On a
// character match, record the character and step diagonally. Otherwise step
// left only when the left neighbor is strictly greater than the upper one;
// ties step up. The walk terminates when the current cell is zero, which
// also covers i == 0 and j == 0.
// Stage 3 (Finalize): the characters were collected last-to-first; reverse
// in place and return.
//
// The traceback is iterative to keep stack depth constant; every coordinate
// it visits is in bounds by construction (a nonzero cell implies i, j >= 1).
//
// Complexity: O(i+j) time, O(LCS length) memory.
func (t *Table) Extract(i, j int) (string, error) {
	// Validate the caller-supplied entry coordinate.
	if !t.cells.InBounds(i, j) {
		return "", fmt.Errorf("lcs.Extract(%d,%d): %w", i, j, ErrCoordOutOfRange)
	}

	// Collect matched characters walking backward from (i, j).
	seq := make([]byte, 0, t.cells.At(i, j))
	for t.cells.At(i, j) != 0 {
		if t.x[i-1] == t.y[j-1] {
			seq = append(seq, t.x[i-1]) // common character, recorded in reverse
			i--
			j--
		} else if t.cells.At(i, j-1) > t.cells.At(i-1, j) {
			j-- // left neighbor strictly longer
		} else {
			i-- // ties move up
		}
	}

	// Reverse in place: the walk produced the sequence back to front.
	for l, r := 0, len(seq)-1; l < r; l, r = l+1, r-1 {
		seq[l], seq[r] = seq[r], seq[l]
	}

	return string(seq), nil
}

// LCS builds the table for x and y and extracts one longest common
// subsequence of the full strings.
//
// Returns the populated table and the sequence. The terminal coordinate
// (len(x), len(y)) is in bounds by construction, so extraction cannot fail.
//
// Complexity: O(len(x)·len(y)) time and memory.
func LCS(x, y string) (*Table, string) {
	t := Build(x, y)

	seq, err := t.Extract(len(x), len(y))
	if err != nil {
		panic(err) // unreachable: terminal coordinate is always in bounds
	}

	return t, seq
}
