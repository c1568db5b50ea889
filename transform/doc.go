// Package transform computes minimum-cost edit scripts between two strings
// under weighted copy, replace, delete and insert operations, with traceback
// and deterministic script application.
//
// 🚀 What is an edit transform?
//
//	The cheapest sequence of single-character operations converting a source
//	string X into a target string Y, where each operation kind carries its
//	own signed unit cost. A negative copy cost acts as a reward, biasing the
//	optimum toward preserving matched characters.
//
// Algorithm Outline (Full-Matrix):
//  1. Let m = len(X), n = len(Y). Allocate parallel (m+1)×(n+1) cost and
//     operation tables.
//  2. Initialize: cost[0][0] = 0 with a NoOp; column 0 is i·delete with
//     Delete ops; row 0 is j·insert with Insert ops.
//  3. For i = 1..m, j = 1..n evaluate three candidates in order:
//     diagonal — Copy (X[i-1] == Y[j-1]) or Replace, cost[i-1][j-1] + unit
//     up       — Delete, cost[i-1][j] + delete
//     left     — Insert, cost[i][j-1] + insert
//     A later candidate overrides only when strictly cheaper, so ties
//     resolve diagonal, then delete, then insert.
//  4. Traceback from (m,n) follows the recorded operation of each cell to
//     its predecessor, producing the script earliest edit first with the
//     NoOp sentinel of (0,0) at index 0.
//  5. Apply replays the script forward over X: Copy and Replace consume one
//     source character and emit one; Delete consumes silently; Insert emits
//     without consuming; NoOp is inert.
//
// Worked example (X = "ACAAGC", Y = "CCGT", copy=-1 replace=1 delete=2
// insert=2):
//
//	               C      C      G      T
//	       0 -    2 I    4 I    6 I    8 I
//	   A   2 D    1 R    3 R    5 R    7 R
//	   C   4 D    1 C    0 C    2 I    4 I
//	   A   6 D    3 D    2 R    1 R    3 R
//	   A   8 D    5 D    4 R    3 R    2 R
//	   G  10 D    7 D    6 R    3 C    4 R
//	   C  12 D    9 C    6 C    5 D    4 R
//
// The minimum transform cost is cost[6][4] = 4, and applying the extracted
// script to X reproduces Y exactly — Transform enforces that round trip and
// fails hard if it ever breaks, since a mismatch can only mean a defect in
// table construction or traceback, never bad input.
//
// Complexity:
//
//	Time   = O(m·n) build, O(m+n) traceback and apply
//	Memory = O(m·n)
//
// Errors:
//   - ErrCoordOutOfRange — Extract called with (i, j) outside the table.
//   - ErrIntegrity       — applied script failed to reproduce the target.
package transform
