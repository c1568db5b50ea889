// Package lcs computes the Longest Common Subsequence of two strings via
// full-matrix dynamic programming, with traceback to one maximal sequence.
//
// 🚀 What is the LCS?
//
//	A maximum-length sequence of characters appearing in the same relative
//	order in both inputs (not necessarily contiguous). It is the backbone of
//	diffing, sequence alignment and similarity scoring.
//
// Algorithm Outline (Full-Matrix):
//  1. Let m = len(X), n = len(Y). Allocate an (m+1)×(n+1) table L.
//  2. Initialize: row 0 and column 0 are all zero.
//  3. For i = 1..m, j = 1..n:
//     L[i][j] = L[i-1][j-1] + 1            if X[i-1] == Y[j-1]
//     L[i][j] = max(L[i-1][j], L[i][j-1])  otherwise
//  4. L[m][n] is the LCS length.
//  5. Traceback from (m,n): on a character match step diagonally and record
//     the character; otherwise step left when L[i][j-1] is strictly greater
//     than L[i-1][j], else step up. Ties step up — the returned sequence is
//     one deterministic choice among possibly many maximal sequences.
//
// The traceback is an explicit loop, not recursion: recursion depth would
// grow with m+n and exhaust the stack on large inputs.
//
// Worked example (X = "CATCGA", Y = "GTACCGTCA"):
//
//	         G  T  A  C  C  G  T  C  A
//	      0  0  0  0  0  0  0  0  0  0
//	   C  0  0  0  0  1  1  1  1  1  1
//	   A  0  0  0  1  1  1  1  1  1  2
//	   T  0  0  1  1  1  1  1  2  2  2
//	   C  0  0  1  1  2  2  2  2  3  3
//	   G  0  1  1  1  2  2  3  3  3  3
//	   A  0  1  1  2  2  2  3  3  3  4
//
// L[6][9] = 4, and traceback yields "CTCA".
//
// Complexity:
//
//	Time   = O(m·n) build, O(m+n) traceback
//	Memory = O(m·n)
//
// Errors:
//   - ErrCoordOutOfRange — Extract called with (i, j) outside the table.
package lcs
