// Package stralign is a compact library of classic string-alignment and
// string-matching algorithms built on flat dynamic-programming tables.
//
// 🚀 What is stralign?
//
//	Three self-contained engines, each constructing a 2-D table over a flat
//	backing store and consuming it with a deterministic traceback or scan:
//	  • LCS: longest common subsequence with traceback to one maximal sequence
//	  • Edit transform: minimum-cost copy/replace/insert/delete script,
//	    with traceback and deterministic script application
//	  • Exact match: finite-automaton substring search over a precomputed
//	    transition table
//
// ✨ Why choose stralign?
//
//   - Deterministic – every tie-break is pinned down; same inputs, same output
//   - Pure Go – no cgo, no hidden deps, no global state
//   - Sequential & reentrant – each call owns its table; concurrent calls
//     with disjoint inputs need no locking
//   - Iterative tracebacks – constant stack depth even on 40k-character inputs
//
// Everything is organized under four subpackages:
//
//	flattable/ — the shared row-major flat 2-D table convention
//	lcs/       — longest-common-subsequence table + traceback
//	transform/ — weighted edit-transform tables, script extraction & replay
//	match/     — exact-match automaton construction + linear scan
//
// Quick ASCII example (LCS of CATCGA and GTACCGTCA):
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
//	the bottom-right cell is the LCS length, 4, and traceback yields "CTCA".
//
// The character model is single-byte: inputs are finite sequences of bytes,
// and empty strings are valid everywhere.
//
//	go get github.com/katalvlaran/stralign
package stralign
