// Package match implements exact substring matching with a precomputed
// deterministic finite-automaton transition table.
//
// 🚀 How does it work?
//
//	The automaton has states 0..m, where m is the pattern length: state s
//	means "the last s scanned characters equal the pattern's first s". The
//	transition for (state s, character c) is the length of the longest
//	pattern prefix that is simultaneously a suffix of pattern[0..s) extended
//	by c. State m is the accepting state: the pattern ends exactly here.
//
// Algorithm Outline:
//  1. Index the alphabet — the distinct characters observed in the TEXT
//     (not the pattern alone), in first-occurrence order. Characters absent
//     from the text are never queried and need not be represented.
//  2. Build the (m+1)×k transition table by direct substring comparison for
//     every (state, character) pair: start at min(s+1, m) and decrease
//     until pattern[0..i) is a suffix of pattern[0..s)+c. Worst-case cubic
//     in pattern length per alphabet character — paid once per
//     (text, pattern) pair, not per scan.
//  3. Scan the text once from state 0, transitioning via the table on each
//     character; every arrival at state m records the shift
//     position − m + 1 where the occurrence begins.
//
// Worked example (text "GTAACAGTAAACG", pattern "AAC"):
//
//	the scan reaches the accept state after positions 5 and 11, reporting
//	shifts [3, 9].
//
// Pattern length must not exceed text length; Build fails with
// ErrPatternTooLong before any construction.
//
// Complexity:
//
//	Build = O(m³·k) worst case (m = pattern length, k = distinct text chars)
//	Scan  = O(n) for text of length n, one table lookup per character
//
// Errors:
//   - ErrPatternTooLong — pattern longer than the text.
package match
