package match

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stralign/flattable"
)

// Build constructs the automaton's transition table for pattern over the
// alphabet observed in text.
//
// Stage 1 (Validate): len(pattern) must not exceed len(text); otherwise
// ErrPatternTooLong, before any construction.
// Stage 2 (Alphabet): index every distinct character of the text in
// first-occurrence order. Characters absent from the text are never queried
// during a scan of that text, so they need no columns.
// Stage 3 (Fill): for every (state, character) pair find the next state by
// direct substring comparison — the longest pattern prefix that is a suffix
// of the state's matched prefix extended by the character.
//
// Complexity: O(m³·k) worst-case time (m = pattern length, k = alphabet
// size), O(m·k) memory. Run once per (text, pattern) pair, not per scan.
func Build(text, pattern string) (*StateTable, error) {
	// A pattern longer than the text can never occur in it.
	if len(pattern) > len(text) {
		return nil, fmt.Errorf("match.Build: pattern length %d exceeds text length %d: %w", len(pattern), len(text), ErrPatternTooLong)
	}

	// Index the text's distinct characters in first-occurrence order.
	columns := make(map[byte]int)
	alphabet := make([]byte, 0)
	var i int
	for i = 0; i < len(text); i++ {
		if _, seen := columns[text[i]]; !seen {
			columns[text[i]] = len(alphabet)
			alphabet = append(alphabet, text[i])
		}
	}

	m := len(pattern)
	next, err := flattable.New[int](m+1, len(alphabet))
	if err != nil {
		panic(err) // unreachable: m+1 >= 1 and the alphabet is never negative
	}

	// Fill the table state by state, character by character.
	var state, col int
	for state = 0; state <= m; state++ {
		for col = 0; col < len(alphabet); col++ {
			next.Set(state, col, nextStateOf(pattern, state, alphabet[col]))
		}
	}

	return &StateTable{pattern: pattern, alphabet: alphabet, columns: columns, next: next}, nil
}

// nextStateOf finds the automaton transition for (state, c): the largest
// i ≤ min(state+1, m) such that pattern[0..i) is a suffix of the matched
// prefix pattern[0..state) extended by c, by direct substring comparison.
func nextStateOf(pattern string, state int, c byte) int {
	// The matched prefix extended by the scanned character.
	extended := pattern[:state] + string(c)

	// A transition can never exceed the pattern length.
	i := len(extended)
	if i > len(pattern) {
		i = len(pattern)
	}

	// Decrease i until the i-prefix of the pattern suffixes the extension.
	for ; i > 0; i-- {
		if pattern[:i] == extended[len(extended)-i:] {
			break
		}
	}

	return i
}

// NextState returns the state reached from state on character c.
// Characters outside the indexed alphabet reset to state 0: they cannot
// extend any pattern prefix, and the rule keeps Scan total.
//
// Complexity: O(1).
func (t *StateTable) NextState(state int, c byte) int {
	col, ok := t.columns[c]
	if !ok {
		return 0
	}

	return t.next.At(state, col)
}

// Scan walks text once through the automaton and reports every shift — the
// starting index of each pattern occurrence — in ascending order.
//
// The current state starts at 0; each character transitions via the table,
// and reaching the accept state m records shift position−m+1. The text
// should be the one the table was built from: the alphabet guarantee only
// covers its characters (others reset to state 0).
//
// Complexity: O(len(text)) time, one table lookup per character.
func (t *StateTable) Scan(text string) []int {
	var shifts []int
	state := 0
	m := len(t.pattern)

	var i int
	for i = 0; i < len(text); i++ {
		state = t.NextState(state, text[i])
		if state == m {
			shifts = append(shifts, i+1-m) // occurrence ends here, starts m-1 earlier
		}
	}

	return shifts
}

// Find builds the automaton for (text, pattern) and scans the text,
// returning the transition table and every occurrence shift in order.
// Fails with ErrPatternTooLong if the pattern exceeds the text.
//
// Complexity: O(m³·k) build + O(len(text)) scan.
func Find(text, pattern string) (*StateTable, []int, error) {
	t, err := Build(text, pattern)
	if err != nil {
		return nil, nil, err
	}

	return t, t.Scan(text), nil
}

// String renders the transition table with its alphabet header for
// debugging. Presentation only; not part of the matching contract.
func (t *StateTable) String() string {
	var sb strings.Builder

	sb.WriteString("      ")
	for _, c := range t.alphabet {
		fmt.Fprintf(&sb, "%4c", c)
	}
	sb.WriteByte('\n')

	var state, col int
	for state = 0; state < t.next.Rows(); state++ {
		fmt.Fprintf(&sb, "%4d |", state)
		for col = 0; col < t.next.Cols(); col++ {
			fmt.Fprintf(&sb, "%4d", t.next.At(state, col))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
