package match

import (
	"errors"

	"github.com/katalvlaran/stralign/flattable"
)

// Sentinel errors returned by the exact-match automaton.
var (
	// ErrPatternTooLong indicates that the pattern is longer than the text,
	// so no occurrence is possible; Build refuses construction.
	ErrPatternTooLong = errors.New("match: pattern longer than text")
)

// StateTable is the precomputed transition table of the matching automaton
// for one (text, pattern) pair.
//
// States are 0..m inclusive (m = pattern length); the alphabet is the set of
// distinct characters observed in the text, indexed in first-occurrence
// order. The flat table maps (state, character column) to the next state in
// [0, m]. A StateTable is immutable once built.
type StateTable struct {
	pattern  string                // the pattern the automaton recognizes
	alphabet []byte                // column → character, text first-occurrence order
	columns  map[byte]int          // character → column
	next     *flattable.Table[int] // (m+1)×k next-state table
}

// Pattern returns the pattern the automaton was built for.
func (t *StateTable) Pattern() string { return t.pattern }

// States returns the number of automaton states, len(pattern)+1.
func (t *StateTable) States() int { return t.next.Rows() }

// Alphabet returns the indexed characters in column order.
// The returned slice is a copy; the table stays immutable.
func (t *StateTable) Alphabet() []byte {
	out := make([]byte, len(t.alphabet))
	copy(out, t.alphabet)

	return out
}
