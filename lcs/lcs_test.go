package lcs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stralign/lcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isSubsequence reports whether sub appears in s in order (not necessarily
// contiguously).
func isSubsequence(sub, s string) bool {
	k := 0
	for i := 0; i < len(s) && k < len(sub); i++ {
		if s[i] == sub[k] {
			k++
		}
	}

	return k == len(sub)
}

// refLength is an independent recursive LCS length used to cross-check the
// table on small inputs.
func refLength(x, y string) int {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	if x[len(x)-1] == y[len(y)-1] {
		return refLength(x[:len(x)-1], y[:len(y)-1]) + 1
	}
	a := refLength(x[:len(x)-1], y)
	if b := refLength(x, y[:len(y)-1]); b > a {
		return b
	}

	return a
}

// TestLCS_BookExample checks the worked example: the table's terminal cell
// must be 4 and the returned sequence a common subsequence of length 4.
func TestLCS_BookExample(t *testing.T) {
	table, seq := lcs.LCS("CATCGA", "GTACCGTCA")

	assert.Equal(t, 4, table.At(6, 9), "terminal cell must hold the LCS length")
	assert.Equal(t, 4, table.Length())
	assert.Len(t, seq, 4, "sequence length must equal the table value")
	assert.True(t, isSubsequence(seq, "CATCGA"), "sequence must be a subsequence of X")
	assert.True(t, isSubsequence(seq, "GTACCGTCA"), "sequence must be a subsequence of Y")

	// The up-on-tie traceback makes the choice deterministic.
	assert.Equal(t, "CTCA", seq)
}

// TestLCS_EmptyInputs verifies the all-zero table and empty sequence for
// empty operands.
func TestLCS_EmptyInputs(t *testing.T) {
	table, seq := lcs.LCS("", "")
	assert.Equal(t, 0, table.Length())
	assert.Empty(t, seq)
	assert.Equal(t, 1, table.Rows(), "empty strings still get the boundary row")
	assert.Equal(t, 1, table.Cols())

	_, seq = lcs.LCS("ABC", "")
	assert.Empty(t, seq, "no common subsequence with an empty operand")

	table, seq = lcs.LCS("", "ABC")
	assert.Empty(t, seq)
	assert.Equal(t, 0, table.At(0, 3), "boundary row stays zero")
}

// TestLCS_IdenticalStrings verifies that X == Y yields X itself.
func TestLCS_IdenticalStrings(t *testing.T) {
	table, seq := lcs.LCS("GATTACA", "GATTACA")
	assert.Equal(t, "GATTACA", seq)
	assert.Equal(t, 7, table.Length())
}

// TestLCS_Disjoint verifies that strings with no shared characters yield an
// empty sequence and a zero terminal cell.
func TestLCS_Disjoint(t *testing.T) {
	table, seq := lcs.LCS("AAAA", "BBBB")
	assert.Empty(t, seq)
	assert.Equal(t, 0, table.Length())
}

// TestBuild_RowZeroAndColZero verifies the zero boundary invariant.
func TestBuild_RowZeroAndColZero(t *testing.T) {
	table := lcs.Build("CATCGA", "GTACCGTCA")

	for j := 0; j < table.Cols(); j++ {
		assert.Zero(t, table.At(0, j), "row 0 must be zero at column %d", j)
	}
	for i := 0; i < table.Rows(); i++ {
		assert.Zero(t, table.At(i, 0), "column 0 must be zero at row %d", i)
	}
}

// TestBuild_Monotonic verifies values never decrease moving right along a
// row or down a column.
func TestBuild_Monotonic(t *testing.T) {
	table := lcs.Build("ACAAGC", "CCGTACG")

	for i := 0; i < table.Rows(); i++ {
		for j := 1; j < table.Cols(); j++ {
			assert.LessOrEqual(t, table.At(i, j-1), table.At(i, j), "row %d not monotonic at col %d", i, j)
		}
	}
	for j := 0; j < table.Cols(); j++ {
		for i := 1; i < table.Rows(); i++ {
			assert.LessOrEqual(t, table.At(i-1, j), table.At(i, j), "col %d not monotonic at row %d", j, i)
		}
	}
}

// TestExtract_Prefixes verifies extraction at interior coordinates: the
// result must be a common subsequence of the addressed prefixes with length
// matching the cell value.
func TestExtract_Prefixes(t *testing.T) {
	x, y := "CATCGA", "GTACCGTCA"
	table := lcs.Build(x, y)

	for i := 0; i <= len(x); i++ {
		for j := 0; j <= len(y); j++ {
			seq, err := table.Extract(i, j)
			require.NoError(t, err, "in-bounds extraction at (%d,%d)", i, j)
			assert.Len(t, seq, table.At(i, j), "length must match cell (%d,%d)", i, j)
			assert.True(t, isSubsequence(seq, x[:i]), "not a subsequence of X[:%d]", i)
			assert.True(t, isSubsequence(seq, y[:j]), "not a subsequence of Y[:%d]", j)
		}
	}
}

// TestExtract_OutOfRange verifies the checked boundary of the traceback
// entry point.
func TestExtract_OutOfRange(t *testing.T) {
	table := lcs.Build("AB", "CD")

	_, err := table.Extract(3, 0)
	assert.ErrorIs(t, err, lcs.ErrCoordOutOfRange, "row past height must error")

	_, err = table.Extract(0, 3)
	assert.ErrorIs(t, err, lcs.ErrCoordOutOfRange, "col past width must error")

	_, err = table.Extract(-1, 1)
	assert.ErrorIs(t, err, lcs.ErrCoordOutOfRange, "negative row must error")
}

// TestLCS_LengthSymmetry verifies the LCS length is symmetric in its
// arguments (the sequence itself need not be, under the tie-break).
func TestLCS_LengthSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := "ACGT"

	for trial := 0; trial < 50; trial++ {
		x := randomString(rng, alphabet, rng.Intn(12))
		y := randomString(rng, alphabet, rng.Intn(12))

		fwd, _ := lcs.LCS(x, y)
		rev, _ := lcs.LCS(y, x)
		assert.Equal(t, fwd.Length(), rev.Length(), "length must be symmetric for %q/%q", x, y)
	}
}

// TestLCS_RandomizedProperties cross-checks random small inputs against an
// independent recursive reference and the subsequence property.
func TestLCS_RandomizedProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := "ABCAB" // skewed to force repeated characters and ties

	for trial := 0; trial < 100; trial++ {
		x := randomString(rng, alphabet, rng.Intn(10))
		y := randomString(rng, alphabet, rng.Intn(10))

		table, seq := lcs.LCS(x, y)
		require.Equal(t, refLength(x, y), table.Length(), "table disagrees with reference for %q/%q", x, y)
		assert.Len(t, seq, table.Length(), "sequence length mismatch for %q/%q", x, y)
		assert.True(t, isSubsequence(seq, x), "not a subsequence of %q", x)
		assert.True(t, isSubsequence(seq, y), "not a subsequence of %q", y)
	}
}

// randomString builds a string of n characters drawn from alphabet.
// Tests seed their own generator; the engines themselves never touch one.
func randomString(rng *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(b)
}
