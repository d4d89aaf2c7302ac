package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareIntegerOrdering(t *testing.T) {
	require := require.New(t)

	require.Equal(Less, Compare(NewInteger(1), NewInteger(2)))
	require.Equal(Greater, Compare(NewInteger(2), NewInteger(1)))
	require.Equal(Equal, Compare(NewInteger(5), NewInteger(5)))
}

func TestCompareIsByteOrderOfCanonicalEncoding(t *testing.T) {
	require := require.New(t)

	a := NewString("apple")
	b := NewString("banana")

	require.Equal(Less, Compare(a, b))
	require.Equal(string(AppendCanonical(nil, a)) < string(AppendCanonical(nil, b)), Compare(a, b) == Less)
}

func TestCompareAcrossKindsSharingLeadingDigit(t *testing.T) {
	require := require.New(t)

	// "1+"  (Integer 1) vs `1"a` (String "a"): both begin with the digit
	// '1', so ordering must fall through to the marker byte ('+' < '"' is
	// false; '"' = 0x22 < '+' = 0x2B), not a kind-based shortcut.
	i := NewInteger(1)
	s := NewString("a")

	require.Equal(Greater, Compare(i, s))
	require.Equal(Less, Compare(s, i))
}

func TestEqualMatchesCompare(t *testing.T) {
	require := require.New(t)

	require.True(Equal(NewInteger(7), NewInteger(7)))
	require.False(Equal(NewInteger(7), NewInteger(8)))
	require.True(Equal(NewBytes([]byte("abc")), NewBytes([]byte("abc"))))
}

func TestMethodFormsMatchPackageFunctions(t *testing.T) {
	require := require.New(t)

	a := NewInteger(1)
	b := NewInteger(2)

	require.Equal(Compare(a, b), a.Compare(b))
	require.Equal(Equal(a, b), a.Equal(b))
}
