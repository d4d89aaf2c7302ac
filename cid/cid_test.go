package cid

import (
	"testing"

	"github.com/ocapn/syrup/value"
	"github.com/stretchr/testify/require"
)

func TestSumCrossLanguageVerificationVector(t *testing.T) {
	require := require.New(t)

	dict, err := value.NewDictionary([]value.DictEntry{
		{Key: value.NewString("seed"), Val: value.NewInteger(1069)},
		{Key: value.NewString("n"), Val: value.NewInteger(4)},
	})
	require.NoError(err)

	args := value.NewList([]value.Value{
		value.NewSymbol("gay-mcp"),
		value.NewSymbol("palette"),
		dict,
		value.NewInteger(0),
	})
	rec := value.NewRecord(value.NewString("skill:invoke"), []value.Value{args})

	sum, err := Sum(rec)
	require.NoError(err)
	require.Equal("06fe1dc709bea744f8a0e1cd767210cd90f2b78200f574497e876c2778fa7ffb", sum.String())
}

func TestSumIsDeterministic(t *testing.T) {
	require := require.New(t)

	v := value.NewString("gay-mcp")
	a, err := Sum(v)
	require.NoError(err)
	b, err := Sum(v)
	require.NoError(err)
	require.Equal(a, b)
}

func TestSumDiffersForDifferentValues(t *testing.T) {
	require := require.New(t)

	a, err := Sum(value.NewInteger(1))
	require.NoError(err)
	b, err := Sum(value.NewInteger(2))
	require.NoError(err)
	require.NotEqual(a, b)
}
