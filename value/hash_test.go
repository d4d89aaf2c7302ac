package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashEqualValuesHaveEqualHashes(t *testing.T) {
	require := require.New(t)

	a := NewString("gay-mcp")
	b := NewString("gay-mcp")

	require.True(Equal(a, b))
	require.Equal(Hash(a), Hash(b))
}

func TestHashDistinguishesDifferentValues(t *testing.T) {
	require := require.New(t)

	require.NotEqual(Hash(NewInteger(1)), Hash(NewInteger(2)))
}

func TestHashMethodMatchesFunction(t *testing.T) {
	require := require.New(t)

	v := NewList([]Value{NewInteger(1), NewInteger(2)})
	require.Equal(Hash(v), v.Hash())
}
