package value

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendCanonicalPrimitives(t *testing.T) {
	require := require.New(t)

	require.Equal([]byte("t"), AppendCanonical(nil, NewBool(true)))
	require.Equal([]byte("f"), AppendCanonical(nil, NewBool(false)))
	require.Equal([]byte("0+"), AppendCanonical(nil, NewInteger(0)))
	require.Equal([]byte("4+"), AppendCanonical(nil, NewInteger(4)))
	require.Equal([]byte("4-"), AppendCanonical(nil, NewInteger(-4)))
	require.Equal([]byte(`7"gay-mcp`), AppendCanonical(nil, NewString("gay-mcp")))
	require.Equal([]byte(`1'n`), AppendCanonical(nil, NewSymbol("n")))
	require.Equal([]byte("3:abc"), AppendCanonical(nil, NewBytes([]byte("abc"))))
}

func TestAppendCanonicalFloatBigEndian(t *testing.T) {
	require := require.New(t)

	enc := AppendCanonical(nil, NewFloat(1.0))
	require.Len(enc, 9)
	require.Equal(byte('D'), enc[0])
	// 1.0 as IEEE-754 binary64 big-endian: 0x3FF0000000000000
	require.Equal([]byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}, enc[1:])
}

func TestAppendCanonicalNaNNormalized(t *testing.T) {
	require := require.New(t)

	nan1 := NewFloat(math.NaN())
	enc1 := AppendCanonical(nil, nan1)

	var bits uint64 = 0x7ff8000000000001 // a different NaN payload
	nan2 := NewFloat(math.Float64frombits(bits))
	enc2 := AppendCanonical(nil, nan2)

	require.Equal(enc1, enc2, "all NaNs must normalize to the same canonical encoding")
}

func TestAppendCanonicalBigInteger(t *testing.T) {
	require := require.New(t)

	big40, ok := new(big.Int).SetString("1234567890123456789012345678901234567890", 10)
	require.True(ok)

	enc := AppendCanonical(nil, NewBigInteger(big40))
	require.Equal([]byte("1234567890123456789012345678901234567890+"), enc)

	neg := new(big.Int).Neg(big40)
	enc = AppendCanonical(nil, NewBigInteger(neg))
	require.Equal([]byte("1234567890123456789012345678901234567890-"), enc)
}

func TestAppendCanonicalContainers(t *testing.T) {
	require := require.New(t)

	list := NewList([]Value{NewInteger(1), NewInteger(2)})
	require.Equal([]byte("[1+2+]"), AppendCanonical(nil, list))

	rec := NewRecord(NewString("skill:invoke"), []Value{
		NewSymbol("gay-mcp"),
		NewSymbol("palette"),
	})
	require.Equal([]byte(`<12"skill:invoke7'gay-mcp7'palette>`), AppendCanonical(nil, rec))
}

func TestNewSetCanonicalOrderAndDuplicates(t *testing.T) {
	require := require.New(t)

	set, err := NewSet([]Value{NewInteger(5), NewInteger(1), NewInteger(3)})
	require.NoError(err)

	enc := AppendCanonical(nil, set)
	require.Equal([]byte("#1+3+5+$"), enc)

	_, err = NewSet([]Value{NewInteger(1), NewInteger(1)})
	require.Error(err)
}

func TestNewDictionaryCanonicalOrderAndDuplicates(t *testing.T) {
	require := require.New(t)

	dict, err := NewDictionary([]DictEntry{
		{Key: NewString("seed"), Val: NewInteger(1069)},
		{Key: NewString("n"), Val: NewInteger(4)},
	})
	require.NoError(err)

	enc := AppendCanonical(nil, dict)
	require.Equal([]byte(`{1"n4+4"seed1069+}`), enc)

	_, err = NewDictionary([]DictEntry{
		{Key: NewSymbol("n"), Val: NewInteger(1)},
		{Key: NewSymbol("n"), Val: NewInteger(2)},
	})
	require.Error(err)
}

func TestEncodeBoundedOverflow(t *testing.T) {
	require := require.New(t)

	v := NewString("gay-mcp")
	buf := make([]byte, 3)
	_, ok := EncodeBounded(buf, v)
	require.False(ok)

	buf = make([]byte, 64)
	n, ok := EncodeBounded(buf, v)
	require.True(ok)
	require.Equal(`7"gay-mcp`, string(buf[:n]))
}

func TestCrossLanguageVerificationVector(t *testing.T) {
	require := require.New(t)

	dict, err := NewDictionary([]DictEntry{
		{Key: NewString("seed"), Val: NewInteger(1069)},
		{Key: NewString("n"), Val: NewInteger(4)},
	})
	require.NoError(err)

	args := NewList([]Value{
		NewSymbol("gay-mcp"),
		NewSymbol("palette"),
		dict,
		NewInteger(0),
	})
	rec := NewRecord(NewString("skill:invoke"), []Value{args})

	enc := AppendCanonical(nil, rec)
	require.Equal(`<12"skill:invoke[7'gay-mcp7'palette{1"n4+4"seed1069+}0+]>`, string(enc))
}
