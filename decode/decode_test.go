package decode

import (
	"math/big"
	"testing"

	"github.com/ocapn/syrup/errs"
	"github.com/ocapn/syrup/internal/arena"
	"github.com/ocapn/syrup/value"
	"github.com/stretchr/testify/require"
)

func TestDecodePrimitives(t *testing.T) {
	require := require.New(t)

	v, rest, err := Decode([]byte("t"))
	require.NoError(err)
	require.Empty(rest)
	b, ok := v.Bool()
	require.True(ok)
	require.True(b)

	v, _, err = Decode([]byte("f"))
	require.NoError(err)
	b, _ = v.Bool()
	require.False(b)
}

func TestDecodeIntegerSignAndMagnitude(t *testing.T) {
	require := require.New(t)

	v, _, err := Decode([]byte("4+"))
	require.NoError(err)
	n, ok := v.Int64()
	require.True(ok)
	require.Equal(int64(4), n)

	v, _, err = Decode([]byte("4-"))
	require.NoError(err)
	n, _ = v.Int64()
	require.Equal(int64(-4), n)

	v, _, err = Decode([]byte("0+"))
	require.NoError(err)
	n, _ = v.Int64()
	require.Equal(int64(0), n)
}

func TestDecodeIntegerLeadingZeroRejected(t *testing.T) {
	require := require.New(t)

	_, _, err := Decode([]byte("04+"))
	require.ErrorIs(err, errs.ErrLeadingZero)
}

func TestDecodeBigInteger(t *testing.T) {
	require := require.New(t)

	v, rest, err := Decode([]byte("1234567890123456789012345678901234567890+"))
	require.NoError(err)
	require.Empty(rest)

	want, _ := new(big.Int).SetString("1234567890123456789012345678901234567890", 10)
	require.Equal(0, want.Cmp(v.BigInt()))
}

func TestDecodeFloat(t *testing.T) {
	require := require.New(t)

	data := []byte{'D', 0x3F, 0xF0, 0, 0, 0, 0, 0, 0} // 1.0 big-endian
	v, rest, err := Decode(data)
	require.NoError(err)
	require.Empty(rest)
	f, ok := v.Float64()
	require.True(ok)
	require.Equal(1.0, f)
}

func TestDecodeFloatTruncated(t *testing.T) {
	require := require.New(t)

	_, _, err := Decode([]byte{'D', 0x3F, 0xF0})
	require.ErrorIs(err, errs.ErrTruncated)
}

func TestDecodeStringSymbolBytes(t *testing.T) {
	require := require.New(t)

	v, rest, err := Decode([]byte(`7"gay-mcp`))
	require.NoError(err)
	require.Empty(rest)
	s, ok := v.Text()
	require.True(ok)
	require.Equal("gay-mcp", s)
	require.Equal(value.KindString, v.Kind())

	v, _, err = Decode([]byte(`1'n`))
	require.NoError(err)
	require.Equal(value.KindSymbol, v.Kind())

	v, _, err = Decode([]byte("3:abc"))
	require.NoError(err)
	b, ok := v.Bytes()
	require.True(ok)
	require.Equal([]byte("abc"), b)
}

func TestDecodeZeroCopyViewAliasesInput(t *testing.T) {
	require := require.New(t)

	data := []byte(`3"abc`)
	v, _, err := Decode(data)
	require.NoError(err)
	require.False(v.Owned())

	s, _ := v.Text()
	require.Equal("abc", s)
}

func TestDecodeWithOwnedText(t *testing.T) {
	require := require.New(t)

	data := []byte(`3"abc`)
	v, _, err := Decode(data, WithOwnedText())
	require.NoError(err)
	require.True(v.Owned())
}

func TestDecodeWithUTF8Validation(t *testing.T) {
	require := require.New(t)

	invalid := append([]byte{'2', '"'}, 0xff, 0xfe)
	_, _, err := Decode(invalid, WithUTF8Validation())
	require.ErrorIs(err, errs.ErrInvalidUTF8)

	// Without validation requested, the same bytes decode without error.
	_, _, err = Decode(invalid)
	require.NoError(err)
}

func TestDecodeList(t *testing.T) {
	require := require.New(t)

	v, rest, err := Decode([]byte("[1+2+3+]"))
	require.NoError(err)
	require.Empty(rest)
	elems, ok := v.Elements()
	require.True(ok)
	require.Len(elems, 3)
}

func TestDecodeWithArenaServesContainerSlices(t *testing.T) {
	require := require.New(t)

	a := arena.New(256)
	beforeValues, beforeEntries := a.Used()
	require.Zero(beforeValues)
	require.Zero(beforeEntries)

	v, rest, err := Decode([]byte("[1+2+3+]"), WithArena(a))
	require.NoError(err)
	require.Empty(rest)
	elems, ok := v.Elements()
	require.True(ok)
	require.Len(elems, 3)

	afterValues, afterEntries := a.Used()
	require.Positive(afterValues, "decoding a list with WithArena should bump-allocate from the arena's value slab")
	require.Zero(afterEntries, "a list decode should not touch the entry slab")

	// A dictionary exercises the entry slab instead.
	a.Reset()
	_, _, err = Decode([]byte(`{1"a1+}`), WithArena(a))
	require.NoError(err)
	_, entriesUsed := a.Used()
	require.Positive(entriesUsed, "decoding a dictionary with WithArena should bump-allocate from the arena's entry slab")

	// Reset reclaims the offsets for reuse on the next decode.
	a.Reset()
	valuesUsed, entriesUsed := a.Used()
	require.Zero(valuesUsed)
	require.Zero(entriesUsed)
}

func TestDecodeEmptyListAndRecordTruncation(t *testing.T) {
	require := require.New(t)

	v, _, err := Decode([]byte("[]"))
	require.NoError(err)
	elems, _ := v.Elements()
	require.Empty(elems)

	_, _, err = Decode([]byte("[1+"))
	require.ErrorIs(err, errs.ErrTruncated)
}

func TestDecodeSetCanonicalOrder(t *testing.T) {
	require := require.New(t)

	v, _, err := Decode([]byte("#1+3+5+$"))
	require.NoError(err)
	members, _ := v.Elements()
	require.Len(members, 3)
}

func TestDecodeSetRejectsUnorderedMembers(t *testing.T) {
	require := require.New(t)

	_, _, err := Decode([]byte("#3+1+$"))
	require.ErrorIs(err, errs.ErrNonCanonicalUnorderedMember)
}

func TestDecodeSetRejectsDuplicateMembers(t *testing.T) {
	require := require.New(t)

	_, _, err := Decode([]byte("#1+1+$"))
	require.ErrorIs(err, errs.ErrNonCanonicalDuplicateMember)
}

func TestDecodeDictCanonicalOrder(t *testing.T) {
	require := require.New(t)

	v, _, err := Decode([]byte(`{1"n4+4"seed1069+}`))
	require.NoError(err)
	entries, ok := v.Entries()
	require.True(ok)
	require.Len(entries, 2)
}

func TestDecodeDictRejectsUnorderedKeys(t *testing.T) {
	require := require.New(t)

	_, _, err := Decode([]byte(`{4"seed1069+1"n4+}`))
	require.ErrorIs(err, errs.ErrNonCanonicalUnorderedKey)
}

func TestDecodeDictRejectsDuplicateKeys(t *testing.T) {
	require := require.New(t)

	_, _, err := Decode([]byte(`{1"n4+1"n5+}`))
	require.ErrorIs(err, errs.ErrNonCanonicalDuplicateKey)
}

func TestDecodeRecordAndCrossLanguageVector(t *testing.T) {
	require := require.New(t)

	data := []byte(`<12"skill:invoke[7'gay-mcp7'palette{1"n4+4"seed1069+}0+]>`)
	v, rest, err := Decode(data)
	require.NoError(err)
	require.Empty(rest)

	label, ok := v.Label()
	require.True(ok)
	labelText, _ := label.Text()
	require.Equal("skill:invoke", labelText)

	fields, ok := v.Elements()
	require.True(ok)
	require.Len(fields, 1)

	args, ok := fields[0].Elements()
	require.True(ok)
	require.Len(args, 4)
}

func TestDecodeTruncatedInput(t *testing.T) {
	require := require.New(t)

	_, _, err := Decode(nil)
	require.ErrorIs(err, errs.ErrTruncated)

	_, _, err = Decode([]byte(`7"gay`))
	require.ErrorIs(err, errs.ErrTruncated)
}

func TestDecodeInvalidByte(t *testing.T) {
	require := require.New(t)

	_, _, err := Decode([]byte("z"))
	require.ErrorIs(err, errs.ErrInvalidByte)
}
