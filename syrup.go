// Package syrup provides a self-describing, canonical binary encoding for
// a small, host-language-agnostic value model: booleans, arbitrary
// precision integers, floats, strings, symbols, byte strings, lists,
// sets, dictionaries, and records.
//
// Syrup is designed for protocols, like CapTP, that need byte-exact
// canonical encodings: any two encoders given the same logical value
// produce identical bytes, so the encoding itself can stand in for the
// value in comparisons, hashes, and content identifiers.
//
// # Core Features
//
//   - Eleven-kind tagged value model with a total order defined on the
//     wire encoding (see the value package)
//   - Bounded encoding into a caller-owned buffer that is never grown,
//     alongside a growing convenience form (see the encode package)
//   - A decoder that enforces canonical dictionary/set ordering directly
//     against the input bytes, with zero-copy string/symbol/bytes views
//     and an incremental streaming mode (see the decode package)
//   - SHA-256 content identifiers over the canonical encoding (see the
//     cid package)
//   - A reflect-based bridge between Go structs and Syrup values (see the
//     schema package)
//   - CapTP-specific fast paths for interned descriptors, small decimal
//     parsing, and arena sizing (see the captp package)
//   - An optional CID-keyed cache for repeated values (see the cidcache
//     package)
//
// # Basic Usage
//
// Building and encoding a value:
//
//	import "github.com/ocapn/syrup"
//
//	v := syrup.NewRecord(syrup.NewString("skill:invoke"), []syrup.Value{
//	    syrup.NewSymbol("gay-mcp"),
//	    syrup.NewSymbol("palette"),
//	})
//	encoded := syrup.Append(nil, v)
//
// Decoding:
//
//	decoded, _, err := syrup.Decode(encoded)
//
// Computing a content identifier:
//
//	sum, err := syrup.CID(v)
//	fmt.Println(sum.String())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around value,
// encode, decode, and cid, mirroring the most common use cases. For
// fine-grained control (arenas, UTF-8 validation, streaming), use those
// packages directly.
package syrup

import (
	"io"

	"github.com/ocapn/syrup/captp"
	"github.com/ocapn/syrup/cid"
	"github.com/ocapn/syrup/decode"
	"github.com/ocapn/syrup/encode"
	"github.com/ocapn/syrup/value"
)

// Value is re-exported from package value so callers of this top-level
// package do not need a second import for the type their code is built
// around.
type Value = value.Value

// DictEntry is re-exported from package value.
type DictEntry = value.DictEntry

// Option is re-exported from package decode.
type Option = decode.Option

// NewBool, NewInteger, NewString, NewSymbol, NewBytes, NewList, NewRecord,
// and NewFloat construct Values of the matching kind; see package value
// for the full constructor set, including NewBigInteger, NewStringView,
// zero-copy view constructors, Null, and NewError.
var (
	NewBool       = value.NewBool
	NewInteger    = value.NewInteger
	NewBigInteger = value.NewBigInteger
	NewFloat      = value.NewFloat
	NewString     = value.NewString
	NewSymbol     = value.NewSymbol
	NewBytes      = value.NewBytes
	NewList       = value.NewList
	Null          = value.Null
	NewError      = value.NewError
)

// NewRecord constructs a Record value labeled with label (typically a
// Symbol naming the record type, per the CapTP convention) and the given
// ordered fields.
func NewRecord(label Value, fields []Value) Value {
	return value.NewRecord(label, fields)
}

// NewSet constructs a Set value, canonicalizing members into ascending
// wire-encoded order. It returns an error if two members share an
// encoding.
func NewSet(members []Value) (Value, error) {
	return value.NewSet(members)
}

// NewDictionary constructs a Dictionary value, canonicalizing entries into
// ascending key-encoded order. It returns an error if two entries share a
// key encoding.
func NewDictionary(entries []DictEntry) (Value, error) {
	return value.NewDictionary(entries)
}

// Append appends v's canonical wire encoding to dst, growing dst as
// needed, and returns the resulting slice.
func Append(dst []byte, v Value) []byte {
	return encode.Append(dst, v)
}

// EncodeInto writes v's canonical wire encoding into buf without ever
// growing or reallocating it, returning the number of bytes written.
func EncodeInto(buf []byte, v Value) (int, error) {
	return encode.Into(buf, v)
}

// WriteTo streams v's canonical wire encoding to w without materializing
// the full encoding in memory.
func WriteTo(w io.Writer, v Value) error {
	return encode.To(w, v)
}

// Decode parses a single value from the front of data and returns it
// along with the unconsumed remainder.
func Decode(data []byte, opts ...Option) (Value, []byte, error) {
	return decode.Decode(data, opts...)
}

// NewStream constructs an incremental decoder for transports that deliver
// bytes in arbitrary chunks; see package decode.
func NewStream(opts ...Option) (*decode.Stream, error) {
	return decode.NewStream(opts...)
}

// WithUTF8Validation, WithOwnedText, and WithArena configure Decode and
// NewStream; see package decode.
var (
	WithUTF8Validation = decode.WithUTF8Validation
	WithOwnedText      = decode.WithOwnedText
	WithArena          = decode.WithArena
)

// CID computes the content identifier of v: the SHA-256 digest of v's
// canonical encoding.
func CID(v Value) (cid.CID, error) {
	return cid.Sum(v)
}

// Compare returns the total order of a relative to b, equal to
// lexicographic byte order on their canonical encodings.
func Compare(a, b Value) value.Ordering {
	return value.Compare(a, b)
}

// Equal reports whether a and b have identical canonical encodings.
func Equal(a, b Value) bool {
	return value.Equal(a, b)
}

// Hash returns a 64-bit hash of v derived from its canonical encoding,
// such that Equal(a, b) implies Hash(a) == Hash(b).
func Hash(v Value) uint64 {
	return value.Hash(v)
}

// CaptpEncodeDescriptor appends the wire encoding of a CapTP Record whose
// label is one of a small set of interned well-known symbols
// ("op:deliver", "desc:export", ...), skipping the general encoder's
// per-call symbol encoding. ok is false for any other label, in which
// case the caller should fall back to Append and NewRecord.
func CaptpEncodeDescriptor(dst []byte, label string, n int64) (out []byte, ok bool) {
	return captp.EncodeDescriptor(dst, label, n)
}

// CaptpParseDecimal parses a run of up to 4 ASCII decimal digits from the
// start of data, the fast path for the CapTP export/import/answer numbers
// and position indices that dominate real traffic.
func CaptpParseDecimal(data []byte) (n int64, consumed int, ok bool) {
	return captp.ParseDecimal(data)
}

// CaptpEstimateArenaSize returns a heuristic byte budget for sizing a
// decode arena before data has been parsed, keyed on the CapTP message
// shape data opens with.
func CaptpEstimateArenaSize(data []byte) int {
	return captp.EstimateArenaSize(data)
}
