// Package value implements the Syrup typed value model: an eleven-kind
// tagged union with canonical ordering, hashing, and equality defined on the
// wire form rather than on any in-memory representation.
//
// Values are immutable once constructed. Construction never mutates an
// existing Value; container kinds (List, Set, Dictionary, Record) hold their
// own defensively-copied slice, so a caller mutating a slice passed into a
// constructor cannot observe that mutation through the returned Value. The
// exceptions are NewSetUnchecked and NewDictionaryUnchecked, which keep the
// caller's slice as is.
package value

import (
	"math/big"
)

// Kind identifies one of the ten value kinds that have their own wire form.
// The reserved Null and Error variants have no Kind of their own: they are
// Record sugar (see Null and NewError). The zero value is KindBoolean.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindInteger
	KindFloat
	KindString
	KindSymbol
	KindBytes
	KindList
	KindSet
	KindDictionary
	KindRecord
)

// String returns a human-readable name for the kind, used in error messages
// and schema mismatch diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindDictionary:
		return "dictionary"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// DictEntry is one key/value pair of a Dictionary. Entries are stored in
// canonical order (ascending by the key's wire encoding) once held by a
// Value constructed through NewDictionary or the decoder.
type DictEntry struct {
	Key Value
	Val Value
}

// Value is an immutable Syrup value. The zero Value is a Boolean false.
//
// Value is a plain struct and may be freely copied; copying a Value does not
// copy the underlying text/bytes payload or container contents, matching the
// "structurally shared where the host allows" construction contract.
type Value struct {
	kind Kind

	boolean bool
	integer *big.Int
	float   float64

	// text backs String, Symbol, and Bytes payloads. owned reports whether
	// text is a private copy (true) or an alias into caller/decoder-owned
	// memory (false, a zero-copy view per the decoder's contract).
	text  []byte
	owned bool

	// elems backs List elements, canonically-ordered Set members, and
	// Record fields (label excluded).
	elems []Value
	// label is set only for Record values.
	label *Value

	// dict backs Dictionary entries in canonical order.
	dict []DictEntry
}

// Kind reports the semantic kind of v.
func (v Value) Kind() Kind { return v.kind }

// NewBool constructs a Boolean value.
func NewBool(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

// Bool returns v's boolean payload. ok is false if v is not a Boolean.
func (v Value) Bool() (b bool, ok bool) {
	if v.kind != KindBoolean {
		return false, false
	}

	return v.boolean, true
}

// NewInteger constructs an Integer value from an int64.
func NewInteger(i int64) Value {
	return Value{kind: KindInteger, integer: big.NewInt(i)}
}

// NewBigInteger constructs an Integer value from an arbitrary-precision
// *big.Int. The big.Int is copied so the caller may continue to mutate its
// own reference afterwards.
func NewBigInteger(i *big.Int) Value {
	return Value{kind: KindInteger, integer: new(big.Int).Set(i)}
}

// BigInt returns v's integer payload as a *big.Int, or nil if v is not an
// Integer. The returned big.Int must not be mutated by the caller.
func (v Value) BigInt() *big.Int {
	if v.kind != KindInteger {
		return nil
	}

	return v.integer
}

// Int64 returns v's integer payload as an int64. ok is false if v is not an
// Integer or the magnitude does not fit in an int64 (OverflowInteger in
// spec.md §7 terms; this host supports arbitrary precision internally, so
// overflow here is reported through the boolean rather than an error).
func (v Value) Int64() (n int64, ok bool) {
	if v.kind != KindInteger {
		return 0, false
	}

	if !v.integer.IsInt64() {
		return 0, false
	}

	return v.integer.Int64(), true
}

// canonicalNaNBits is the quiet-NaN, zero-payload bit pattern this
// implementation normalizes every NaN float to on encode, per spec.md §9's
// "implementations should pick a canonical NaN bit pattern" guidance.
const canonicalNaNBits uint64 = 0x7ff8000000000000

// NewFloat constructs a Float value. f is stored as given; NaN inputs are
// normalized to the canonical quiet-NaN bit pattern (see canonicalNaNBits)
// when the value is encoded, so Compare/Equal/Hash, which all work on the
// encoding, behave consistently for all NaN inputs. -0.0 is
// preserved as a distinct bit pattern from +0.0 since IEEE-754 treats them
// as different encodings (this is the one case where the wire format
// does not collapse a "negative zero" the way Integer does).
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// Float64 returns v's float payload. ok is false if v is not a Float.
func (v Value) Float64() (f float64, ok bool) {
	if v.kind != KindFloat {
		return 0, false
	}

	return v.float, true
}

// NewString constructs a String value, copying s into a private buffer.
func NewString(s string) Value {
	return Value{kind: KindString, text: append([]byte(nil), s...), owned: true}
}

// NewStringView constructs a String value that aliases b rather than
// copying it. The caller must not mutate b, and b must outlive v (the
// zero-copy view contract described in spec.md §4.4 and §9).
func NewStringView(b []byte) Value {
	return Value{kind: KindString, text: b, owned: false}
}

// NewSymbol constructs a Symbol value, copying s into a private buffer.
func NewSymbol(s string) Value {
	return Value{kind: KindSymbol, text: append([]byte(nil), s...), owned: true}
}

// NewSymbolView constructs a Symbol value that aliases b rather than
// copying it, see NewStringView.
func NewSymbolView(b []byte) Value {
	return Value{kind: KindSymbol, text: b, owned: false}
}

// NewBytes constructs a Bytes value, copying b into a private buffer.
func NewBytes(b []byte) Value {
	return Value{kind: KindBytes, text: append([]byte(nil), b...), owned: true}
}

// NewBytesView constructs a Bytes value that aliases b rather than copying
// it, see NewStringView.
func NewBytesView(b []byte) Value {
	return Value{kind: KindBytes, text: b, owned: false}
}

// Text returns v's UTF-8 payload for String or Symbol kinds. ok is false for
// any other kind, including Bytes (Bytes is opaque and only available
// through Bytes()).
func (v Value) Text() (s string, ok bool) {
	if v.kind != KindString && v.kind != KindSymbol {
		return "", false
	}

	return string(v.text), true
}

// Bytes returns v's opaque payload for the Bytes kind. ok is false for any
// other kind. The returned slice must not be mutated; it may alias the
// decoder's input buffer (see NewBytesView).
func (v Value) Bytes() (b []byte, ok bool) {
	if v.kind != KindBytes {
		return nil, false
	}

	return v.text, true
}

// Owned reports whether v's text/bytes payload is a private copy rather than
// a zero-copy view into borrowed memory. It is meaningless for kinds other
// than String, Symbol, and Bytes.
func (v Value) Owned() bool { return v.owned }

// NewList constructs a List value. elems is defensively copied so the
// caller's slice may be reused or mutated afterwards.
func NewList(elems []Value) Value {
	return Value{kind: KindList, elems: append([]Value(nil), elems...)}
}

// Elements returns v's ordered elements for List kind, v's canonically
// ordered members for Set kind, or v's fields (label excluded) for Record
// kind. ok is false for any other kind.
func (v Value) Elements() (elems []Value, ok bool) {
	switch v.kind {
	case KindList, KindSet, KindRecord:
		return v.elems, true
	default:
		return nil, false
	}
}

// NewRecord constructs a Record value with the given label and ordered
// fields. Both are defensively copied/owned by the returned Value.
func NewRecord(label Value, fields []Value) Value {
	l := label
	return Value{kind: KindRecord, label: &l, elems: append([]Value(nil), fields...)}
}

// Label returns v's label for the Record kind. ok is false for any other
// kind.
func (v Value) Label() (label Value, ok bool) {
	if v.kind != KindRecord || v.label == nil {
		return Value{}, false
	}

	return *v.label, true
}

// Null returns the Record-sugar encoding of the reserved Null variant,
// `<"null">`, per spec.md §9.
func Null() Value {
	return NewRecord(NewString("null"), nil)
}

// NewError returns the Record-sugar encoding of the reserved Error variant,
// `<"error" message>`, per spec.md §9.
func NewError(message string) Value {
	return NewRecord(NewString("error"), []Value{NewString(message)})
}

// Entries returns v's canonically ordered entries for the Dictionary kind.
// ok is false for any other kind.
func (v Value) Entries() (entries []DictEntry, ok bool) {
	if v.kind != KindDictionary {
		return nil, false
	}

	return v.dict, true
}
