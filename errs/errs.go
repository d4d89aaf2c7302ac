// Package errs centralizes the sentinel errors returned by the codec.
//
// Every failure mode named in the wire format spec has exactly one sentinel
// here. Callers should compare with errors.Is; functions that need to attach
// positional context wrap a sentinel with fmt.Errorf("...: %w", ErrX).
package errs

import "errors"

var (
	// ErrTruncated indicates the input ended mid-value.
	ErrTruncated = errors.New("syrup: truncated input")

	// ErrInvalidByte indicates an unexpected byte where a marker or digit was required.
	ErrInvalidByte = errors.New("syrup: invalid byte")

	// ErrOverflowInteger indicates an integer magnitude exceeds the host's integer range.
	ErrOverflowInteger = errors.New("syrup: integer overflow")

	// ErrLeadingZero indicates an integer magnitude or a String/Symbol/Bytes length prefix
	// began with '0' and isn't the literal 0.
	ErrLeadingZero = errors.New("syrup: leading zero in integer magnitude")

	// ErrNonCanonicalUnorderedKey indicates dictionary keys were not in strict ascending order.
	ErrNonCanonicalUnorderedKey = errors.New("syrup: non-canonical dictionary: unordered key")

	// ErrNonCanonicalUnorderedMember indicates set members were not in strict ascending order.
	ErrNonCanonicalUnorderedMember = errors.New("syrup: non-canonical set: unordered member")

	// ErrNonCanonicalDuplicateKey indicates two dictionary entries share an encoded key.
	ErrNonCanonicalDuplicateKey = errors.New("syrup: non-canonical dictionary: duplicate key")

	// ErrNonCanonicalDuplicateMember indicates two set members share an encoding.
	ErrNonCanonicalDuplicateMember = errors.New("syrup: non-canonical set: duplicate member")

	// ErrInvalidUTF8 indicates a String payload failed UTF-8 validation (opt-in only).
	ErrInvalidUTF8 = errors.New("syrup: invalid UTF-8 in string payload")

	// ErrBufferTooSmall indicates the encoder's output buffer cannot hold the result.
	ErrBufferTooSmall = errors.New("syrup: buffer too small")

	// ErrSchemaMismatch indicates a value's kind or structure didn't match the target Go type.
	ErrSchemaMismatch = errors.New("syrup: schema mismatch")

	// ErrNeedMoreInput indicates the streaming decoder needs more bytes before it can
	// produce a value; it is not a decode failure.
	ErrNeedMoreInput = errors.New("syrup: need more input")
)
