// Package decode implements the Syrup decoder: a recursive-descent parser
// that walks a byte slice once, enforcing every canonicity rule spec.md
// §4.4 and §4.3 require (ascending, duplicate-free Dictionary keys and Set
// members; no leading zeros in integer magnitudes or length prefixes) by
// comparing the raw wire bytes it just consumed, never by re-encoding a
// constructed Value. String, Symbol, and Bytes values are zero-copy views
// into the input buffer by default (see WithOwnedText to force copies).
package decode

import (
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/ocapn/syrup/captp"
	"github.com/ocapn/syrup/errs"
	"github.com/ocapn/syrup/value"
)

// Decode parses a single value from the front of data and returns it along
// with the unconsumed remainder of data. It does not require data to be
// consumed in full; a caller decoding a stream of concatenated values
// calls Decode repeatedly against the returned rest.
func Decode(data []byte, opts ...Option) (v value.Value, rest []byte, err error) {
	c, err := resolve(opts)
	if err != nil {
		return value.Value{}, data, err
	}

	return decodeValue(data, c)
}

func decodeValue(data []byte, c *config) (value.Value, []byte, error) {
	if len(data) == 0 {
		return value.Value{}, data, errs.ErrTruncated
	}

	b := data[0]
	switch {
	case b == 't':
		return value.NewBool(true), data[1:], nil
	case b == 'f':
		return value.NewBool(false), data[1:], nil
	case b == 'D':
		return decodeFloat(data, c)
	case b == '[':
		return decodeList(data[1:], c)
	case b == '#':
		return decodeSet(data[1:], c)
	case b == '{':
		return decodeDict(data[1:], c)
	case b == '<':
		return decodeRecord(data[1:], c)
	case b >= '0' && b <= '9':
		return decodePrefixed(data, c)
	default:
		return value.Value{}, data, errs.ErrInvalidByte
	}
}

func decodeFloat(data []byte, _ *config) (value.Value, []byte, error) {
	if len(data) < 9 {
		return value.Value{}, data, errs.ErrTruncated
	}

	var bits uint64
	for _, b := range data[1:9] {
		bits = bits<<8 | uint64(b)
	}

	return value.NewFloat(math.Float64frombits(bits)), data[9:], nil
}

// decodePrefixed handles the four wire forms that begin with an ASCII
// decimal run: Integer (terminated by '+' or '-') and the length-prefixed
// String/Symbol/Bytes forms (terminated by '"', '\'', or ':').
func decodePrefixed(data []byte, c *config) (value.Value, []byte, error) {
	i := 0
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		i++
	}
	if i >= len(data) {
		return value.Value{}, data, errs.ErrTruncated
	}

	digits := data[:i]
	if len(digits) > 1 && digits[0] == '0' {
		return value.Value{}, data, errs.ErrLeadingZero
	}

	marker := data[i]
	rest := data[i+1:]

	switch marker {
	case '+', '-':
		mag := new(big.Int)
		mag.SetString(string(digits), 10)
		if marker == '-' {
			mag.Neg(mag)
		}

		return value.NewBigInteger(mag), rest, nil
	case '"', '\'', ':':
		n, ok := decodeLength(digits)
		if !ok {
			return value.Value{}, data, errs.ErrTruncated
		}
		if n > len(rest) {
			return value.Value{}, data, errs.ErrTruncated
		}

		payload := rest[:n]
		tail := rest[n:]

		switch marker {
		case '"':
			if c.validateUTF8 && !utf8.Valid(payload) {
				return value.Value{}, data, errs.ErrInvalidUTF8
			}
			if c.copyText {
				return value.NewString(string(payload)), tail, nil
			}

			return value.NewStringView(payload), tail, nil
		case '\'':
			if c.copyText {
				return value.NewSymbol(string(payload)), tail, nil
			}

			return value.NewSymbolView(payload), tail, nil
		default:
			if c.copyText {
				return value.NewBytes(payload), tail, nil
			}

			return value.NewBytesView(payload), tail, nil
		}
	default:
		return value.Value{}, data, errs.ErrInvalidByte
	}
}

// decodeLength parses digits (already verified free of non-digit bytes and
// disallowed leading zeros) as a non-negative length. ok is false on
// overflow, which can only happen for an absurd, unsatisfiable length.
func decodeLength(digits []byte) (n int, ok bool) {
	if len(digits) > 18 {
		return 0, false
	}

	var v int64
	for _, d := range digits {
		v = v*10 + int64(d-'0')
	}
	if v < 0 || int64(int(v)) != v {
		return 0, false
	}

	return int(v), true
}

func decodeList(data []byte, c *config) (value.Value, []byte, error) {
	elems := allocValues(c, 4)
	for {
		if len(data) == 0 {
			return value.Value{}, data, errs.ErrTruncated
		}
		if data[0] == ']' {
			return value.NewList(elems), data[1:], nil
		}

		elem, tail, err := decodeValue(data, c)
		if err != nil {
			return value.Value{}, data, err
		}
		elems = append(elems, elem)
		data = tail
	}
}

func decodeSet(data []byte, c *config) (value.Value, []byte, error) {
	members := allocValues(c, 4)
	var prev []byte

	for {
		if len(data) == 0 {
			return value.Value{}, data, errs.ErrTruncated
		}
		if data[0] == '$' {
			return value.NewSetUnchecked(members), data[1:], nil
		}

		member, tail, err := decodeValue(data, c)
		if err != nil {
			return value.Value{}, data, err
		}
		consumed := data[:len(data)-len(tail)]

		if prev != nil {
			switch compareBytes(prev, consumed) {
			case 0:
				return value.Value{}, data, errs.ErrNonCanonicalDuplicateMember
			case 1:
				return value.Value{}, data, errs.ErrNonCanonicalUnorderedMember
			}
		}

		members = append(members, member)
		prev = consumed
		data = tail
	}
}

func decodeDict(data []byte, c *config) (value.Value, []byte, error) {
	entries := allocEntries(c, 4)
	var prevKey []byte

	for {
		if len(data) == 0 {
			return value.Value{}, data, errs.ErrTruncated
		}
		if data[0] == '}' {
			return value.NewDictionaryUnchecked(entries), data[1:], nil
		}

		key, afterKey, err := decodeValue(data, c)
		if err != nil {
			return value.Value{}, data, err
		}
		keyBytes := data[:len(data)-len(afterKey)]

		if prevKey != nil {
			switch compareBytes(prevKey, keyBytes) {
			case 0:
				return value.Value{}, data, errs.ErrNonCanonicalDuplicateKey
			case 1:
				return value.Value{}, data, errs.ErrNonCanonicalUnorderedKey
			}
		}

		val, afterVal, err := decodeValue(afterKey, c)
		if err != nil {
			return value.Value{}, data, err
		}

		entries = append(entries, value.DictEntry{Key: key, Val: val})
		prevKey = keyBytes
		data = afterVal
	}
}

func decodeRecord(data []byte, c *config) (value.Value, []byte, error) {
	label, afterLabel, err := decodeValue(data, c)
	if err != nil {
		return value.Value{}, data, err
	}
	data = afterLabel

	fields := allocValues(c, 4)
	for {
		if len(data) == 0 {
			return value.Value{}, data, errs.ErrTruncated
		}
		if data[0] == '>' {
			return value.NewRecord(label, fields), data[1:], nil
		}

		field, tail, err := decodeValue(data, c)
		if err != nil {
			return value.Value{}, data, err
		}
		fields = append(fields, field)
		data = tail
	}
}

func allocValues(c *config, hint int) []value.Value {
	if c.arena != nil {
		return c.arena.AllocValues(hint)
	}

	return make([]value.Value, 0, hint)
}

func allocEntries(c *config, hint int) []value.DictEntry {
	if c.arena != nil {
		return c.arena.AllocEntries(hint)
	}

	return make([]value.DictEntry, 0, hint)
}

// compareBytes returns -1, 0, or 1, matching bytes.Compare; duplicated here
// to avoid importing bytes solely for this one call site shared by
// decodeSet and decodeDict.
func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// SuggestArenaSize exposes captp's message-shape estimator for callers
// that want to size an arena.Arena before calling Decode with
// WithArena(a). Decode never creates an arena on its own behalf: per
// spec.md §5, an arena's lifetime is the caller's to manage.
func SuggestArenaSize(data []byte) int {
	return captp.EstimateArenaSize(data)
}
