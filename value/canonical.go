package value

import (
	"io"
	"math"
	"math/big"
	"sort"
	"strconv"

	"github.com/ocapn/syrup/errs"
)

// sink is the single write target the canonical encoder walks over. Three
// implementations back the three public entry points below: a growable
// in-memory slice (AppendCanonical), a caller-bounded fixed buffer
// (EncodeBounded), and an io.Writer (WriteCanonical, used to feed a
// streaming hasher without materializing the encoding, per spec.md §4.6).
type sink interface {
	writeByte(b byte)
	writeBytes(p []byte)
}

// growSink appends to a slice, growing it as needed. Used by AppendCanonical.
type growSink struct{ buf []byte }

func (s *growSink) writeByte(b byte)    { s.buf = append(s.buf, b) }
func (s *growSink) writeBytes(p []byte) { s.buf = append(s.buf, p...) }

// boundedSink writes into a caller-owned fixed-capacity buffer and never
// grows it; it records overflow instead, so the encoder can report
// ErrBufferTooSmall without ever reallocating the caller's buffer.
type boundedSink struct {
	buf      []byte
	pos      int
	overflow bool
}

func (s *boundedSink) writeByte(b byte) {
	if s.pos >= len(s.buf) {
		s.overflow = true

		return
	}
	s.buf[s.pos] = b
	s.pos++
}

func (s *boundedSink) writeBytes(p []byte) {
	if s.pos+len(p) > len(s.buf) {
		s.overflow = true

		return
	}
	copy(s.buf[s.pos:], p)
	s.pos += len(p)
}

// writerSink adapts an io.Writer to sink, so a single encoding walk can feed
// a streaming hash.Hash directly. The first write error is sticky.
type writerSink struct {
	w   io.Writer
	err error
}

func (s *writerSink) writeByte(b byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write([]byte{b})
}

func (s *writerSink) writeBytes(p []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(p)
}

// AppendCanonical appends v's canonical wire encoding to dst, growing dst as
// needed, and returns the resulting slice. This is the allocating entry
// point used internally for comparison and set/dictionary
// canonicalization.
func AppendCanonical(dst []byte, v Value) []byte {
	s := &growSink{buf: dst}
	encodeValue(s, v)

	return s.buf
}

// EncodeBounded writes v's canonical wire encoding into buf without ever
// growing or reallocating it. It returns the number of bytes written and
// true on success, or ok=false if buf was not large enough to hold the
// encoding (the caller should treat this as errs.ErrBufferTooSmall).
func EncodeBounded(buf []byte, v Value) (n int, ok bool) {
	s := &boundedSink{buf: buf}
	encodeValue(s, v)

	return s.pos, !s.overflow
}

// WriteCanonical writes v's canonical wire encoding to w, one append at a
// time, without materializing the full encoding in memory. It is the
// building block for cid.Sum and Hash.
func WriteCanonical(w io.Writer, v Value) error {
	s := &writerSink{w: w}
	encodeValue(s, v)

	return s.err
}

func encodeValue(s sink, v Value) {
	switch v.kind {
	case KindBoolean:
		if v.boolean {
			s.writeByte('t')
		} else {
			s.writeByte('f')
		}
	case KindInteger:
		encodeInteger(s, v.integer)
	case KindFloat:
		encodeFloat(s, v.float)
	case KindString:
		encodeLengthPrefixed(s, v.text, '"')
	case KindSymbol:
		encodeLengthPrefixed(s, v.text, '\'')
	case KindBytes:
		encodeLengthPrefixed(s, v.text, ':')
	case KindList:
		s.writeByte('[')
		for _, e := range v.elems {
			encodeValue(s, e)
		}
		s.writeByte(']')
	case KindSet:
		s.writeByte('#')
		for _, e := range v.elems {
			encodeValue(s, e)
		}
		s.writeByte('$')
	case KindDictionary:
		s.writeByte('{')
		for _, entry := range v.dict {
			encodeValue(s, entry.Key)
			encodeValue(s, entry.Val)
		}
		s.writeByte('}')
	case KindRecord:
		s.writeByte('<')
		if v.label != nil {
			encodeValue(s, *v.label)
		}
		for _, f := range v.elems {
			encodeValue(s, f)
		}
		s.writeByte('>')
	}
}

// encodeInteger writes the magnitude digits (no leading zeros, "0" for
// zero) followed by the sign byte, per spec.md §4.2's "sign byte follows
// the magnitude" convention.
func encodeInteger(s sink, i *big.Int) {
	sign := i.Sign()

	mag := i
	if sign < 0 {
		mag = new(big.Int).Neg(i)
	}
	s.writeBytes([]byte(mag.Text(10)))

	if sign < 0 {
		s.writeByte('-')
	} else {
		s.writeByte('+')
	}
}

func encodeLengthPrefixed(s sink, data []byte, marker byte) {
	s.writeBytes(strconv.AppendInt(nil, int64(len(data)), 10))
	s.writeByte(marker)
	s.writeBytes(data)
}

func encodeFloat(s sink, f float64) {
	bits := math.Float64bits(f)
	if math.IsNaN(f) {
		bits = canonicalNaNBits
	}
	s.writeByte('D')
	var buf [8]byte
	buf[0] = byte(bits >> 56)
	buf[1] = byte(bits >> 48)
	buf[2] = byte(bits >> 40)
	buf[3] = byte(bits >> 32)
	buf[4] = byte(bits >> 24)
	buf[5] = byte(bits >> 16)
	buf[6] = byte(bits >> 8)
	buf[7] = byte(bits)
	s.writeBytes(buf[:])
}

// canonicalizeSet sorts members by their wire-encoded bytes ascending and
// rejects duplicates, per spec.md §4.3.
func canonicalizeSet(members []Value) ([]Value, error) {
	out := append([]Value(nil), members...)
	keys := make([][]byte, len(out))
	for i, m := range out {
		keys[i] = AppendCanonical(nil, m)
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return string(keys[idx[a]]) < string(keys[idx[b]])
	})

	sorted := make([]Value, len(out))
	sortedKeys := make([][]byte, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
		sortedKeys[i] = keys[j]
	}

	for i := 1; i < len(sorted); i++ {
		if string(sortedKeys[i-1]) == string(sortedKeys[i]) {
			return nil, errs.ErrNonCanonicalDuplicateMember
		}
	}

	return sorted, nil
}

// canonicalizeDict sorts entries by their key's wire-encoded bytes ascending
// and rejects duplicate keys, per spec.md §4.3.
func canonicalizeDict(entries []DictEntry) ([]DictEntry, error) {
	out := append([]DictEntry(nil), entries...)
	keys := make([][]byte, len(out))
	for i, e := range out {
		keys[i] = AppendCanonical(nil, e.Key)
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return string(keys[idx[a]]) < string(keys[idx[b]])
	})

	sorted := make([]DictEntry, len(out))
	sortedKeys := make([][]byte, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
		sortedKeys[i] = keys[j]
	}

	for i := 1; i < len(sorted); i++ {
		if string(sortedKeys[i-1]) == string(sortedKeys[i]) {
			return nil, errs.ErrNonCanonicalDuplicateKey
		}
	}

	return sorted, nil
}

// NewSet constructs a Set value, canonicalizing members into ascending
// wire-encoded order. It returns errs.ErrNonCanonicalDuplicateMember if two
// members share an encoding.
func NewSet(members []Value) (Value, error) {
	sorted, err := canonicalizeSet(members)
	if err != nil {
		return Value{}, err
	}

	return Value{kind: KindSet, elems: sorted}, nil
}

// NewDictionary constructs a Dictionary value, canonicalizing entries into
// ascending key-encoded order. It returns errs.ErrNonCanonicalDuplicateKey
// if two entries share a key encoding.
func NewDictionary(entries []DictEntry) (Value, error) {
	sorted, err := canonicalizeDict(entries)
	if err != nil {
		return Value{}, err
	}

	return Value{kind: KindDictionary, dict: sorted}, nil
}

// NewSetUnchecked constructs a Set value from members the caller guarantees
// are already in ascending wire-encoded order with no duplicates. It is
// used by the decoder, which verifies canonical ordering directly against
// the input buffer's raw bytes as it parses and so would otherwise pay to
// re-encode and re-sort values it already knows are in order.
func NewSetUnchecked(members []Value) Value {
	return Value{kind: KindSet, elems: members}
}

// NewDictionaryUnchecked is NewSetUnchecked for Dictionary entries.
func NewDictionaryUnchecked(entries []DictEntry) Value {
	return Value{kind: KindDictionary, dict: entries}
}
