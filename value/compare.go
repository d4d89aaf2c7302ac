package value

import "bytes"

// Ordering is the result of comparing two values, matching spec.md §4.1's
// {Less, Equal, Greater} vocabulary.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare returns the total order of a relative to b. The order is defined
// to equal lexicographic byte order on the values' canonical encodings
// (spec.md §4.1); this implementation computes that directly rather than
// short-circuiting on kind, since several kinds (Integer, String, Symbol,
// Bytes) share the same leading byte class (an ASCII digit) in the wire
// grammar and cannot be ordered correctly without comparing the encoded
// bytes.
func Compare(a, b Value) Ordering {
	ea := AppendCanonical(nil, a)
	eb := AppendCanonical(nil, b)

	switch bytes.Compare(ea, eb) {
	case -1:
		return Less
	case 1:
		return Greater
	default:
		return Equal
	}
}

// Equal reports whether a and b have identical canonical encodings.
func Equal(a, b Value) bool {
	return Compare(a, b) == Equal
}

// Compare is the method form of the package-level Compare function.
func (v Value) Compare(other Value) Ordering { return Compare(v, other) }

// Equal is the method form of the package-level Equal function.
func (v Value) Equal(other Value) bool { return Equal(v, other) }
