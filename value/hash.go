package value

import "github.com/cespare/xxhash/v2"

// Hash returns a 64-bit hash of v derived from its canonical encoding, such
// that Equal(a, b) implies Hash(a) == Hash(b) (spec.md §4.1, §8). The
// encoding is streamed directly into an xxHash64 digest rather than
// materialized first, the same streaming-hasher technique spec.md §4.6
// recommends for the CID function.
func Hash(v Value) uint64 {
	d := xxhash.New()
	// xxhash.Digest.Write never returns an error, so the one from
	// WriteCanonical can only originate from a non-io.Writer sink, which
	// cannot happen here.
	_ = WriteCanonical(d, v)

	return d.Sum64()
}

// Hash is the method form of the package-level Hash function.
func (v Value) Hash() uint64 { return Hash(v) }
