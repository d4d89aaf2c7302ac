// Package cid computes the content identifier spec.md §4.6 defines over a
// value's canonical encoding: the SHA-256 digest of the exact bytes
// value.AppendCanonical would produce, computed without materializing them
// by streaming the encoding through the hasher the same way value.Hash
// streams it through xxHash.
package cid

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/ocapn/syrup/value"
)

// Size is the byte length of a CID.
const Size = sha256.Size

// CID is a content identifier: the SHA-256 digest of a value's canonical
// encoding.
type CID [Size]byte

// String returns the lowercase hex encoding of c, the form spec.md §4.6's
// cross-language verification vectors use.
func (c CID) String() string {
	return hex.EncodeToString(c[:])
}

// Sum computes the CID of v. The standard library's crypto/sha256 is used
// directly rather than a third-party hash package: it is the
// implementation Go's own toolchain ships and verifies against the NIST
// test vectors, and spec.md §4.6 pins SHA-256 specifically rather than
// leaving the hash function to the implementation, so there is no
// algorithm choice here for a third-party library to add value to (see
// DESIGN.md).
func Sum(v value.Value) (CID, error) {
	h := sha256.New()
	if err := value.WriteCanonical(h, v); err != nil {
		return CID{}, err
	}

	var out CID
	h.Sum(out[:0])

	return out, nil
}
