// Package hash provides a single xxHash64 helper shared by packages that
// need a cheap fingerprint of a short string, such as captp's well-known
// label pre-filter.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
