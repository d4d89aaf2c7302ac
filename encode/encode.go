// Package encode exposes the public, allocation-conscious Syrup encoder
// API over value.Value's internal canonical-encoding engine (spec.md
// §4.2).
package encode

import (
	"io"

	"github.com/ocapn/syrup/errs"
	"github.com/ocapn/syrup/value"
)

// Append appends v's canonical wire encoding to dst, growing dst as
// needed, and returns the resulting slice. This is the allocating form;
// for a zero-reallocation encode into a caller-owned buffer, use Into.
func Append(dst []byte, v value.Value) []byte {
	return value.AppendCanonical(dst, v)
}

// Into writes v's canonical wire encoding into buf without ever growing or
// reallocating it. It returns the number of bytes written, or
// errs.ErrBufferTooSmall if buf was not large enough to hold v's encoding;
// on that error, buf's contents are left partially written and should be
// discarded. Into is not allocation-free: the encoder still makes small
// internal allocations of its own (its output sink, and the decimal digits
// of integers and length prefixes).
func Into(buf []byte, v value.Value) (int, error) {
	n, ok := value.EncodeBounded(buf, v)
	if !ok {
		return 0, errs.ErrBufferTooSmall
	}

	return n, nil
}

// To streams v's canonical wire encoding to w without materializing the
// full encoding in memory, the same technique the CID function and Hash
// use internally.
func To(w io.Writer, v value.Value) error {
	return value.WriteCanonical(w, v)
}
