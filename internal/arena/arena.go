// Package arena implements a bump allocator for the decoder's container
// slices ([]value.Value and []value.DictEntry), adapted from the teacher
// repository's sync.Pool-backed typed-slice pools
// (internal/pool/slice_pool.go) into a single caller-owned, reset-able
// arena rather than a process-wide pool, matching spec.md §5's "Arenas
// passed to the decoder are owned by the caller for the duration of any
// values returned from them" contract and §9's "must be reset-able so that
// a caller parsing many messages on a hot loop can reuse capacity without
// repeated initialization."
package arena

import "github.com/ocapn/syrup/value"

// defaultElemHint is used when a caller constructs an Arena without a
// byte-size hint, or the hint is too small to be useful.
const defaultElemHint = 64

// Arena is a bump allocator for value.Value and value.DictEntry slices.
// It is not safe for concurrent use; a single Arena is meant to back a
// single decode call (or be Reset between sequential decodes on a hot
// loop).
type Arena struct {
	valueSlab []value.Value
	valueUsed int

	entrySlab []value.DictEntry
	entryUsed int
}

// New creates an Arena pre-sized from byteHint, a heuristic total-byte
// estimate for the message being decoded (typically from
// captp.EstimateArenaSize). The hint only affects how many bump-allocated
// elements the arena can serve before falling back to ordinary allocation;
// it never affects correctness.
func New(byteHint int) *Arena {
	elemHint := byteHint / 32
	if elemHint < defaultElemHint {
		elemHint = defaultElemHint
	}

	return &Arena{
		valueSlab: make([]value.Value, 0, elemHint),
		entrySlab: make([]value.DictEntry, 0, elemHint/4+1),
	}
}

// AllocValues returns a zero-length, hint-capacity []value.Value. If the
// arena's backing slab has room, the returned slice is a bump-allocated
// sub-slice of it (a three-index slice expression, so appends up to hint
// elements land in the arena's own memory without reallocating); otherwise
// it falls back to a fresh allocation. Either way the result behaves like
// an ordinary slice to the caller.
func (a *Arena) AllocValues(hint int) []value.Value {
	if hint <= 0 {
		hint = 4
	}
	if a.valueUsed+hint <= cap(a.valueSlab) {
		s := a.valueSlab[a.valueUsed:a.valueUsed:a.valueUsed+hint]
		a.valueUsed += hint

		return s
	}

	return make([]value.Value, 0, hint)
}

// AllocEntries is AllocValues for []value.DictEntry.
func (a *Arena) AllocEntries(hint int) []value.DictEntry {
	if hint <= 0 {
		hint = 4
	}
	if a.entryUsed+hint <= cap(a.entrySlab) {
		s := a.entrySlab[a.entryUsed:a.entryUsed:a.entryUsed+hint]
		a.entryUsed += hint

		return s
	}

	return make([]value.DictEntry, 0, hint)
}

// Reset reclaims the arena's bump offsets in O(1) so its backing slabs can
// be reused by the next decode. Values allocated before Reset must not be
// used afterwards; their backing memory may be overwritten.
func (a *Arena) Reset() {
	a.valueUsed = 0
	a.entryUsed = 0
}

// Used reports how many elements have been bump-allocated from the
// arena's value and entry slabs since construction or the last Reset. It
// exists for callers (and tests) that want to confirm an arena is
// actually absorbing allocation, not just being passed around unused.
func (a *Arena) Used() (values, entries int) {
	return a.valueUsed, a.entryUsed
}
