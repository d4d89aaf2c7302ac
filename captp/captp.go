// Package captp implements the fast paths spec.md §4.8 carves out for the
// CapTP (Capability Transport Protocol) message shapes that dominate a
// Syrup deployment in practice: a handful of well-known Record labels
// ("op:deliver", "op:deliver-only", "op:listen", ...), small decimal
// descriptors (export/import/answer/position numbers), and a
// message-shape-keyed heuristic for sizing a decoder arena before the
// message body has been parsed. None of this changes the wire format or
// the canonical encoding; it only gives the encoder and decoder a cheaper
// route through cases they can recognize up front.
package captp

import (
	"github.com/ocapn/syrup/internal/hash"
	"github.com/ocapn/syrup/value"
)

// wellKnownLabels are the CapTP operation labels common enough to intern
// as their full wire encoding (length prefix, marker, bytes) rather than
// re-encoding the label string on every message.
var wellKnownLabels = []string{
	"op:deliver",
	"op:deliver-only",
	"op:pick",
	"op:listen",
	"op:abort",
	"op:gc-export",
	"op:gc-answer",
	"desc:export",
	"desc:import-object",
	"desc:import-promise",
	"desc:answer",
	"desc:sig-envelope",
}

// internedDescriptors maps each well-known label to its pre-encoded Symbol
// wire form, built once at init time via the general encoder so it can
// never drift from encode's output.
var internedDescriptors = buildInternedDescriptors()

// internedLabelHashes lets EncodeDescriptor (through isKnownLabel) reject an
// arbitrary label with a single xxHash64 computation and set lookup
// before touching internedDescriptors, the common case when a caller
// feeds encoder input that rarely names a well-known CapTP operation.
var internedLabelHashes = buildInternedLabelHashes()

func buildInternedDescriptors() map[string][]byte {
	m := make(map[string][]byte, len(wellKnownLabels))
	for _, label := range wellKnownLabels {
		m[label] = value.AppendCanonical(nil, value.NewSymbol(label))
	}

	return m
}

func buildInternedLabelHashes() map[uint64]struct{} {
	m := make(map[uint64]struct{}, len(wellKnownLabels))
	for _, label := range wellKnownLabels {
		m[hash.ID(label)] = struct{}{}
	}

	return m
}

// isKnownLabel reports whether label might be one of the interned
// well-known labels. A false result is exact; a true result still
// requires the caller to confirm against internedDescriptors, since a
// hash collision could give a false positive.
func isKnownLabel(label string) bool {
	_, ok := internedLabelHashes[hash.ID(label)]

	return ok
}

// EncodeDescriptor appends the wire encoding of a CapTP Record whose label
// is one of the interned well-known symbols to dst, skipping the general
// encoder's per-call symbol encoding for the label. n is the descriptor's
// single integer field (an export/import/answer number), written as an
// Integer. ok is false if label is not one of the interned well-known
// labels, in which case the caller should fall back to the general
// encoder.
func EncodeDescriptor(dst []byte, label string, n int64) (out []byte, ok bool) {
	if !isKnownLabel(label) {
		return dst, false
	}

	sym, found := internedDescriptors[label]
	if !found {
		return dst, false
	}

	dst = append(dst, '<')
	dst = append(dst, sym...)
	dst = value.AppendCanonical(dst, value.NewInteger(n))
	dst = append(dst, '>')

	return dst, true
}

// ParseDecimal parses a run of up to 4 ASCII decimal digits from the start
// of data, the size spec.md §4.8 identifies as covering the overwhelming
// majority of CapTP export/import/answer numbers and position indices.
// It returns the parsed value, the number of digit bytes consumed, and ok.
// ok is false if data does not begin with 1-4 decimal digits, or begins
// with a leading zero followed by another digit (non-canonical per
// spec.md §6.1); the caller should fall back to the general
// arbitrary-precision parser in either case, since both are correctness
// fallbacks rather than errors of this function.
func ParseDecimal(data []byte) (n int64, consumed int, ok bool) {
	i := 0
	for i < len(data) && i < 4 && data[i] >= '0' && data[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, 0, false
	}
	if i < len(data) && data[i] >= '0' && data[i] <= '9' {
		// A 5th digit follows: outside this fast path's range.
		return 0, 0, false
	}
	if i > 1 && data[0] == '0' {
		return 0, 0, false
	}

	var v int64
	for _, d := range data[:i] {
		v = v*10 + int64(d-'0')
	}

	return v, i, true
}

// messagePrefix is a well-known CapTP operation label paired with the
// arena byte budget spec.md §4.8 assigns to messages beginning with it.
type messagePrefix struct {
	label string
	bytes int
}

// arenaEstimates is ordered most-specific-first so a prefix match against
// a longer label (e.g. "op:deliver-only") is tried before its shorter
// sibling ("op:deliver").
var arenaEstimates = []messagePrefix{
	{"op:deliver-only", 128},
	{"op:deliver", 256},
	{"op:listen", 64},
}

// defaultArenaEstimate is used when data's label does not match any known
// CapTP message prefix.
const defaultArenaEstimate = 512

// EstimateArenaSize returns a heuristic byte budget for sizing a decode
// arena before data has been parsed, keyed on the Record label data opens
// with (if any). data is expected to be the start of a Record's wire
// encoding, i.e. beginning with '<'. The estimate only affects decoder
// performance; an undersized or oversized guess never affects the
// correctness of the decoded result, since arena.Arena falls back to
// ordinary allocation once its bump capacity is exhausted.
func EstimateArenaSize(data []byte) int {
	if len(data) == 0 || data[0] != '<' {
		return defaultArenaEstimate
	}

	for _, p := range arenaEstimates {
		if hasSymbolLabel(data[1:], p.label) {
			return p.bytes
		}
	}

	return defaultArenaEstimate
}

// hasSymbolLabel reports whether data begins with the canonical Symbol
// encoding of label (length prefix, ', bytes).
func hasSymbolLabel(data []byte, label string) bool {
	encoded := internedDescriptors[label]
	if encoded == nil {
		encoded = value.AppendCanonical(nil, value.NewSymbol(label))
	}

	return len(data) >= len(encoded) && string(data[:len(encoded)]) == string(encoded)
}
