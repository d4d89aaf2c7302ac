package decode

import (
	"errors"

	"github.com/ocapn/syrup/errs"
	"github.com/ocapn/syrup/value"
)

// Stream is an incremental decoder for a byte stream carrying zero or more
// concatenated Syrup values, for transports (spec.md §4.5) that deliver
// data in arbitrary chunks rather than as one complete buffer. It never
// blocks: Next returns errs.ErrNeedMoreInput instead, and the caller feeds
// more bytes and calls Next again.
type Stream struct {
	cfg *config
	buf []byte
}

// NewStream constructs a Stream with the given options. The same Option
// values accepted by Decode apply here.
func NewStream(opts ...Option) (*Stream, error) {
	c, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return &Stream{cfg: c}, nil
}

// Feed appends newly received bytes to the stream's internal buffer,
// copying them in; the caller's data slice may be reused immediately
// after Feed returns.
func (s *Stream) Feed(data []byte) {
	s.buf = append(s.buf, data...)
}

// Next attempts to decode one complete value from the front of the
// stream's buffered bytes. It returns errs.ErrNeedMoreInput if the
// buffered bytes are a valid but incomplete prefix of a value; the caller
// should Feed more data and retry. Any other error indicates the buffered
// bytes are not a valid prefix of any Syrup value and the stream should be
// abandoned.
func (s *Stream) Next() (value.Value, error) {
	if len(s.buf) == 0 {
		return value.Value{}, errs.ErrNeedMoreInput
	}

	v, rest, err := decodeValue(s.buf, s.cfg)
	if err != nil {
		if errors.Is(err, errs.ErrTruncated) {
			return value.Value{}, errs.ErrNeedMoreInput
		}

		return value.Value{}, err
	}

	s.buf = rest

	return v, nil
}

// Buffered returns the number of bytes currently held by the stream that
// have not yet been consumed by a successful Next call.
func (s *Stream) Buffered() int { return len(s.buf) }
