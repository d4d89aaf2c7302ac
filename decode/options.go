package decode

import (
	"github.com/ocapn/syrup/internal/arena"
	"github.com/ocapn/syrup/internal/options"
)

// config holds a decode call's resolved options.
type config struct {
	validateUTF8 bool
	copyText     bool
	arena        *arena.Arena
}

// Option configures a Decode or Stream call.
type Option = options.Option[*config]

// WithUTF8Validation rejects String payloads that are not valid UTF-8 with
// errs.ErrInvalidUTF8. It is off by default: spec.md §4.4 treats UTF-8
// validation of String payloads as an optional, explicitly-requested
// decoder behavior rather than a mandatory canonicity check, since the
// Bytes kind exists precisely for payloads that are not meant to be text.
func WithUTF8Validation() Option {
	return options.NoError[*config](func(c *config) { c.validateUTF8 = true })
}

// WithOwnedText forces String, Symbol, and Bytes values to be constructed
// as private copies rather than zero-copy views into the input buffer.
// Use this when decoded values must outlive the buffer passed to Decode.
func WithOwnedText() Option {
	return options.NoError[*config](func(c *config) { c.copyText = true })
}

// WithArena routes the decoder's container-slice allocation through a,
// reducing allocation on repeated decodes when a is Reset between calls.
// See package arena.
func WithArena(a *arena.Arena) Option {
	return options.NoError[*config](func(c *config) { c.arena = a })
}

func resolve(opts []Option) (*config, error) {
	c := &config{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
