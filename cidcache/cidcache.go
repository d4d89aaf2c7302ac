// Package cidcache is the CID-keyed cache spec.md's Design Notes call out:
// CapTP/Syrup deployments repeatedly re-serialize and re-hash the same
// small set of descriptor/export values, so caching a value's encoded
// bytes under its content identifier avoids redundant encode-and-hash work
// for repeated values. The design is adapted from the cascache
// repository's Provider/Logger split: Provider is the storage
// abstraction (in-process, Redis, or otherwise), and Logger is a tiny
// leveled interface so the cache's own diagnostics plug into whatever
// logging stack the host application uses. There is no pluggable codec:
// values are always stored as their canonical Syrup encoding.
package cidcache

import (
	"context"
	"fmt"
	"time"

	"github.com/ocapn/syrup/cid"
	"github.com/ocapn/syrup/decode"
	"github.com/ocapn/syrup/value"
)

// Provider is the storage abstraction Cache is built on. Implementations
// must be byte-for-byte transparent: Get must return exactly the bytes a
// prior Set wrote for the same key, with no re-encoding or mutation.
type Provider interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Close(ctx context.Context) error
}

// Fields is a minimal structured field map for Logger calls.
type Fields map[string]any

// Logger is a tiny leveled logger. A nil Logger in Options disables
// logging.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards every call.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// Options configures a Cache.
type Options struct {
	Provider Provider
	Logger   Logger
	TTL      time.Duration
}

const defaultTTL = 10 * time.Minute

// Cache stores a value's canonical encoding under its hex-encoded CID, so
// a repeated value (a descriptor, an interned export number, a commonly
// re-sent Record) can be fetched without re-walking and re-hashing it.
type Cache struct {
	provider Provider
	log      Logger
	ttl      time.Duration
}

// New constructs a Cache. Provider is required.
func New(opts Options) (*Cache, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("cidcache: provider is required")
	}

	log := opts.Logger
	if log == nil {
		log = NopLogger{}
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Cache{provider: opts.Provider, log: log, ttl: ttl}, nil
}

// Put computes v's CID, encodes v, and stores the encoding under the CID's
// hex string. It returns the CID so the caller can later Get the same
// bytes back without re-encoding v.
func (c *Cache) Put(ctx context.Context, v value.Value) (cid.CID, error) {
	sum, err := cid.Sum(v)
	if err != nil {
		return cid.CID{}, err
	}

	key := sum.String()
	encoded := value.AppendCanonical(nil, v)

	if err := c.provider.Set(ctx, key, encoded, c.ttl); err != nil {
		c.log.Warn("cidcache: set failed", Fields{"key": key, "error": err.Error()})

		return cid.CID{}, err
	}
	c.log.Debug("cidcache: put", Fields{"key": key, "bytes": len(encoded)})

	return sum, nil
}

// GetEncoded returns the raw canonical encoding previously stored under
// id, without decoding it.
func (c *Cache) GetEncoded(ctx context.Context, id cid.CID) ([]byte, bool, error) {
	key := id.String()
	encoded, ok, err := c.provider.Get(ctx, key)
	if err != nil {
		c.log.Warn("cidcache: get failed", Fields{"key": key, "error": err.Error()})

		return nil, false, err
	}
	if !ok {
		c.log.Debug("cidcache: miss", Fields{"key": key})
	}

	return encoded, ok, nil
}

// Get returns the value previously stored under id, reconstructed via
// decode.Decode from the cached canonical encoding. Use GetEncoded instead
// when the caller only needs the raw bytes (e.g. to forward them over the
// wire) and decoding would be wasted work.
func (c *Cache) Get(ctx context.Context, id cid.CID, opts ...decode.Option) (value.Value, bool, error) {
	encoded, ok, err := c.GetEncoded(ctx, id)
	if err != nil || !ok {
		return value.Value{}, ok, err
	}

	v, _, err := decode.Decode(encoded, opts...)
	if err != nil {
		c.log.Warn("cidcache: decode failed", Fields{"key": id.String(), "error": err.Error()})

		return value.Value{}, false, err
	}

	return v, true, nil
}

// Close releases the underlying Provider's resources.
func (c *Cache) Close(ctx context.Context) error {
	return c.provider.Close(ctx)
}
