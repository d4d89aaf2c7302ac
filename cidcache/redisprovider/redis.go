// Package redisprovider adapts redis/go-redis/v9 into a cidcache.Provider,
// for a CID-keyed cache shared across processes.
package redisprovider

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ocapn/syrup/cidcache"
)

// Provider wraps a Redis client as a cidcache.Provider.
type Provider struct {
	rdb goredis.UniversalClient
}

var _ cidcache.Provider = (*Provider)(nil)

// ErrNilClient is returned by New when Config.Client is nil.
var ErrNilClient = errors.New("redisprovider: nil client")

// Config configures a Provider.
type Config struct {
	Client goredis.UniversalClient
}

// New constructs a Provider.
func New(cfg Config) (*Provider, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	return &Provider{rdb: cfg.Client}, nil
}

func (p *Provider) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return b, true, nil
}

func (p *Provider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return p.rdb.Set(ctx, key, value, ttl).Err()
}

func (p *Provider) Del(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, key).Err()
}

func (p *Provider) Close(context.Context) error {
	return p.rdb.Close()
}
