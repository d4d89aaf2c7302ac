// Package ristretto adapts dgraph-io/ristretto into a cidcache.Provider,
// for an in-process cache of encoded values keyed by CID.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/ocapn/syrup/cidcache"
)

// Provider wraps a ristretto.Cache as a cidcache.Provider.
type Provider struct {
	c *rc.Cache
}

var _ cidcache.Provider = (*Provider)(nil)

// Config mirrors the ristretto.Config fields a CID cache actually needs;
// per-entry cost is fixed at 1 since cidcache does not track entry size.
type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
}

// New constructs a Provider.
func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}

	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{c: c}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}

	b, _ := v.([]byte)
	if b == nil {
		p.c.Del(key)

		return nil, false, nil
	}

	return b, true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	p.c.SetWithTTL(key, value, 1, ttl)

	return nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)

	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()

	return nil
}
