// Package logzap adapts go.uber.org/zap into a cidcache.Logger.
package logzap

import (
	"go.uber.org/zap"

	"github.com/ocapn/syrup/cidcache"
)

// Logger wraps a *zap.Logger as a cidcache.Logger.
type Logger struct{ L *zap.Logger }

func (l Logger) Debug(msg string, f cidcache.Fields) { l.L.Debug(msg, fields(f)...) }
func (l Logger) Info(msg string, f cidcache.Fields)  { l.L.Info(msg, fields(f)...) }
func (l Logger) Warn(msg string, f cidcache.Fields)  { l.L.Warn(msg, fields(f)...) }
func (l Logger) Error(msg string, f cidcache.Fields) { l.L.Error(msg, fields(f)...) }

func fields(f cidcache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}

	return out
}
