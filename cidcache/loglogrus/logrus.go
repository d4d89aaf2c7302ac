// Package loglogrus adapts sirupsen/logrus into a cidcache.Logger.
package loglogrus

import (
	"github.com/sirupsen/logrus"

	"github.com/ocapn/syrup/cidcache"
)

// Logger wraps a *logrus.Entry as a cidcache.Logger.
type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f cidcache.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f cidcache.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f cidcache.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f cidcache.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }
