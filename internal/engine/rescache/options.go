package rescache

import (
	"github.com/spf13/afero"
	"go.trai.ch/rescache/internal/core/ports"
)

// Option configures a Cache.
type Option func(*Cache)

// WithProber sets the file prober used for required file references.
// The default probes the operating system filesystem.
func WithProber(p ports.FileProber) Option {
	return func(c *Cache) {
		c.prober = p
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l ports.Logger) Option {
	return func(c *Cache) {
		c.logger = l
	}
}

// WithStrict makes API misuse panic instead of logging a warning.
// Misuse is an empty resource ID or a diagnostics call while work is pending.
func WithStrict(strict bool) Option {
	return func(c *Cache) {
		c.strict = strict
	}
}

// WithMetrics records cache activity into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

func osProber() ports.FileProber {
	fs := afero.NewOsFs()
	return ports.FileProberFunc(func(path string) (bool, error) {
		return afero.Exists(fs, path)
	})
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}
