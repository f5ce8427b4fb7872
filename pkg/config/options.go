package config

import (
	"log/slog"

	"github.com/dmitrymomot/refined/pkg/logger"
)

type options struct {
	envFiles []string
	prefix   string
	logger   *slog.Logger
}

// Option configures a single Load call.
type Option func(*options)

// WithEnvFiles loads the given .env files before parsing. Variables already
// present in the process environment are not overridden, and earlier files
// take precedence over later ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithPrefix prepends prefix to every variable name, so `env:"PORT"` reads
// APP_PORT with WithPrefix("APP_"). Types loaded with different prefixes are
// cached separately.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithLogger reports load outcomes to l. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
