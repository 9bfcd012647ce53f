package matching

import "github.com/rs/zerolog"

// config holds the functional-options-configurable behavior of a Matcher,
// mirroring the functional-options pattern used throughout this module (see
// core.GraphOption, builder.BuilderOption).
type config struct {
	consistencyChecks bool
	logger            zerolog.Logger
}

// Option configures a Matcher at construction time.
type Option func(*config)

// WithConsistencyChecks enables checkConsistency() after every stage,
// returning ErrInconsistentState from Run at the first violated invariant.
// Off by default; this is the runtime equivalent of the debug-macro-gated
// consistency assertions in the algorithm this package implements.
func WithConsistencyChecks() Option {
	return func(c *config) {
		c.consistencyChecks = true
	}
}

// WithLogger overrides the package default zerolog.Logger used for stage,
// substage and augmentation tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// defaultConfig returns the defaults (no consistency checks, the package
// default logger) that callers override selectively via Option values.
func defaultConfig() config {
	return config{
		consistencyChecks: false,
		logger:            defaultLogger,
	}
}
