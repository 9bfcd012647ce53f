package matching

import (
	"context"

	"github.com/lvlath-labs/matching/core"
)

// Matcher runs one weighted general-graph matching algorithm against a
// *core.Graph: construct with one of
// NewEdmonds/NewGabow/NewMicaliGabow, call Run once, then read the result
// via GetMatching.
type Matcher struct {
	cfg     config
	variant Variant

	runner *skeletonRunner
	result *Matching
	ran    bool
}

func newMatcher(variant Variant, opts ...Option) *Matcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Matcher{cfg: cfg, variant: variant}
}

// NewEdmonds constructs a Matcher using the full-scan delta strategy.
func NewEdmonds(opts ...Option) *Matcher {
	return newMatcher(newEdmondsVariant(), opts...)
}

// NewGabow constructs a Matcher using per-blossom best-edges tables.
func NewGabow(opts ...Option) *Matcher {
	return newMatcher(newGabowVariant(), opts...)
}

// NewMicaliGabow constructs a Matcher using the pq-backed priority
// structures for delta discovery.
func NewMicaliGabow(opts ...Option) *Matcher {
	return newMatcher(newMicaliGabowVariant(), opts...)
}

// Run executes the matcher against g to completion. g must not be mutated
// concurrently with Run (the algorithm itself is single-threaded;
// concurrency-safety is g's responsibility, inherited from *core.Graph's
// own locking).
func (m *Matcher) Run(ctx context.Context, g *core.Graph) (*Matching, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	runner, err := newSkeletonRunner(g, m.cfg, m.variant)
	if err != nil {
		return nil, err
	}
	m.runner = runner
	result, err := runner.run(ctx)
	if err != nil {
		return nil, err
	}
	m.result = result
	m.ran = true
	return result, nil
}

// GetMatching returns the result of the most recent Run, or ErrNotRun if
// Run has not completed successfully yet.
func (m *Matcher) GetMatching() (*Matching, error) {
	if !m.ran {
		return nil, ErrNotRun
	}
	return m.result, nil
}

// CheckConsistency re-validates the internal dual/matching invariants
// against the state left by the most recent Run, independent of whether
// WithConsistencyChecks() was set at construction.
func (m *Matcher) CheckConsistency() error {
	if !m.ran || m.runner == nil {
		return ErrNotRun
	}
	return m.runner.checkConsistency()
}

// DebugState renders the current blossom arena, for diagnostics.
func (m *Matcher) DebugState() string {
	if m.runner == nil {
		return ""
	}
	return m.runner.DebugState()
}
