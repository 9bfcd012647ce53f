package matching

import (
	"os"

	"github.com/rs/zerolog"
)

// defaultLogger is the package-wide fallback logger, overridable per
// Matcher via WithLogger. Structured logging follows the pattern observed
// in the retrieval corpus's graph-algorithm packages: zerolog with a
// component field, Debug for per-stage/substage tracing, Warn for
// consistency-check failures.
var defaultLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().
	Timestamp().
	Str("component", "matching").
	Logger().
	Level(zerolog.InfoLevel)

func (r *skeletonRunner) logStage(stage int) {
	r.log.Debug().Int("stage", stage).Str("variant", r.variant.Name()).Msg("stage start")
}

func (r *skeletonRunner) logAugment(pathLen int) {
	r.log.Debug().Int("path_edges", pathLen).Msg("augmenting path found")
}

func (r *skeletonRunner) logDelta(kind int, delta int64) {
	r.log.Debug().Int("delta_kind", kind).Int64("delta", delta).Msg("dual adjustment")
}

func (r *skeletonRunner) logInconsistency(reason string) {
	r.log.Warn().Str("reason", reason).Msg("consistency check failed")
}
