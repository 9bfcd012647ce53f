package matching

import "errors"

// Sentinel errors returned by package matching. Following this module's
// existing convention (see core's sentinel errors), programming
// errors are reported as values rather than panics wherever the caller
// could reasonably check and recover.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrNotRun indicates GetMatching was called before Run completed
	// successfully.
	ErrNotRun = errors.New("matching: GetMatching called before a successful Run")

	// ErrNegativeWeight indicates a weighted variant encountered a
	// negative edge weight during its up-front validation pass.
	ErrNegativeWeight = errors.New("matching: negative edge weight encountered")

	// ErrDirectedGraph indicates a directed graph was passed; matching is
	// only defined over undirected graphs.
	ErrDirectedGraph = errors.New("matching: graph must be undirected")

	// ErrInconsistentState is returned by CheckConsistency, and by Run
	// when WithConsistencyChecks is enabled, when an internal invariant
	// does not hold after a stage.
	ErrInconsistentState = errors.New("matching: internal invariant violated")

	// ErrCanceled indicates the supplied context was canceled at a stage
	// boundary before the algorithm reached completion.
	ErrCanceled = errors.New("matching: canceled")
)
