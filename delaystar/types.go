// Package delaystar defines options, statistics, and sentinel errors for
// the A*-with-Delay search engine.
package delaystar

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilEnvironment indicates that New was given a nil environment.
	ErrNilEnvironment = errors.New("delaystar: environment is nil")

	// ErrNotInitialized indicates Step was called before Init seeded the
	// search with a start and goal.
	ErrNotInitialized = errors.New("delaystar: search not initialized")
)

// Stats holds the expansion counters of one search. Counters reset on
// Init and only ever grow during a run.
type Stats struct {
	// NodesExpanded counts scheduler selections that ran a full
	// expansion body. Selecting the goal ends the search and is not
	// counted.
	NodesExpanded int

	// NodesTouched counts successor visits across all expansions.
	NodesTouched int

	// NodesReopened counts nodes drawn from the delay queue, i.e. closed
	// nodes whose g-cost improved and that earned a second expansion.
	NodesReopened int
}

// Options configures the engine. Zero value semantics: discard logging.
type Options struct {
	// Logger receives a Debug-level trace of every expansion and frontier
	// migration. Defaults to a discard logger.
	Logger logrus.FieldLogger
}

// Option mutates Options; pass to New.
type Option func(*Options)

// WithLogger routes the expansion trace to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the engine defaults: a logger that writes
// nowhere.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}
