package resolver

import (
	"context"

	pkgLog "task-command-interpreter/pkg/log"
)

// EntityResolver is the interface for fuzzy candidate resolution with
// session-scoped learning.
type EntityResolver interface {
	Resolve(ctx context.Context, query string, candidates []Candidate, sessionID string) Result
	RecordSelection(ctx context.Context, query, gid, name, sessionID string)
}

// Options tune the scoring thresholds. Zero values take the defaults.
type Options struct {
	MinConfidence   float64
	AmbiguityMargin float64
	LearnedBoost    float64
}

// Resolver scores caller-supplied candidates against a query.
type Resolver struct {
	l     pkgLog.Logger
	store SessionStore

	minConfidence   float64
	ambiguityMargin float64
	learnedBoost    float64
}

// Ensure Resolver implements EntityResolver interface
var _ EntityResolver = (*Resolver)(nil)

// New creates a new Resolver. The store is injected so tests can use
// isolated instances; pass NewLearningStore(...) in production wiring.
func New(l pkgLog.Logger, store SessionStore, opts Options) *Resolver {
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = DefaultMinConfidence
	}
	if opts.AmbiguityMargin <= 0 {
		opts.AmbiguityMargin = DefaultAmbiguityMargin
	}
	if opts.LearnedBoost <= 0 {
		opts.LearnedBoost = DefaultLearnedBoost
	}
	return &Resolver{
		l:               l,
		store:           store,
		minConfidence:   opts.MinConfidence,
		ambiguityMargin: opts.AmbiguityMargin,
		learnedBoost:    opts.LearnedBoost,
	}
}
