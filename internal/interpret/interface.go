package interpret

import (
	"context"

	"task-command-interpreter/internal/model"
)

// UseCase defines the business logic interface for the interpret domain.
type UseCase interface {
	// Interpret turns a free-text request into an operation descriptor.
	Interpret(ctx context.Context, sc model.Scope, input InterpretInput) (InterpretOutput, error)

	// Resolve fuzzy-matches a query against caller-supplied candidates
	// and generates the disambiguation outcome.
	Resolve(ctx context.Context, sc model.Scope, input ResolveInput) (ResolveOutput, error)

	// RecordSelection stores a user-confirmed selection in the session's
	// learning memory.
	RecordSelection(ctx context.Context, sc model.Scope, input SelectionInput) error
}
