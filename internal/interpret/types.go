package interpret

import (
	"task-command-interpreter/internal/ambiguity"
	"task-command-interpreter/internal/intent"
	"task-command-interpreter/internal/resolver"
)

// InterpretInput is the input for intent interpretation.
// The session id is carried in model.Scope, not here.
type InterpretInput struct {
	Text string // free-text user request
}

// InterpretOutput is the structured operation descriptor (or the Unknown
// variant with a re-prompt message).
type InterpretOutput struct {
	Intent intent.ParsedIntent
}

// ResolveInput is the input for entity resolution. Candidates are always
// fetched by the caller; this core never fetches them itself.
type ResolveInput struct {
	Query         string
	Candidates    []resolver.Candidate
	ResourceType  string
	SearchContext string
}

// ResolveOutput pairs the scored resolution with the generated
// disambiguation outcome.
type ResolveOutput struct {
	Result    resolver.Result
	Ambiguity ambiguity.Resolved
}

// SelectionInput records a user-confirmed selection for the session's
// learning memory.
type SelectionInput struct {
	Query string
	GID   string
	Name  string
}
