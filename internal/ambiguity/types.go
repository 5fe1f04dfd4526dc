package ambiguity

import "task-command-interpreter/internal/resolver"

// Kind classifies a resolution outcome for the user-facing reply.
type Kind string

const (
	KindNone     Kind = "none"
	KindSingle   Kind = "single"
	KindMultiple Kind = "multiple"
)

// Context is the input to message generation: a resolution result plus
// the resource type searched and any narrowing search context (project or
// workspace name).
type Context struct {
	Result        resolver.Result
	ResourceType  string // "task", "project", "user", ...
	SearchContext string // optional, e.g. a project name the search was scoped to
}

// Suggestion is one numbered candidate offered back to the user.
type Suggestion struct {
	GID         string `json:"gid"`
	DisplayText string `json:"display_text"`
	Context     string `json:"context,omitempty"` // e.g. "in project Alpha, completed"
}

// Resolved is the generated disambiguation outcome: a kind, a message,
// and for KindMultiple a capped ordered suggestion list.
type Resolved struct {
	Kind        Kind         `json:"kind"`
	GID         string       `json:"gid,omitempty"`
	Message     string       `json:"message"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}
