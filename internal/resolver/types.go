package resolver

import "time"

// Candidate is a caller-supplied (gid, name, metadata) tuple eligible for
// fuzzy matching. Candidates are never invented by the resolver.
type Candidate struct {
	GID      string            `json:"gid"`
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Match pairs a candidate with its confidence score in [0, 1].
type Match struct {
	Candidate  Candidate `json:"candidate"`
	Confidence float64   `json:"confidence"`
}

// Result is the outcome of one resolution call. Matches are ordered by
// non-increasing confidence; Confidence is the top score.
type Result struct {
	Matches             []Match `json:"matches"`
	IsAmbiguous         bool    `json:"is_ambiguous"`
	NeedsDisambiguation bool    `json:"needs_disambiguation"`
	Confidence          float64 `json:"confidence"`
	Query               string  `json:"query"`
}

// SelectionRecord is one confirmed (query -> gid) pairing in a session's
// learning history.
type SelectionRecord struct {
	Query string
	GID   string
	Name  string
	At    time.Time
}
