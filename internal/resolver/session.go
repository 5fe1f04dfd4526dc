package resolver

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SessionStore is the resolver's learning memory: confirmed
// (query -> gid) selections per session. It is an explicit, injectable
// component so tests can instantiate isolated stores.
type SessionStore interface {
	// Selections returns a snapshot of the session's history. Missing
	// sessions yield nil.
	Selections(sessionID string) []SelectionRecord

	// RecordSelection appends one confirmed selection. Idempotent for
	// repeated identical calls.
	RecordSelection(query, gid, name, sessionID string)
}

// LearningStore keeps per-session histories behind an expirable LRU so
// learning is bounded: least-recently-used sessions are evicted and idle
// sessions expire after the TTL.
type LearningStore struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *sessionHistory]
}

var _ SessionStore = (*LearningStore)(nil)

// sessionHistory is one session's append-only record list. Appends are
// serialized per session so concurrent writers never interleave into a
// corrupted entry.
type sessionHistory struct {
	mu      sync.Mutex
	records []SelectionRecord
}

// NewLearningStore creates a bounded session store. maxSessions and ttl
// fall back to the package defaults when zero.
func NewLearningStore(maxSessions int, ttl time.Duration) *LearningStore {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &LearningStore{
		sessions: expirable.NewLRU[string, *sessionHistory](maxSessions, nil, ttl),
	}
}

// Selections returns a copy of the session's history.
func (s *LearningStore) Selections(sessionID string) []SelectionRecord {
	if sessionID == "" {
		return nil
	}

	s.mu.Lock()
	history, ok := s.sessions.Get(sessionID)
	s.mu.Unlock()
	if !ok {
		return nil
	}

	history.mu.Lock()
	defer history.mu.Unlock()
	out := make([]SelectionRecord, len(history.records))
	copy(out, history.records)
	return out
}

// RecordSelection appends one confirmed selection to the session.
// Repeated identical calls leave the observable state unchanged.
func (s *LearningStore) RecordSelection(query, gid, name, sessionID string) {
	if sessionID == "" || query == "" || gid == "" {
		return
	}

	s.mu.Lock()
	history, ok := s.sessions.Get(sessionID)
	if !ok {
		history = &sessionHistory{}
		s.sessions.Add(sessionID, history)
	}
	s.mu.Unlock()

	normalized := normalizeQuery(query)

	history.mu.Lock()
	defer history.mu.Unlock()
	for _, r := range history.records {
		if r.Query == normalized && r.GID == gid && r.Name == name {
			return
		}
	}
	history.records = append(history.records, SelectionRecord{
		Query: normalized,
		GID:   gid,
		Name:  name,
		At:    time.Now(),
	})
}

// normalizeQuery is the learning key form of a query.
func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// learnedGIDs returns the gids previously confirmed for this query or a
// near-identical one (small edit distance) in the given history.
func learnedGIDs(history []SelectionRecord, query string) map[string]bool {
	if len(history) == 0 {
		return nil
	}
	normalized := normalizeQuery(query)

	out := make(map[string]bool)
	for _, r := range history {
		if r.Query == normalized || levenshteinDistance(r.Query, normalized) <= nearQueryDistance {
			out[r.GID] = true
		}
	}
	return out
}
