package resolver

import (
	"context"
	"sort"
)

// Resolve turns a query into scored candidate matches, biased by the
// session's learning memory. Candidates are always supplied by the
// caller; an empty list yields an empty, unambiguous result.
func (r *Resolver) Resolve(ctx context.Context, query string, candidates []Candidate, sessionID string) Result {
	result := Result{
		Matches: []Match{},
		Query:   query,
	}
	if len(candidates) == 0 {
		return result
	}

	learned := learnedGIDs(r.store.Selections(sessionID), query)

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		score := textScore(query, c.Name)
		if learned[c.GID] {
			score += r.learnedBoost
			if score > 1.0 {
				score = 1.0
			}
		}
		matches = append(matches, Match{Candidate: c, Confidence: score})
	}

	// Non-increasing confidence; stable so equal scores keep the
	// caller's candidate order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	result.Matches = matches
	result.Confidence = matches[0].Confidence

	withinMargin := 0
	for _, m := range matches {
		if result.Confidence-m.Confidence <= r.ambiguityMargin {
			withinMargin++
		}
	}
	result.IsAmbiguous = withinMargin >= 2
	result.NeedsDisambiguation = result.IsAmbiguous || result.Confidence < r.minConfidence

	r.l.Infof(ctx, "%s: query=%q candidates=%d top=%.2f ambiguous=%v",
		LogPrefixResolve, query, len(candidates), result.Confidence, result.IsAmbiguous)

	return result
}

// RecordSelection stores a confirmed (query -> gid) pairing so later
// resolutions of the same query in this session prefer that candidate.
func (r *Resolver) RecordSelection(ctx context.Context, query, gid, name, sessionID string) {
	r.store.RecordSelection(query, gid, name, sessionID)
	r.l.Infof(ctx, "%s: session=%s query=%q gid=%s", LogPrefixRecord, sessionID, query, gid)
}
