package resolver

import "time"

// Log prefixes
const (
	LogPrefixResolve = "internal.resolver.Resolve"
	LogPrefixRecord  = "internal.resolver.RecordSelection"
)

// Scoring configuration defaults.
const (
	// DefaultMinConfidence is the top-score floor below which the caller
	// should ask the user to disambiguate.
	DefaultMinConfidence = 0.5

	// DefaultAmbiguityMargin: two or more candidates within this margin
	// of the top score make the result ambiguous.
	DefaultAmbiguityMargin = 0.1

	// DefaultLearnedBoost is added to a candidate previously confirmed
	// for this (or a near-identical) query in the session. Kept strictly
	// below the ambiguity margin so learning breaks near-ties but never
	// overrides a substantially better textual match.
	DefaultLearnedBoost = 0.08

	// nearQueryDistance is the edit-distance bound for treating two
	// queries as the same learning key.
	nearQueryDistance = 2
)

// Session store sizing. The source system let histories grow without
// bound; bounded LRU eviction plus TTL expiry is the policy chosen here.
const (
	DefaultMaxSessions = 1024
	DefaultSessionTTL  = 12 * time.Hour
)
