package resolver_test

import (
	"context"
	"testing"
	"time"

	"task-command-interpreter/internal/resolver"
)

func newTestResolver() *resolver.Resolver {
	store := resolver.NewLearningStore(16, time.Minute)
	return resolver.New(&mockLogger{}, store, resolver.Options{})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Candidates", func(t *testing.T) {
		r := newTestResolver()
		result := r.Resolve(ctx, "Marketing", nil, "s1")
		if result.Matches == nil || len(result.Matches) != 0 {
			t.Errorf("Matches = %v, want empty non-nil slice", result.Matches)
		}
		if result.IsAmbiguous || result.NeedsDisambiguation {
			t.Errorf("flags = (%v, %v), want (false, false)", result.IsAmbiguous, result.NeedsDisambiguation)
		}
		if result.Query != "Marketing" {
			t.Errorf("Query = %q, want %q", result.Query, "Marketing")
		}
	})

	t.Run("Exact Match Is Confident And Unambiguous", func(t *testing.T) {
		r := newTestResolver()
		candidates := []resolver.Candidate{
			{GID: "1111111111111111", Name: "Deploy website"},
			{GID: "2222222222222222", Name: "Deploy backend"},
		}
		result := r.Resolve(ctx, "Deploy website", candidates, "s1")
		if result.Confidence != 1.0 {
			t.Errorf("Confidence = %v, want 1.0", result.Confidence)
		}
		if result.Matches[0].Candidate.GID != "1111111111111111" {
			t.Errorf("top match = %s, want the exact-name candidate", result.Matches[0].Candidate.GID)
		}
		if result.IsAmbiguous || result.NeedsDisambiguation {
			t.Errorf("flags = (%v, %v), want (false, false)", result.IsAmbiguous, result.NeedsDisambiguation)
		}
	})

	t.Run("Near Scores Are Ambiguous", func(t *testing.T) {
		r := newTestResolver()
		candidates := []resolver.Candidate{
			{GID: "1111111111111111", Name: "Marketing Plan"},
			{GID: "2222222222222222", Name: "Marketing Budget"},
		}
		result := r.Resolve(ctx, "Marketing", candidates, "s1")
		if !result.IsAmbiguous {
			t.Error("IsAmbiguous = false, want true")
		}
		if !result.NeedsDisambiguation {
			t.Error("NeedsDisambiguation = false, want true")
		}
		if len(result.Matches) != 2 {
			t.Fatalf("len(Matches) = %d, want 2", len(result.Matches))
		}
	})

	t.Run("Low Confidence Needs Disambiguation", func(t *testing.T) {
		r := newTestResolver()
		candidates := []resolver.Candidate{
			{GID: "1111111111111111", Name: "Marketing Plan"},
		}
		result := r.Resolve(ctx, "zzzz", candidates, "s1")
		if result.IsAmbiguous {
			t.Error("IsAmbiguous = true, want false for a single candidate")
		}
		if !result.NeedsDisambiguation {
			t.Error("NeedsDisambiguation = false, want true below min confidence")
		}
	})

	t.Run("Matches Sorted Non Increasing", func(t *testing.T) {
		r := newTestResolver()
		candidates := []resolver.Candidate{
			{GID: "1111111111111111", Name: "Something else entirely"},
			{GID: "2222222222222222", Name: "Budget review"},
			{GID: "3333333333333333", Name: "Budget"},
		}
		result := r.Resolve(ctx, "Budget", candidates, "s1")
		for i := 1; i < len(result.Matches); i++ {
			if result.Matches[i].Confidence > result.Matches[i-1].Confidence {
				t.Fatalf("matches not sorted at %d: %v > %v", i,
					result.Matches[i].Confidence, result.Matches[i-1].Confidence)
			}
		}
		if result.Matches[0].Candidate.GID != "3333333333333333" {
			t.Errorf("top match = %s, want the exact-name candidate", result.Matches[0].Candidate.GID)
		}
	})
}

func TestResolveLearning(t *testing.T) {
	ctx := context.Background()

	t.Run("Learned Selection Breaks Near Tie", func(t *testing.T) {
		r := newTestResolver()
		candidates := []resolver.Candidate{
			{GID: "1111111111111111", Name: "Marketing Plan"},
			{GID: "2222222222222222", Name: "Marketing Budget"},
		}

		before := r.Resolve(ctx, "Marketing", candidates, "s1")
		if before.Matches[0].Candidate.GID != "1111111111111111" {
			t.Fatalf("unexpected baseline top match %s", before.Matches[0].Candidate.GID)
		}

		r.RecordSelection(ctx, "Marketing", "2222222222222222", "Marketing Budget", "s1")

		after := r.Resolve(ctx, "Marketing", candidates, "s1")
		if after.Matches[0].Candidate.GID != "2222222222222222" {
			t.Errorf("top match = %s, want the learned candidate", after.Matches[0].Candidate.GID)
		}
	})

	t.Run("Learning Is Session Scoped", func(t *testing.T) {
		r := newTestResolver()
		candidates := []resolver.Candidate{
			{GID: "1111111111111111", Name: "Marketing Plan"},
			{GID: "2222222222222222", Name: "Marketing Budget"},
		}
		r.RecordSelection(ctx, "Marketing", "2222222222222222", "Marketing Budget", "s1")

		other := r.Resolve(ctx, "Marketing", candidates, "s2")
		if other.Matches[0].Candidate.GID != "1111111111111111" {
			t.Errorf("learning leaked across sessions: top = %s", other.Matches[0].Candidate.GID)
		}
	})

	t.Run("Near Identical Query Reuses Learning", func(t *testing.T) {
		r := newTestResolver()
		candidates := []resolver.Candidate{
			{GID: "1111111111111111", Name: "Marketing Plan"},
			{GID: "2222222222222222", Name: "Marketing Budget"},
		}
		r.RecordSelection(ctx, "Marketing", "2222222222222222", "Marketing Budget", "s1")

		result := r.Resolve(ctx, "Marketin", candidates, "s1")
		if result.Matches[0].Candidate.GID != "2222222222222222" {
			t.Errorf("top match = %s, want the learned candidate for a near query", result.Matches[0].Candidate.GID)
		}
	})

	t.Run("Boost Never Overrides A Clear Winner", func(t *testing.T) {
		r := newTestResolver()
		candidates := []resolver.Candidate{
			{GID: "1111111111111111", Name: "Deploy website"},
			{GID: "2222222222222222", Name: "Quarterly numbers"},
		}
		r.RecordSelection(ctx, "Deploy website", "2222222222222222", "Quarterly numbers", "s1")

		result := r.Resolve(ctx, "Deploy website", candidates, "s1")
		if result.Matches[0].Candidate.GID != "1111111111111111" {
			t.Errorf("top match = %s, want the exact-name candidate despite the boost", result.Matches[0].Candidate.GID)
		}
	})
}
