package resolver_test

import (
	"testing"
	"time"

	"task-command-interpreter/internal/resolver"
)

func TestLearningStore(t *testing.T) {
	t.Run("Missing Session Yields Nil", func(t *testing.T) {
		store := resolver.NewLearningStore(16, time.Minute)
		if got := store.Selections("nope"); got != nil {
			t.Errorf("Selections = %v, want nil", got)
		}
	})

	t.Run("Record And Read Back", func(t *testing.T) {
		store := resolver.NewLearningStore(16, time.Minute)
		store.RecordSelection("Marketing", "1111111111111111", "Marketing Plan", "s1")

		got := store.Selections("s1")
		if len(got) != 1 {
			t.Fatalf("len(Selections) = %d, want 1", len(got))
		}
		if got[0].Query != "marketing" {
			t.Errorf("Query = %q, want normalized %q", got[0].Query, "marketing")
		}
		if got[0].GID != "1111111111111111" {
			t.Errorf("GID = %q, want %q", got[0].GID, "1111111111111111")
		}
	})

	t.Run("Repeated Identical Records Are Idempotent", func(t *testing.T) {
		store := resolver.NewLearningStore(16, time.Minute)
		for i := 0; i < 3; i++ {
			store.RecordSelection("Marketing", "1111111111111111", "Marketing Plan", "s1")
		}
		if got := store.Selections("s1"); len(got) != 1 {
			t.Errorf("len(Selections) = %d, want 1", len(got))
		}
	})

	t.Run("Distinct Selections Accumulate", func(t *testing.T) {
		store := resolver.NewLearningStore(16, time.Minute)
		store.RecordSelection("Marketing", "1111111111111111", "Marketing Plan", "s1")
		store.RecordSelection("Marketing", "2222222222222222", "Marketing Budget", "s1")
		if got := store.Selections("s1"); len(got) != 2 {
			t.Errorf("len(Selections) = %d, want 2", len(got))
		}
	})

	t.Run("Selections Returns A Copy", func(t *testing.T) {
		store := resolver.NewLearningStore(16, time.Minute)
		store.RecordSelection("Marketing", "1111111111111111", "Marketing Plan", "s1")

		first := store.Selections("s1")
		first[0].GID = "tampered"

		second := store.Selections("s1")
		if second[0].GID != "1111111111111111" {
			t.Errorf("GID = %q, internal state was mutated through the returned slice", second[0].GID)
		}
	})

	t.Run("Blank Keys Are Ignored", func(t *testing.T) {
		store := resolver.NewLearningStore(16, time.Minute)
		store.RecordSelection("", "1111111111111111", "Marketing Plan", "s1")
		store.RecordSelection("Marketing", "", "Marketing Plan", "s1")
		store.RecordSelection("Marketing", "1111111111111111", "Marketing Plan", "")
		if got := store.Selections("s1"); len(got) != 0 {
			t.Errorf("len(Selections) = %d, want 0", len(got))
		}
	})

	t.Run("Sessions Beyond Capacity Are Evicted", func(t *testing.T) {
		store := resolver.NewLearningStore(2, time.Minute)
		store.RecordSelection("a", "1111111111111111", "A", "s1")
		store.RecordSelection("b", "2222222222222222", "B", "s2")
		store.RecordSelection("c", "3333333333333333", "C", "s3")

		if got := store.Selections("s1"); got != nil {
			t.Errorf("Selections(s1) = %v, want nil after eviction", got)
		}
		if got := store.Selections("s3"); len(got) != 1 {
			t.Errorf("len(Selections(s3)) = %d, want 1", len(got))
		}
	})
}
