package usecase_test

import (
	"context"
	"errors"
	"testing"

	"task-command-interpreter/internal/ambiguity"
	"task-command-interpreter/internal/intent"
	"task-command-interpreter/internal/interpret"
	"task-command-interpreter/internal/interpret/usecase"
	"task-command-interpreter/internal/model"
	"task-command-interpreter/internal/resolver"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type mockParser struct {
	parseFunc func(text string) intent.ParsedIntent
}

func (m *mockParser) Classify(_ context.Context, text string) intent.OperationType {
	return intent.Classify(text)
}

func (m *mockParser) ParseIntent(_ context.Context, text string) intent.ParsedIntent {
	return m.parseFunc(text)
}

type mockResolver struct {
	resolveFunc func(query string, candidates []resolver.Candidate, sessionID string) resolver.Result
	recorded    []string
}

func (m *mockResolver) Resolve(_ context.Context, query string, candidates []resolver.Candidate, sessionID string) resolver.Result {
	return m.resolveFunc(query, candidates, sessionID)
}

func (m *mockResolver) RecordSelection(_ context.Context, query, gid, name, sessionID string) {
	m.recorded = append(m.recorded, sessionID+"/"+query+"/"+gid)
}

func TestInterpret(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Text Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockParser{}, &mockResolver{})
		_, err := uc.Interpret(ctx, model.Scope{}, interpret.InterpretInput{Text: "   "})
		if !errors.Is(err, interpret.ErrEmptyText) {
			t.Errorf("expected ErrEmptyText, got %v", err)
		}
	})

	t.Run("Parsed Intent Passes Through", func(t *testing.T) {
		parser := &mockParser{
			parseFunc: func(text string) intent.ParsedIntent {
				return intent.ParsedIntent{
					Operation: intent.OperationListTasks,
					ListTasks: &intent.ListTasksIntent{AssigneeName: "me"},
				}
			},
		}
		uc := usecase.New(&mockLogger{}, parser, &mockResolver{})
		out, err := uc.Interpret(ctx, model.Scope{SessionID: "s1"}, interpret.InterpretInput{Text: "list my tasks"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent.Operation != intent.OperationListTasks {
			t.Errorf("Operation = %s, want %s", out.Intent.Operation, intent.OperationListTasks)
		}
	})
}

func TestResolveUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Query Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockParser{}, &mockResolver{})
		_, err := uc.Resolve(ctx, model.Scope{}, interpret.ResolveInput{Query: ""})
		if !errors.Is(err, interpret.ErrEmptyQuery) {
			t.Errorf("expected ErrEmptyQuery, got %v", err)
		}
	})

	t.Run("Generates Ambiguity Outcome", func(t *testing.T) {
		res := &mockResolver{
			resolveFunc: func(query string, candidates []resolver.Candidate, sessionID string) resolver.Result {
				return resolver.Result{
					Query: query,
					Matches: []resolver.Match{
						{Candidate: resolver.Candidate{GID: "1111111111111111", Name: "Marketing Plan"}, Confidence: 0.86},
						{Candidate: resolver.Candidate{GID: "2222222222222222", Name: "Marketing Budget"}, Confidence: 0.84},
					},
					IsAmbiguous:         true,
					NeedsDisambiguation: true,
					Confidence:          0.86,
				}
			},
		}
		uc := usecase.New(&mockLogger{}, &mockParser{}, res)

		out, err := uc.Resolve(ctx, model.Scope{SessionID: "s1"}, interpret.ResolveInput{
			Query:        "Marketing",
			ResourceType: "project",
			Candidates: []resolver.Candidate{
				{GID: "1111111111111111", Name: "Marketing Plan"},
				{GID: "2222222222222222", Name: "Marketing Budget"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Ambiguity.Kind != ambiguity.KindMultiple {
			t.Errorf("Kind = %s, want %s", out.Ambiguity.Kind, ambiguity.KindMultiple)
		}
		if len(out.Ambiguity.Suggestions) != 2 {
			t.Errorf("len(Suggestions) = %d, want 2", len(out.Ambiguity.Suggestions))
		}
	})

	t.Run("Resource Type Defaults To Entity", func(t *testing.T) {
		res := &mockResolver{
			resolveFunc: func(query string, candidates []resolver.Candidate, sessionID string) resolver.Result {
				return resolver.Result{Query: query, Matches: []resolver.Match{}}
			},
		}
		uc := usecase.New(&mockLogger{}, &mockParser{}, res)

		out, err := uc.Resolve(ctx, model.Scope{}, interpret.ResolveInput{Query: "ghost"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Ambiguity.Kind != ambiguity.KindNone {
			t.Errorf("Kind = %s, want %s", out.Ambiguity.Kind, ambiguity.KindNone)
		}
	})
}

func TestRecordSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Fields Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockParser{}, &mockResolver{})
		if err := uc.RecordSelection(ctx, model.Scope{}, interpret.SelectionInput{Query: "x"}); !errors.Is(err, interpret.ErrEmptySelection) {
			t.Errorf("expected ErrEmptySelection, got %v", err)
		}
	})

	t.Run("Delegates To Resolver", func(t *testing.T) {
		res := &mockResolver{}
		uc := usecase.New(&mockLogger{}, &mockParser{}, res)

		err := uc.RecordSelection(ctx, model.Scope{SessionID: "s1"}, interpret.SelectionInput{
			Query: "Marketing", GID: "2222222222222222", Name: "Marketing Budget",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.recorded) != 1 || res.recorded[0] != "s1/Marketing/2222222222222222" {
			t.Errorf("recorded = %v", res.recorded)
		}
	})
}
