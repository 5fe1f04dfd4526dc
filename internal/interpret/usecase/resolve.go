package usecase

import (
	"context"
	"strings"

	"task-command-interpreter/internal/ambiguity"
	"task-command-interpreter/internal/interpret"
	"task-command-interpreter/internal/model"
)

// Resolve scores the caller-supplied candidates against the query and
// generates the disambiguation message. "Ask the user to pick one" is a
// first-class successful outcome, not an error.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, input interpret.ResolveInput) (interpret.ResolveOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return interpret.ResolveOutput{}, interpret.ErrEmptyQuery
	}

	uc.l.Infof(ctx, "Resolve: session=%s query=%q type=%s candidates=%d",
		sc.SessionID, input.Query, input.ResourceType, len(input.Candidates))

	result := uc.resolver.Resolve(ctx, input.Query, input.Candidates, sc.SessionID)

	resourceType := input.ResourceType
	if resourceType == "" {
		resourceType = "entity"
	}

	resolved := ambiguity.Generate(ambiguity.Context{
		Result:        result,
		ResourceType:  resourceType,
		SearchContext: input.SearchContext,
	})

	return interpret.ResolveOutput{
		Result:    result,
		Ambiguity: resolved,
	}, nil
}

// RecordSelection stores a user-confirmed selection in the session's
// learning memory so later resolutions of the same query prefer it.
func (uc *implUseCase) RecordSelection(ctx context.Context, sc model.Scope, input interpret.SelectionInput) error {
	if input.Query == "" || input.GID == "" {
		return interpret.ErrEmptySelection
	}

	uc.resolver.RecordSelection(ctx, input.Query, input.GID, input.Name, sc.SessionID)
	return nil
}
