package usecase

import (
	"context"
	"strings"

	"task-command-interpreter/internal/interpret"
	"task-command-interpreter/internal/model"
)

// Interpret turns a free-text request into an operation descriptor.
// Classification misses are not errors: they come back as the Unknown
// variant so a conversational caller can re-prompt.
func (uc *implUseCase) Interpret(ctx context.Context, sc model.Scope, input interpret.InterpretInput) (interpret.InterpretOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return interpret.InterpretOutput{}, interpret.ErrEmptyText
	}

	uc.l.Infof(ctx, "Interpret: session=%s text=%q", sc.SessionID, input.Text)

	parsed := uc.parser.ParseIntent(ctx, input.Text)
	return interpret.InterpretOutput{Intent: parsed}, nil
}
