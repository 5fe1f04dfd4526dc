package intent

import (
	"context"

	pkgLog "task-command-interpreter/pkg/log"
)

// IntentParser is the interface for turning free text into operation
// descriptors.
type IntentParser interface {
	Classify(ctx context.Context, text string) OperationType
	ParseIntent(ctx context.Context, text string) ParsedIntent
}

// Parser is the rule-based implementation.
type Parser struct {
	l pkgLog.Logger
}

// Ensure Parser implements IntentParser interface
var _ IntentParser = (*Parser)(nil)

// New creates a new Parser.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l pkgLog.Logger) *Parser {
	return &Parser{l: l}
}

// Classify exposes the pattern-table classification on the parser.
func (p *Parser) Classify(_ context.Context, text string) OperationType {
	return Classify(text)
}
