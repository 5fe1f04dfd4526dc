package usecase

import (
	"task-command-interpreter/internal/intent"
	"task-command-interpreter/internal/resolver"
	pkgLog "task-command-interpreter/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	parser   intent.IntentParser
	resolver resolver.EntityResolver
}

// New creates a new interpret UseCase instance.
func New(l pkgLog.Logger, parser intent.IntentParser, res resolver.EntityResolver) *implUseCase {
	return &implUseCase{
		l:        l,
		parser:   parser,
		resolver: res,
	}
}
