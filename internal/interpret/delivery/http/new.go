package http

import (
	"github.com/gin-gonic/gin"

	"task-command-interpreter/internal/interpret"
	"task-command-interpreter/pkg/log"
)

// Handler is the public interface for the interpret HTTP delivery layer.
type Handler interface {
	Interpret(c *gin.Context)
	Resolve(c *gin.Context)
	RecordSelection(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc interpret.UseCase
}

// Ensure handler implements Handler interface
var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the interpret domain.
func New(l log.Logger, uc interpret.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
