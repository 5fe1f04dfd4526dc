package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	interpretHTTP "task-command-interpreter/internal/interpret/delivery/http"
	"task-command-interpreter/internal/middleware"
	"task-command-interpreter/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Interpret domain
	interpretHandler interpretHTTP.Handler

	// Middleware
	mw middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Interpret domain
	InterpretHandler interpretHTTP.Handler

	// Middleware
	Middleware middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		interpretHandler: cfg.InterpretHandler,
		mw:               cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.interpretHandler == nil {
		return errors.New("interpret handler is required")
	}
	return nil
}
