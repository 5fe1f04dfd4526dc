package model

import (
	"time"

	"github.com/google/uuid"
)

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller identity for one request.
// SessionID scopes the resolver's learning memory; UserID is informational.
type Scope struct {
	SessionID string
	UserID    string
}

// RequestContext is created once per request and used only for tracing.
type RequestContext struct {
	RequestID string
	StartTime time.Time
}

// NewRequestContext builds a RequestContext with a fresh request id.
func NewRequestContext() RequestContext {
	return RequestContext{
		RequestID: uuid.NewString(),
		StartTime: time.Now(),
	}
}

// Elapsed returns the time since the request started.
func (rc RequestContext) Elapsed() time.Duration {
	return time.Since(rc.StartTime)
}
