package interpret

import "errors"

// Domain-specific errors for the interpret package.
var (
	ErrEmptyText      = errors.New("input text is empty")
	ErrEmptyQuery     = errors.New("resolution query is empty")
	ErrEmptySelection = errors.New("selection requires query and gid")
)
