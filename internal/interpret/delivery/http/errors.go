package http

import (
	"errors"

	"task-command-interpreter/internal/interpret"
)

// mapError translates use-case errors into user-facing ones. Unknown
// errors pass through unchanged; the response layer renders them as a
// generic 400.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, interpret.ErrEmptyText):
		return errors.New("text must not be empty")
	case errors.Is(err, interpret.ErrEmptyQuery):
		return errors.New("query must not be empty")
	case errors.Is(err, interpret.ErrEmptySelection):
		return errors.New("selection requires query and gid")
	default:
		return err
	}
}
