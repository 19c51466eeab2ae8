package status

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("status: not found")
	ErrInvalidEntry = errors.New("status: invalid entry")
)

// NotFoundError reports a lookup that matched no registry entry. View names
// the representation that was searched ("key", "alias", "code", "text").
type NotFoundError struct {
	View  string
	Input string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("status: %s %q not found", e.View, e.Input)
}

// Is lets callers match any miss with errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(view, input string) error {
	return &NotFoundError{View: view, Input: input}
}

func invalidEntry(e Entry, reason string) error {
	return fmt.Errorf("%w: %s (%s %d)", ErrInvalidEntry, reason, e.Key, e.Code)
}
