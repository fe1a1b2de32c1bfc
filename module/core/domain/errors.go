package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrListingNotFound   = errors.New("listing not found")
)

// ChatError wraps a failure returned by the chat service. Transient errors are
// worth one retry; permanent ones are not.
type ChatError struct {
	Op        string
	Transient bool
	Err       error
}

func (e *ChatError) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	return fmt.Sprintf("chat %s (%s): %v", e.Op, kind, e.Err)
}

func (e *ChatError) Unwrap() error {
	return e.Err
}

func IsTransientChatError(err error) bool {
	var ce *ChatError
	return errors.As(err, &ce) && ce.Transient
}
