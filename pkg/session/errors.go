package session

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	// ErrInvalidState is returned when an operation is not allowed in the
	// current state, such as connecting twice.
	ErrInvalidState = errors.New("session: invalid state")

	// ErrSessionEnded is returned by operations on an ended session.
	ErrSessionEnded = errors.New("session: ended")

	// ErrNotConnected is returned when sending without a transport.
	ErrNotConnected = errors.New("session: not connected")

	// ErrKicked is matched by *KickError.
	ErrKicked = errors.New("session: kicked")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("session: invalid config")
)

// KickError ends a session the server disconnected.
type KickError struct {
	Reason string
}

// Error implements the error interface.
func (e *KickError) Error() string {
	return fmt.Sprintf("session: kicked: %s", e.Reason)
}

// Is reports whether target is ErrKicked.
func (e *KickError) Is(target error) bool {
	return target == ErrKicked
}

// SessionError wraps a failure in a session operation.
type SessionError struct {
	Op  string // "dial", "send", "read", "deliver"
	Err error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	return fmt.Sprintf("session: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *SessionError) Unwrap() error {
	return e.Err
}
