package player

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures crossing the content API boundary.
type ErrorKind int

const (
	// KindNetwork covers transport failures and unexpected statuses.
	KindNetwork ErrorKind = iota
	// KindAccessDenied maps HTTP 403: gated content without enrollment.
	KindAccessDenied
	// KindNotFound maps HTTP 404: the course or lecture does not exist.
	KindNotFound
	// KindValidation maps HTTP 400 with a server-provided message.
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindAccessDenied:
		return "access denied"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	default:
		return "network"
	}
}

// Error is the player's error type. Message carries the server-provided text
// when there is one.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("player: %s: %s", e.Kind, e.Message)
	}
	if e.cause != nil {
		return fmt.Sprintf("player: %s: %v", e.Kind, e.cause)
	}
	return "player: " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.cause }

func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf reports the classification of err. Anything that is not a *Error is
// treated as a network failure.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindNetwork
}

func IsAccessDenied(err error) bool { return err != nil && KindOf(err) == KindAccessDenied }
func IsNotFound(err error) bool     { return err != nil && KindOf(err) == KindNotFound }
