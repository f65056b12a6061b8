// Package apperr defines the error taxonomy shared by repositories, services
// and the HTTP layer. Handlers map kinds to status codes instead of matching
// on message text.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindStorage covers unexpected persistence failures; it is the fallback
	// for errors that carry no explicit kind.
	KindStorage Kind = iota
	// KindValidation marks missing or malformed input.
	KindValidation
	// KindNotFound marks a reference to an entity that does not exist.
	KindNotFound
	// KindConflict marks a uniqueness violation, e.g. a duplicate category name.
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Storage wraps an unexpected persistence error so the boundary reports it
// as a server-side failure.
func Storage(err error, format string, args ...any) *Error {
	return &Error{Kind: KindStorage, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from err, or KindStorage if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
