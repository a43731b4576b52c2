// Package apperr defines the error taxonomy shared by the storefront services.
//
// Every failure surfaced by a service is an *Error whose Kind is one of the
// sentinel kinds below, so callers classify with errors.Is:
//
//	if errors.Is(err, apperr.ErrAuthorization) { ... }
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrAuthorization = errors.New("authorization error")
	ErrValidation    = errors.New("validation error")
	ErrPersistence   = errors.New("persistence error")
	ErrStorage       = errors.New("storage error")
	ErrNotification  = errors.New("notification error")
)

// Error carries the failed operation, its kind and an optional user-facing message.
type Error struct {
	Op      string
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Kind != nil:
		return e.Kind.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the error's kind as well as anything in the wrapped chain.
func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func Authorization(op, message string) *Error {
	return &Error{Op: op, Kind: ErrAuthorization, Message: message, Err: errors.New(message)}
}

func Validation(op, message string) *Error {
	return &Error{Op: op, Kind: ErrValidation, Message: message, Err: errors.New(message)}
}

func Persistence(op string, err error) *Error {
	return &Error{Op: op, Kind: ErrPersistence, Err: err}
}

func Storage(op string, err error) *Error {
	return &Error{Op: op, Kind: ErrStorage, Err: err}
}

func Notification(op string, err error) *Error {
	return &Error{Op: op, Kind: ErrNotification, Err: err}
}

// UserMessage returns the message meant for end users, if the error carries one.
func UserMessage(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message, true
	}
	return "", false
}

// Code is a stable machine-readable name for the error's kind.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrAuthorization):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrValidation):
		return "VALIDATION"
	case errors.Is(err, ErrPersistence):
		return "PERSISTENCE"
	case errors.Is(err, ErrStorage):
		return "STORAGE"
	case errors.Is(err, ErrNotification):
		return "NOTIFICATION"
	}
	return "INTERNAL"
}
