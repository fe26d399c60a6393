package apperrors

import (
	"errors"
	"fmt"
)

// Kind categorizes an application error so callers can react without
// string-matching messages.
type Kind string

const (
	// KindValidation means the input was malformed or missing required
	// fields; nothing was written to storage.
	KindValidation Kind = "validation"
	// KindNotFound means an id-keyed lookup, update or delete matched no row.
	KindNotFound Kind = "not_found"
	// KindCorruptData means a stored blob failed to decode.
	KindCorruptData Kind = "corrupt_data"
	// KindStorage means the underlying database failed.
	KindStorage Kind = "storage"
)

// Error is the application error type. Message is safe to show to API
// clients; Cause carries the underlying error for logs.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Validation builds a validation error from a format string.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a not-found error for the named entity.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// CorruptData wraps a decode failure of stored data.
func CorruptData(message string, cause error) *Error {
	return &Error{Kind: KindCorruptData, Message: message, Cause: cause}
}

// Storage wraps an underlying database failure.
func Storage(message string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: message, Cause: cause}
}

// KindOf extracts the Kind of err, or KindStorage for unclassified errors
// reaching the boundary.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// Message returns the client-safe message of err.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
