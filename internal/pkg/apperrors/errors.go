package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP boundary. The services return these
// unchanged; the error middleware owns the status mapping.
type Kind int

const (
	KindNotFound Kind = iota
	KindValidation
	KindDuplicateWrite
	KindStoreUnavailable
	KindState
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func DuplicateWrite(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindDuplicateWrite, Message: fmt.Sprintf(format, args...)}
}

func StoreUnavailable(msg string, err error) *AppError {
	return &AppError{Kind: KindStoreUnavailable, Message: msg, Err: err}
}

func State(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindState, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
