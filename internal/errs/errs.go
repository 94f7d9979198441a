package errs

import (
	"errors"
	"fmt"
)

// Code identifies the stable error category surfaced to clients.
type Code string

const (
	CodeInvalidInput            Code = "INVALID_INPUT"
	CodeClassificationAmbiguous Code = "CLASSIFICATION_AMBIGUOUS"
	CodeExternalSource          Code = "EXTERNAL_SOURCE_ERROR"
	CodeResourceExhausted       Code = "RESOURCE_EXHAUSTED"
	CodeInternal                Code = "INTERNAL_ERROR"
)

// Error carries a category and a client-safe message alongside the wrapped
// cause. UpstreamStatus holds the HTTP status returned by an external
// collaborator, when there was one.
type Error struct {
	Code           Code
	Message        string
	UpstreamStatus int
	Err            error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	if e.UpstreamStatus != 0 {
		return fmt.Sprintf("%s: %s (upstream status %d)", e.Code, e.Message, e.UpstreamStatus)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a categorized error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a category and client-safe message to an underlying error.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// External creates an EXTERNAL_SOURCE_ERROR preserving the upstream status
// for diagnostics.
func External(status int, message string) *Error {
	return &Error{Code: CodeExternalSource, Message: message, UpstreamStatus: status}
}

// CodeOf extracts the category from an error chain, defaulting to
// INTERNAL_ERROR for uncategorized errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf extracts the client-safe message from an error chain. Internal
// detail from uncategorized errors is never exposed.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "unexpected error while processing the query"
}
