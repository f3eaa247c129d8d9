package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Process exit statuses reported by the command line tool
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

// FixtureError is the single error type surfaced by the generator.
// It carries a standardized code, the file path involved (if any) and the
// underlying cause so callers can still match on it with errors.Is/As.
type FixtureError struct {
	Code    ErrorCode
	Message string
	Path    string
	Details []string
	Err     error
}

// ErrorOption is a functional option for configuring a FixtureError
type ErrorOption func(*FixtureError)

// WithDetails adds detail messages to the error
func WithDetails(details ...string) ErrorOption {
	return func(fe *FixtureError) {
		fe.Details = append(fe.Details, details...)
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(fe *FixtureError) {
		fe.Message = message
	}
}

// WithPath records the file path the failure relates to
func WithPath(path string) ErrorOption {
	return func(fe *FixtureError) {
		fe.Path = path
	}
}

// New creates a FixtureError with the given code and no underlying cause
func New(code ErrorCode, opts ...ErrorOption) *FixtureError {
	return Wrap(code, nil, opts...)
}

// Wrap creates a FixtureError with the given code around err
func Wrap(code ErrorCode, err error, opts ...ErrorOption) *FixtureError {
	fe := &FixtureError{
		Code:    code,
		Message: GetErrorMessage(code),
		Err:     err,
	}

	for _, opt := range opts {
		opt(fe)
	}

	return fe
}

// NewValidationError creates a validation error with field-specific details
// fieldErrors is a map of field names to their error messages
func NewValidationError(fieldErrors map[string]string) *FixtureError {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}

	return New(ValidationGeneral, WithDetails(details...))
}

// Error implements the error interface
func (fe *FixtureError) Error() string {
	var b strings.Builder
	b.WriteString(fe.Message)
	if fe.Path != "" {
		fmt.Fprintf(&b, " %q", fe.Path)
	}
	if len(fe.Details) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(fe.Details, "; "))
		b.WriteString(")")
	}
	if fe.Err != nil {
		b.WriteString(": ")
		b.WriteString(fe.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause
func (fe *FixtureError) Unwrap() error {
	return fe.Err
}

// String returns a string representation including the error code
func (fe *FixtureError) String() string {
	return fmt.Sprintf("[%s] %s", fe.Code, fe.Error())
}

// IsValidationError returns true if err is a FixtureError with a validation code
func IsValidationError(err error) bool {
	var fe *FixtureError
	return stderrors.As(err, &fe) && IsValidationCode(fe.Code)
}

// IsIOError returns true if err is a FixtureError with an I/O code
func IsIOError(err error) bool {
	var fe *FixtureError
	return stderrors.As(err, &fe) && IsIOCode(fe.Code)
}

// CodeOf extracts the error code from err, or SystemUnexpectedError if err
// is not a FixtureError
func CodeOf(err error) ErrorCode {
	var fe *FixtureError
	if stderrors.As(err, &fe) {
		return fe.Code
	}
	return SystemUnexpectedError
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsValidationError(err):
		return ExitUsageError
	default:
		return ExitFailure
	}
}
