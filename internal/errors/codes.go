package errors

// ErrorCode represents a standardized error code used throughout the generator
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// File I/O error codes (IO_*)
const (
	IOCreateFailed ErrorCode = "IO_001"
	IOWriteFailed  ErrorCode = "IO_002"
	IOCloseFailed  ErrorCode = "IO_003"
)

// System error codes (SYSTEM_*)
const (
	SystemUnexpectedError ErrorCode = "SYSTEM_001"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required argument is missing",
	ValidationInvalidFormat: "Invalid argument format",
	ValidationOutOfRange:    "Argument value is out of allowed range",

	// File I/O errors
	IOCreateFailed: "Failed to create output file",
	IOWriteFailed:  "Failed to write output file",
	IOCloseFailed:  "Failed to close output file",

	// System errors
	SystemUnexpectedError: "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// IsValidationCode reports whether the code belongs to the VALIDATION_* family
func IsValidationCode(code ErrorCode) bool {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange:
		return true
	}
	return false
}

// IsIOCode reports whether the code belongs to the IO_* family
func IsIOCode(code ErrorCode) bool {
	switch code {
	case IOCreateFailed, IOWriteFailed, IOCloseFailed:
		return true
	}
	return false
}
