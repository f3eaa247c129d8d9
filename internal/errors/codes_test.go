package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		IOCreateFailed,
		IOWriteFailed,
		IOCloseFailed,
		SystemUnexpectedError,
	}
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Validation Out Of Range",
			code:     ValidationOutOfRange,
			expected: "Argument value is out of allowed range",
		},
		{
			name:     "IO Create Failed",
			code:     IOCreateFailed,
			expected: "Failed to create output file",
		},
		{
			name:     "IO Close Failed",
			code:     IOCloseFailed,
			expected: "Failed to close output file",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes() {
		s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
	}

	for _, code := range []ErrorCode{"", "IO_999", "AUTH_001"} {
		s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

func (s *CodesTestSuite) TestCodeFamilies() {
	for _, code := range allCodes() {
		s.Equal(strings.HasPrefix(string(code), "VALIDATION_"), IsValidationCode(code), string(code))
		s.Equal(strings.HasPrefix(string(code), "IO_"), IsIOCode(code), string(code))
	}
}
