package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Generation errors
	CodeInvalidLevel          ErrorCode = "INVALID_LEVEL"
	CodeGenerationUnavailable ErrorCode = "GENERATION_UNAVAILABLE"
	CodeMalformedOutput       ErrorCode = "MALFORMED_GENERATION_OUTPUT"
	CodeSchemaMismatch        ErrorCode = "SCHEMA_MISMATCH"

	// Upload errors
	CodeMissingFile         ErrorCode = "MISSING_FILE"
	CodeStorageWriteFailure ErrorCode = "STORAGE_WRITE_FAILURE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code, so the
// sentinels below work with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidInput          = &DomainError{Code: CodeInvalidInput}
	ErrInvalidLevel          = &DomainError{Code: CodeInvalidLevel}
	ErrGenerationUnavailable = &DomainError{Code: CodeGenerationUnavailable}
	ErrMalformedOutput       = &DomainError{Code: CodeMalformedOutput}
	ErrSchemaMismatch        = &DomainError{Code: CodeSchemaMismatch}
	ErrMissingFile           = &DomainError{Code: CodeMissingFile}
	ErrStorageWriteFailure   = &DomainError{Code: CodeStorageWriteFailure}
)

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidLevelError(level string) *DomainError {
	return NewError(CodeInvalidLevel, fmt.Sprintf("invalid level: %q", level), nil)
}

func NewGenerationUnavailableError(cause error) *DomainError {
	return NewError(CodeGenerationUnavailable, "text generation unavailable", cause)
}

func NewMalformedOutputError(cause error) *DomainError {
	return NewError(CodeMalformedOutput, "generation output has no parseable JSON payload", cause)
}

func NewSchemaMismatchError(cause error) *DomainError {
	return NewError(CodeSchemaMismatch, "generation output does not match the expected shape", cause)
}

func NewMissingFileError() *DomainError {
	return NewError(CodeMissingFile, "no file provided", nil)
}

func NewStorageWriteError(key string, cause error) *DomainError {
	return NewError(CodeStorageWriteFailure, fmt.Sprintf("failed to store file %s", key), cause)
}

// CodeOf returns the code of the first DomainError in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}
