package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Game specific errors
	CodeGameNotFound     ErrorCode = "GAME_NOT_FOUND"
	CodeQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"
	CodeUpstream         ErrorCode = "UPSTREAM_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
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

// WithContext attaches a key/value pair that is returned to the caller as error details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

// NewInternalError hides cause from the caller; it is only logged.
func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewGameNotFoundError(gameID string) *DomainError {
	return NewError(CodeGameNotFound, fmt.Sprintf("Game not found with ID: %s", gameID), nil)
}

func NewQuestionNotFoundError(questionID string) *DomainError {
	return NewError(CodeQuestionNotFound, "Question not found", nil).WithContext("questionId", questionID)
}

func NewUpstreamError(cause error) *DomainError {
	return NewError(CodeUpstream, "Failed to generate questions", cause)
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == code
}

// ValidationError describes a single field-level validation failure.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is returned when one or more fields fail validation.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format", field),
		Value:   value,
	}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}
