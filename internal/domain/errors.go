package domain

import (
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Quiz specific errors
	ErrQuizNotFound  ErrorCode = "QUIZ_NOT_FOUND"
	ErrEmptyQuiz     ErrorCode = "EMPTY_QUIZ"
	ErrInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewQuizNotFoundError(index int) *DomainError {
	return NewError(ErrQuizNotFound, fmt.Sprintf("no quiz at index %d", index), nil)
}

func NewEmptyQuizError() *DomainError {
	return NewError(ErrEmptyQuiz, "quiz has no questions", nil)
}

func NewInvalidFormatError(message string, err error) *DomainError {
	return NewError(ErrInvalidFormat, message, err)
}

func NewFileAccessError(message string, err error) *DomainError {
	return NewError(ErrFileAccess, message, err)
}
