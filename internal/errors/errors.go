package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Constructor functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...interface{}) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// FailedPrecondition creates a failed precondition error
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// FailedPreconditionf creates a failed precondition error with formatted message
func FailedPreconditionf(format string, args ...interface{}) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// Constructor functions for rule-engine error types

// IncompleteCareerPlan creates an incomplete career plan error
func IncompleteCareerPlan(message string) *Error {
	return New(CodeIncompleteCareerPlan, message)
}

// IncompleteCareerPlanf creates an incomplete career plan error with formatted message
func IncompleteCareerPlanf(format string, args ...interface{}) *Error {
	return Newf(CodeIncompleteCareerPlan, format, args...)
}

// InvalidProgression creates an invalid progression error
func InvalidProgression(message string) *Error {
	return New(CodeInvalidProgression, message)
}

// InvalidProgressionf creates an invalid progression error with formatted message
func InvalidProgressionf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidProgression, format, args...)
}

// CareerCeilingExceeded creates a career ceiling exceeded error
func CareerCeilingExceeded(message string) *Error {
	return New(CodeCareerCeilingExceeded, message)
}

// CareerCeilingExceededf creates a career ceiling exceeded error with formatted message
func CareerCeilingExceededf(format string, args ...interface{}) *Error {
	return Newf(CodeCareerCeilingExceeded, format, args...)
}

// NegativeBalance creates a negative balance error
func NegativeBalance(message string) *Error {
	return New(CodeNegativeBalance, message)
}

// NegativeBalancef creates a negative balance error with formatted message
func NegativeBalancef(format string, args ...interface{}) *Error {
	return Newf(CodeNegativeBalance, format, args...)
}

// InvalidExpression creates an invalid expression error
func InvalidExpression(message string) *Error {
	return New(CodeInvalidExpression, message)
}

// InvalidExpressionf creates an invalid expression error with formatted message
func InvalidExpressionf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidExpression, format, args...)
}
