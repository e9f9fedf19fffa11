package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

func hasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return hasCode(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return hasCode(err, CodeFailedPrecondition)
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

// IsIncompleteCareerPlan checks if an error is an incomplete career plan error
func IsIncompleteCareerPlan(err error) bool {
	return hasCode(err, CodeIncompleteCareerPlan)
}

// IsInvalidProgression checks if an error is an invalid progression error
func IsInvalidProgression(err error) bool {
	return hasCode(err, CodeInvalidProgression)
}

// IsCareerCeilingExceeded checks if an error is a career ceiling exceeded error
func IsCareerCeilingExceeded(err error) bool {
	return hasCode(err, CodeCareerCeilingExceeded)
}

// IsNegativeBalance checks if an error is a negative balance error
func IsNegativeBalance(err error) bool {
	return hasCode(err, CodeNegativeBalance)
}

// IsInvalidExpression checks if an error is an invalid expression error
func IsInvalidExpression(err error) bool {
	return hasCode(err, CodeInvalidExpression)
}
