package errors

// Code represents an error code
type Code string

// General error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
)

// Rule-engine error codes. These are the recoverable logical failures the
// character core reports; the attempted mutation is rejected as a whole and
// the prior valid state remains authoritative.
const (
	// CodeIncompleteCareerPlan means a career template is missing one or more
	// required attribute keys.
	CodeIncompleteCareerPlan Code = "INCOMPLETE_CAREER_PLAN"
	// CodeInvalidProgression means an advanced attribute is nonzero on a
	// character with no applied career.
	CodeInvalidProgression Code = "INVALID_PROGRESSION"
	// CodeCareerCeilingExceeded means an advanced attribute exceeds the
	// governing career's target for that attribute.
	CodeCareerCeilingExceeded Code = "CAREER_CEILING_EXCEEDED"
	// CodeNegativeBalance means a currency subtraction would go negative.
	CodeNegativeBalance Code = "NEGATIVE_BALANCE"
	// CodeInvalidExpression means a dice notation string could not be parsed.
	CodeInvalidExpression Code = "INVALID_EXPRESSION"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
