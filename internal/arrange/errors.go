package arrange

import "fmt"

// Kind identifies which validation check a problem set failed.
type Kind int

// Validation failure kinds.
const (
	KindTooManyProblems Kind = iota + 1
	KindMalformedProblem
	KindOperandTooLong
	KindOperandNotNumeric
	KindInvalidOperator
)

var kindNames = map[Kind]string{
	KindTooManyProblems:   "too_many_problems",
	KindMalformedProblem:  "malformed_problem",
	KindOperandTooLong:    "operand_too_long",
	KindOperandNotNumeric: "operand_not_numeric",
	KindInvalidOperator:   "invalid_operator",
}

var kindMessages = map[Kind]string{
	KindTooManyProblems:   "Error: Too many problems.",
	KindMalformedProblem:  "Error: Problem must be in the form 'a + b'.",
	KindOperandTooLong:    "Error: Numbers cannot be more than four digits.",
	KindOperandNotNumeric: "Error: Numbers must only contain digits.",
	KindInvalidOperator:   "Error: Operator must be '+' or '-'.",
}

// String returns the snake_case name of the kind, used in JSON output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Message returns the fixed human-readable message for the kind.
func (k Kind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return "Error: Invalid problem."
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// kindError is the sentinel form of a Kind, matched with errors.Is.
type kindError Kind

func (k kindError) Error() string {
	return Kind(k).Message()
}

// Sentinel errors, one per Kind. A *ValidationError unwraps to the sentinel
// of its kind.
var (
	ErrTooManyProblems   error = kindError(KindTooManyProblems)
	ErrMalformedProblem  error = kindError(KindMalformedProblem)
	ErrOperandTooLong    error = kindError(KindOperandTooLong)
	ErrOperandNotNumeric error = kindError(KindOperandNotNumeric)
	ErrInvalidOperator   error = kindError(KindInvalidOperator)
)

// ValidationError reports the first check a problem set failed.
//
// Error returns the fixed message for the kind, so text-mode callers see
// exactly the same string regardless of which problem failed.
type ValidationError struct {
	Kind Kind
	// Index is the position of the failing problem, or -1 when the failure
	// concerns the whole set.
	Index int
	// Problem is the raw text of the failing problem, empty for set-level
	// failures.
	Problem string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Kind.Message()
}

// Unwrap returns the sentinel error for the kind.
func (e *ValidationError) Unwrap() error {
	return kindError(e.Kind)
}

func newProblemError(kind Kind, index int, raw string) *ValidationError {
	return &ValidationError{Kind: kind, Index: index, Problem: raw}
}
