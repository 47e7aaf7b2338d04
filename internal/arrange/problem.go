package arrange

import (
	"strings"
	"unicode/utf8"
)

// Limits on a problem set.
const (
	MaxProblems      = 5
	MaxOperandDigits = 4
)

// Operator is the arithmetic operator of a problem.
type Operator string

// Supported operators.
const (
	Add      Operator = "+"
	Subtract Operator = "-"
)

// Valid reports whether the operator is one of the supported operators.
func (o Operator) Valid() bool {
	return o == Add || o == Subtract
}

// Problem is a single tokenized problem. Parse only splits the text; the
// fields are not guaranteed valid until Validate or Check accepts them.
type Problem struct {
	A  string   `json:"a"  yaml:"a"`
	Op Operator `json:"op" yaml:"op"`
	B  string   `json:"b"  yaml:"b"`
}

// String returns the problem in its canonical "a op b" form.
func (p Problem) String() string {
	return p.A + " " + string(p.Op) + " " + p.B
}

// Width returns the column width the problem occupies.
func (p Problem) Width() int {
	return max(utf8.RuneCountInString(p.A), utf8.RuneCountInString(p.B)) + 2
}

// Parse splits a raw problem on whitespace. It fails with a
// KindMalformedProblem error unless there are exactly three tokens.
func Parse(raw string) (Problem, error) {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return Problem{}, newProblemError(KindMalformedProblem, -1, raw)
	}
	return Problem{A: fields[0], Op: Operator(fields[1]), B: fields[2]}, nil
}

// Check runs the per-problem checks in priority order: operand length,
// operand digits, then operator.
func (p Problem) Check() (Kind, bool) {
	if utf8.RuneCountInString(p.A) > MaxOperandDigits || utf8.RuneCountInString(p.B) > MaxOperandDigits {
		return KindOperandTooLong, false
	}
	if !isDigits(p.A) || !isDigits(p.B) {
		return KindOperandNotNumeric, false
	}
	if !p.Op.Valid() {
		return KindInvalidOperator, false
	}
	return 0, true
}

// Validate parses and checks a problem set. The count is checked first, then
// each problem in order; the first failure is returned and later problems are
// not examined.
func Validate(problems []string) ([]Problem, error) {
	if len(problems) > MaxProblems {
		return nil, &ValidationError{Kind: KindTooManyProblems, Index: -1}
	}

	parsed := make([]Problem, 0, len(problems))
	for idx, raw := range problems {
		problem, err := Parse(raw)
		if err != nil {
			return nil, newProblemError(KindMalformedProblem, idx, raw)
		}
		if kind, ok := problem.Check(); !ok {
			return nil, newProblemError(kind, idx, raw)
		}
		parsed = append(parsed, problem)
	}
	return parsed, nil
}

// isDigits reports whether s is non-empty and made of ASCII digits only.
// Signs are rejected.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
