package arrange

import (
	"fmt"
	"strconv"
)

// Solve checks the problem and computes its result.
func Solve(p Problem) (int, error) {
	if kind, ok := p.Check(); !ok {
		return 0, &ValidationError{Kind: kind, Index: -1, Problem: p.String()}
	}

	a, err := strconv.Atoi(p.A)
	if err != nil {
		return 0, fmt.Errorf("parsing operand %q: %w", p.A, err)
	}
	b, err := strconv.Atoi(p.B)
	if err != nil {
		return 0, fmt.Errorf("parsing operand %q: %w", p.B, err)
	}

	if p.Op == Subtract {
		return a - b, nil
	}
	return a + b, nil
}

// SolveRaw parses and solves a raw problem.
func SolveRaw(raw string) (int, error) {
	problem, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	return Solve(problem)
}

// SolveString is SolveRaw with the result in decimal form.
func SolveString(raw string) (string, error) {
	result, err := SolveRaw(raw)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(result), nil
}

// solution formats the result of an already validated problem.
func solution(p Problem) string {
	result, err := Solve(p)
	if err != nil {
		// Unreachable for validated problems.
		return ""
	}
	return strconv.Itoa(result)
}
