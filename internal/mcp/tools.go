package mcp

import (
	"context"
	"errors"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/arrange"
)

// --- Arrange tool ---

// ArrangeInput is the input for the arrange tool.
type ArrangeInput struct {
	Problems      []string `json:"problems"                 jsonschema:"problems in 'a + b' or 'a - b' form, at most five"`
	ShowSolutions bool     `json:"show_solutions,omitempty" jsonschema:"add a solution line under each problem"`
}

// ArrangeOutput is the output for the arrange tool.
type ArrangeOutput struct {
	Text    string           `json:"text"    jsonschema:"the arranged problems, lines joined by newlines"`
	Lines   []string         `json:"lines"   jsonschema:"the arranged lines"`
	Columns []arrange.Column `json:"columns" jsonschema:"per-problem columns with widths and solutions"`
}

func handleArrange(logger zerolog.Logger) mcp.ToolHandlerFor[ArrangeInput, ArrangeOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ArrangeInput) (*mcp.CallToolResult, ArrangeOutput, error) {
		arrangement, err := arrange.Arrange(input.Problems, arrange.WithSolutions(input.ShowSolutions))
		if err != nil {
			logger.Debug().Str("tool", "arrange").Err(err).Msg("rejected problem set")
			return nil, ArrangeOutput{}, err
		}
		logger.Debug().Str("tool", "arrange").Int("problems", len(input.Problems)).Msg("arranged")

		lines := arrangement.Lines
		if lines == nil {
			lines = []string{}
		}
		return nil, ArrangeOutput{
			Text:    arrangement.String(),
			Lines:   lines,
			Columns: arrangement.Columns,
		}, nil
	}
}

// --- Check tool ---

// CheckInput is the input for the check tool.
type CheckInput struct {
	Problems []string `json:"problems" jsonschema:"problems to validate"`
}

// CheckOutput is the output for the check tool.
type CheckOutput struct {
	Valid    bool              `json:"valid"              jsonschema:"whether the whole set passed"`
	Kind     string            `json:"kind,omitempty"     jsonschema:"failed check: too_many_problems, malformed_problem, operand_too_long, operand_not_numeric, invalid_operator"`
	Message  string            `json:"message,omitempty"  jsonschema:"validation message"`
	Index    *int              `json:"index,omitempty"    jsonschema:"zero-based index of the failing problem"`
	Problems []arrange.Problem `json:"problems,omitempty" jsonschema:"parsed problems when valid"`
}

func handleCheck(logger zerolog.Logger) mcp.ToolHandlerFor[CheckInput, CheckOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
		parsed, err := arrange.Validate(input.Problems)
		if err == nil {
			return nil, CheckOutput{Valid: true, Problems: parsed}, nil
		}

		var verr *arrange.ValidationError
		if !errors.As(err, &verr) {
			return nil, CheckOutput{}, err
		}
		logger.Debug().Str("tool", "check").Stringer("kind", verr.Kind).Int("index", verr.Index).Msg("invalid")

		out := CheckOutput{
			Valid:   false,
			Kind:    verr.Kind.String(),
			Message: verr.Error(),
		}
		if verr.Index >= 0 {
			index := verr.Index
			out.Index = &index
		}
		return nil, out, nil
	}
}

// --- Solve tool ---

// SolveInput is the input for the solve tool.
type SolveInput struct {
	Problem string `json:"problem" jsonschema:"a single problem such as '32 + 698'"`
}

// SolveOutput is the output for the solve tool.
type SolveOutput struct {
	Solution string `json:"solution" jsonschema:"the result in decimal"`
	Value    int    `json:"value"    jsonschema:"the result as an integer"`
}

func handleSolve(logger zerolog.Logger) mcp.ToolHandlerFor[SolveInput, SolveOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, SolveOutput, error) {
		value, err := arrange.SolveRaw(input.Problem)
		if err != nil {
			logger.Debug().Str("tool", "solve").Err(err).Msg("rejected problem")
			return nil, SolveOutput{}, err
		}
		return nil, SolveOutput{Solution: strconv.Itoa(value), Value: value}, nil
	}
}
