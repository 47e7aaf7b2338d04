// Package mcp provides a Model Context Protocol server for arranger.
// It exposes arranging, checking, and solving as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// NewServer creates an MCP server with all arranger tools registered.
func NewServer(version string, logger zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "arranger",
		Version: version,
	}, nil)
	registerTools(server, logger)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// pureAnnotations marks tools that only compute over their input.
func pureAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all arranger tools to the server.
func registerTools(server *mcp.Server, logger zerolog.Logger) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "arrange",
		Description: "Arrange up to five addition/subtraction problems (e.g. \"32 + 698\") vertically " +
			"in side-by-side columns, optionally with solutions. Invalid problem sets return the validation message as an error.",
		Annotations: pureAnnotations(),
	}, handleArrange(logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Validate a problem set without arranging it. Reports the first failed check and its kind.",
		Annotations: pureAnnotations(),
	}, handleCheck(logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve",
		Description: "Solve a single addition/subtraction problem such as \"1 - 3801\".",
		Annotations: pureAnnotations(),
	}, handleSolve(logger))
}
