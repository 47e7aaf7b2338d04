package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/logging"
	arrangermcp "github.com/abulhuman/fcc-arithmetic-formatter/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run arranger as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "arranger": {
        "command": "arranger",
        "args": ["serve"]
      }
    }
  }

Available tools: arrange, check, solve`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())
			server := arrangermcp.NewServer(buildVersion(), *logger)

			logger.Debug().Str("version", buildVersion()).Msg("mcp server starting")
			err := server.Run(cmd.Context(), &mcp.StdioTransport{})
			logger.Debug().Err(err).Msg("mcp server stopped")
			return err
		},
	}
}
