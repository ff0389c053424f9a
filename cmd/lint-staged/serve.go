// Package main provides the entry point for the lint-staged CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	lintstagedmcp "github.com/atdrago/lint-staged/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run lint-staged as a Model Context Protocol (MCP) server over stdio.

This exposes the stash/restore engine as MCP tools that any MCP-capable
agent environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "lint-staged": {
        "command": "lint-staged",
        "args": ["serve"]
      }
    }
  }

Available tools: files, status, save, pop`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, _, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			server := lintstagedmcp.NewServer(buildVersion(), opts)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
