// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	pdmcp "github.com/promptdir/pd/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run pd as a Model Context Protocol (MCP) server over stdio.

This exposes the prompt store as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "pd": {
        "command": "pd",
        "args": ["serve"]
      }
    }
  }

Available tools: list, read, search, hydrate, write, fork`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := buildStore(cmd)
			if err != nil {
				return err
			}
			server := pdmcp.NewServer(buildVersion(), st)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
