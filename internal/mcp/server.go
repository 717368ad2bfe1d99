// Package mcp provides a Model Context Protocol server for pd.
// It exposes the content store as MCP tools that any MCP-capable agent can
// use to list, read, search, hydrate, and publish prompts.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/promptdir/pd/internal/store"
)

// NewServer creates an MCP server with all pd tools registered over the
// given store.
func NewServer(version string, st *store.Store) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "pd",
		Version: version,
	}, nil)
	registerTools(server, st)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all pd tools to the server.
func registerTools(server *mcp.Server, st *store.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List all items of the configured kind: your own first, then other users' as owner/name.",
		Annotations: readOnlyAnnotations(),
	}, handleList(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read",
		Description: "Read one item's raw content by address ([owner/]name).",
		Annotations: readOnlyAnnotations(),
	}, handleRead(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Search every cached item for a literal, case-sensitive substring. Returns address, line number, and matching line.",
		Annotations: readOnlyAnnotations(),
	}, handleSearch(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "hydrate",
		Description: "Fill a prompt template's {placeholder} tokens with arguments and return the finished prompt.",
		Annotations: readOnlyAnnotations(),
	}, handleHydrate(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "write",
		Description: "Create or overwrite an item in your own branch, commit, and push it.",
		Annotations: writeAnnotations(),
	}, handleWrite(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fork",
		Description: "Copy another user's item into your own branch under the same name.",
		Annotations: writeAnnotations(),
	}, handleFork(st))
}
