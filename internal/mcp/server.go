// Package mcp provides a Model Context Protocol server for lint-staged.
// It exposes the stash/restore engine as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atdrago/lint-staged/internal/git"
)

// NewServer creates an MCP server with all lint-staged tools registered.
// opts selects the repository the tools operate on.
func NewServer(version string, opts git.Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "lint-staged",
		Version: version,
	}, nil)
	registerTools(server, opts)
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

// writeAnnotations returns annotations for tools that rearrange the working
// tree and stash. Nothing is lost: every state survives as a stash entry,
// patch file, or tree object until cleanup.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all lint-staged tools to the server.
func registerTools(server *mcp.Server, opts git.Options) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "files",
		Description: "List files whose working-tree content differs from the index. These are the changes a save would stash away.",
		Annotations: readOnlyAnnotations(),
	}, handleFiles(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show repository and session state: repo name, branch, HEAD, unstaged file count, and whether a saved patch is waiting to be restored.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save",
		Description: "Capture unstaged modifications as a patch and stash them, leaving the working tree holding exactly the staged content. Run hooks or formatters afterwards, then pop.",
		Annotations: writeAnnotations(),
	}, handleSave(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pop",
		Description: "Restore the previously saved unstaged modifications on top of any staged hook fixes, then drop the stash and patch file. Reports whether the two sides conflicted.",
		Annotations: writeAnnotations(),
	}, handlePop(opts))
}
