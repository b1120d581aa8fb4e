package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewMojolintMCPServer creates a new MCP server with all mojolint tools and
// resources registered. The projectPath is the root directory of the Mojo
// tree to scan.
func NewMojolintMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"mojolint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
