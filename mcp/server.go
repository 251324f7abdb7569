package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/pablomv/esios-mcp/internal/esios"
)

const serverName = "esios-mcp"
const serverVersion = "1.0.0"

// Serve starts the MCP stdio server with both ESIOS tools registered.
func Serve(client *esios.Client) error {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	registerTools(s, client)

	return server.ServeStdio(s)
}
