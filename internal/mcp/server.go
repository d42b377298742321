// ABOUTME: MCP server setup for the grata goal tracker.
// ABOUTME: Wraps MCP server with repository and progress ledger access.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/TanmayDabhade/grata/internal/progress"
	"github.com/TanmayDabhade/grata/internal/storage"
)

// Server wraps the MCP server with storage and ledger access.
type Server struct {
	mcpServer  *mcp.Server
	repo       storage.Repository
	ledger     *progress.Ledger
	analytics  *progress.Analytics
	targetDays int
}

// NewServer creates a new MCP server over the given repository and ledger.
func NewServer(repo storage.Repository, ledger *progress.Ledger, targetDays int) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "grata",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer:  mcpServer,
		repo:       repo,
		ledger:     ledger,
		analytics:  progress.NewAnalytics(ledger),
		targetDays: targetDays,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
