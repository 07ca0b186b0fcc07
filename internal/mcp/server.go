package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/lmenard/dskit-mcp/internal/catalog"
	"github.com/lmenard/dskit-mcp/internal/docs"
)

const (
	// ServerName is the MCP server name
	ServerName = "dskit-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultCacheSize bounds how many section files stay in memory
	DefaultCacheSize = 50
)

// Server wraps the MCP server with the loaded catalog and query engines
type Server struct {
	mcp     *server.MCPServer
	catalog *catalog.Catalog
	docs    *docs.Engine
}

// NewServer loads the documentation artifacts from dataDir and builds the
// MCP server. A missing artifact is fatal here: the process must not serve
// any request without its full corpus.
func NewServer(dataDir string, cacheSize int) (*Server, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cat, err := catalog.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load documentation artifacts: %w", err)
	}

	content, err := catalog.NewContentStore(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize content cache: %w", err)
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:     mcpServer,
		catalog: cat,
		docs:    docs.NewEngine(cat, content),
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(listEntriesTool(), s.handleListEntries)
	s.mcp.AddTool(getEntrySectionTool(), s.handleGetEntrySection)
	s.mcp.AddTool(searchEntriesTool(), s.handleSearchEntries)
	s.mcp.AddTool(searchIconsTool(), s.handleSearchIcons)
	s.mcp.AddTool(getColorTokensTool(), s.handleGetColorTokens)
}
