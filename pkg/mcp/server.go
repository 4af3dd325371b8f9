// Package mcp exposes the asset generation API as MCP tools so agents
// can browse orgs, projects, assets and generation output.
package mcp

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/RPP1011/asset-gen-tool/pkg/client"
	"github.com/RPP1011/asset-gen-tool/pkg/config"
)

const (
	// ServerName is the name of the MCP server.
	ServerName = "assetgen-mcp"
	// ServerVersion is the version of the MCP server.
	ServerVersion = "0.1.0"
)

// Server wraps the MCP server with asset generation tooling.
type Server struct {
	mcpServer *server.MCPServer
	handlers  *Handlers
}

// NewServer creates a new MCP server against the configured API.
func NewServer() *Server {
	apiURL := os.Getenv("AGT_API_URL")
	if apiURL == "" {
		apiURL = config.GetAPIUrl()
	}

	c := client.New(apiURL, client.WithUserAgent(ServerName+"/"+ServerVersion))
	return NewServerWithClient(c)
}

// NewServerWithClient creates an MCP server over an explicit API client.
func NewServerWithClient(c *client.Client) *Server {
	handlers := NewHandlers(c)

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		mcpServer: mcpServer,
		handlers:  handlers,
	}

	s.registerTools()

	return s
}

// registerTools registers all asset generation tools with the MCP server.
func (s *Server) registerTools() {
	tools := ToolDefinitions()

	for _, tool := range tools {
		switch tool.Name {
		case "assetgen_health":
			s.mcpServer.AddTool(tool, s.handlers.HandleHealth)
		case "assetgen_orgs":
			s.mcpServer.AddTool(tool, s.handlers.HandleListOrgs)
		case "assetgen_org":
			s.mcpServer.AddTool(tool, s.handlers.HandleGetOrg)
		case "assetgen_projects":
			s.mcpServer.AddTool(tool, s.handlers.HandleListProjects)
		case "assetgen_project":
			s.mcpServer.AddTool(tool, s.handlers.HandleGetProject)
		case "assetgen_assets":
			s.mcpServer.AddTool(tool, s.handlers.HandleListAssets)
		case "assetgen_asset":
			s.mcpServer.AddTool(tool, s.handlers.HandleGetAsset)
		case "assetgen_generations":
			s.mcpServer.AddTool(tool, s.handlers.HandleListGenerations)
		case "assetgen_variants":
			s.mcpServer.AddTool(tool, s.handlers.HandleListVariants)
		case "assetgen_themes":
			s.mcpServer.AddTool(tool, s.handlers.HandleListThemes)
		}
	}
}

// Serve starts the MCP server on stdio.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeContext starts the MCP server on stdio with a context.
func (s *Server) ServeContext(ctx context.Context) error {
	return server.ServeStdio(s.mcpServer, server.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

// GetMCPServer returns the underlying MCP server for testing.
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}
