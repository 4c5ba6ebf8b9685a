// Package server provides the MCP server implementation for the trip
// planner, exposing the pipeline as tools for agent hosts.
package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/wanderkit/tripagent/pkg/tools"
	"github.com/wanderkit/tripagent/pkg/tools/prompts"
	"github.com/wanderkit/tripagent/pkg/version"
)

// ServerName is the name of the MCP server
const ServerName = "tripagent"

// Server encapsulates the MCP server with the trip-planning tools.
type Server struct {
	srv *server.MCPServer
}

// NewServer creates a new trip-planner MCP server with all tools registered.
func NewServer(logger *slog.Logger, registry *tools.Registry) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("initializing trip planner MCP server",
		"name", ServerName,
		"version", version.BuildVersion)

	srv := server.NewMCPServer(
		ServerName,
		version.BuildVersion,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)

	registry.RegisterTools(srv)
	prompts.RegisterTripPrompts(srv)

	return &Server{srv: srv}, nil
}

// Run starts the MCP server using stdin/stdout for communication.
func (s *Server) Run() error {
	return server.ServeStdio(s.srv)
}
