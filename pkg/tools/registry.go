package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wanderkit/tripagent/pkg/trip"
)

// Registry holds the MCP tool registrations and the upstream clients the
// handlers run against.
type Registry struct {
	logger      *slog.Logger
	planner     *trip.Planner
	geocoder    trip.Geocoder
	weather     trip.WeatherService
	attractions trip.AttractionFinder
}

// NewRegistry creates a new MCP tool registry over the given clients.
func NewRegistry(logger *slog.Logger, planner *trip.Planner, geocoder trip.Geocoder, weather trip.WeatherService, attractions trip.AttractionFinder) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:      logger,
		planner:     planner,
		geocoder:    geocoder,
		weather:     weather,
		attractions: attractions,
	}
}

// ToolDefinition represents a trip-planning MCP tool definition.
type ToolDefinition struct {
	Name        string
	Description string
	Tool        mcp.Tool
	Handler     func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// GetToolDefinitions returns all trip-planning MCP tool definitions.
func (r *Registry) GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "plan_trip",
			Description: "Plan a trip from a free-text query: weather plus nearby attractions",
			Tool:        PlanTripTool(),
			Handler:     r.HandlePlanTrip,
		},
		{
			Name:        "geocode_place",
			Description: "Convert a place name to geographic coordinates",
			Tool:        GeocodePlaceTool(),
			Handler:     r.HandleGeocodePlace,
		},
		{
			Name:        "get_weather",
			Description: "Get current weather conditions for a coordinate",
			Tool:        GetWeatherTool(),
			Handler:     r.HandleGetWeather,
		},
		{
			Name:        "find_attractions",
			Description: "Find tourist attractions near a coordinate",
			Tool:        FindAttractionsTool(),
			Handler:     r.HandleFindAttractions,
		},
	}
}

// RegisterTools registers all tools with the MCP server.
func (r *Registry) RegisterTools(mcpServer *server.MCPServer) {
	for _, def := range r.GetToolDefinitions() {
		r.logger.Info("registering tool", "name", def.Name)
		mcpServer.AddTool(def.Tool, def.Handler)
	}
}
