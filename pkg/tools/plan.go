package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// PlanTripTool returns a tool definition for planning a trip.
func PlanTripTool() mcp.Tool {
	return mcp.NewTool("plan_trip",
		mcp.WithDescription("Plan a trip from a free-text query: resolves the place, fetches current weather and finds nearby tourist attractions"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The free-text travel query, e.g. \"I'm going to go to Bangalore, let's plan my trip.\""),
		),
	)
}

// HandlePlanTrip runs the full trip-planning pipeline for a query.
func (r *Registry) HandlePlanTrip(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "plan_trip")

	query := mcp.ParseString(req, "query", "")
	if strings.TrimSpace(query) == "" {
		return ErrorResponse("Query must not be empty"), nil
	}

	result := r.planner.Plan(ctx, query)

	resultBytes, err := json.Marshal(result)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}
