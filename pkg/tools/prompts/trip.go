// Package prompts provides prompt templates for use with the MCP server.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTripPrompts registers all trip-planning prompts with the MCP server
func RegisterTripPrompts(s *server.MCPServer) {
	s.AddPrompt(mcp.NewPrompt("trip_planning",
		mcp.WithPromptDescription("Instructions for properly using the trip-planning tools"),
	), TripPlanningPromptHandler)

	s.AddPrompt(mcp.NewPrompt("plan_trip_examples",
		mcp.WithPromptDescription("Examples of effective plan_trip queries"),
	), PlanTripExamplesHandler)
}

// TripPlanningPromptHandler returns the main prompt for the trip tools
func TripPlanningPromptHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	systemPrompt := `You have access to trip-planning tools that combine geocoding,
weather, and attraction lookup for a destination. When using these tools:

1. Prefer plan_trip for full queries such as "I want to visit Manali"; it runs the
   whole pipeline and returns a single summary
2. Use geocode_place, get_weather, and find_attractions individually when the user
   asks about only one aspect of a destination
3. Name destinations as they would appear on a map, e.g. "Manali" or "New Delhi";
   include a country for ambiguous names ("Springfield, USA")
4. Weather and attraction lookups degrade gracefully; a result with success=true
   but null temperature means the forecast was unavailable, not that the place
   does not exist
5. If geocoding fails, check the error message: PLACE_NOT_FOUND means the name was
   not recognized, so try a simpler or better-known spelling`

	return mcp.NewGetPromptResult(
		"Trip Planning Tool Usage Guidelines",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(systemPrompt),
			),
		},
	), nil
}

// PlanTripExamplesHandler returns examples for plan_trip
func PlanTripExamplesHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	examplesPrompt := `EXAMPLES OF EFFECTIVE PLAN_TRIP USAGE:

User: "I'm planning a trip to Manali next week"
AI: *uses plan_trip with "I'm planning a trip to Manali next week"*

User: "What can you tell me about visiting Jaipur?"
AI: *uses plan_trip with "What can you tell me about visiting Jaipur?"*

User: "Just the weather in Goa, please"
AI: *uses geocode_place with "Goa", then get_weather with the returned coordinates*

ERROR CORRECTION PATTERN:
1. If plan_trip reports that the place could not be found, extract the destination
   yourself and retry with only the place name
2. If the name is still not recognized, add a region or country ("Manali, India")
3. Report degraded fields honestly: "--" in the summary means that information was
   unavailable at the time of the query`

	return mcp.NewGetPromptResult(
		"Plan Trip Examples",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(examplesPrompt),
			),
		},
	), nil
}
