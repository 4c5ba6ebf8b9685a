package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wanderkit/tripagent/pkg/geo"
)

// FindAttractionsTool returns a tool definition for finding nearby attractions.
func FindAttractionsTool() mcp.Tool {
	return mcp.NewTool("find_attractions",
		mcp.WithDescription("Find up to 5 tourist attractions within 10 km of a coordinate"),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("The latitude coordinate of the center point"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("The longitude coordinate of the center point"),
		),
	)
}

// attractionOutput is one attraction in the tool response. Coordinates and
// distance are omitted when the source element had no usable center point.
type attractionOutput struct {
	Name           string        `json:"name"`
	Location       *geo.Location `json:"location,omitempty"`
	DistanceMeters *float64      `json:"distance_meters,omitempty"`
}

// HandleFindAttractions implements the attraction search functionality.
func (r *Registry) HandleFindAttractions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "find_attractions")

	loc := geo.Location{
		Latitude:  mcp.ParseFloat64(req, "latitude", 0),
		Longitude: mcp.ParseFloat64(req, "longitude", 0),
	}
	if err := loc.Validate(); err != nil {
		return ErrorResponse(err.Error()), nil
	}

	found, err := r.attractions.FindAttractions(ctx, loc)
	if err != nil {
		logger.Error("attraction lookup failed", "error", err)
		return ErrorWithGuidance(NewAPIError("Overpass", 0, "Failed to fetch nearby attractions", GuidanceOverpassGeneral)), nil
	}

	outputs := make([]attractionOutput, 0, len(found))
	for _, a := range found {
		out := attractionOutput{Name: a.Name, Location: a.Location}
		if a.Location != nil {
			d := geo.HaversineDistance(loc.Latitude, loc.Longitude, a.Location.Latitude, a.Location.Longitude)
			out.DistanceMeters = &d
		}
		outputs = append(outputs, out)
	}

	resultBytes, err := json.Marshal(struct {
		Attractions []attractionOutput `json:"attractions"`
	}{Attractions: outputs})
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}
