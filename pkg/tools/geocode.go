package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wanderkit/tripagent/pkg/osm"
)

// GeocodePlaceTool returns a tool definition for geocoding place names.
func GeocodePlaceTool() mcp.Tool {
	return mcp.NewTool("geocode_place",
		mcp.WithDescription("Convert a place name to geographic coordinates"),
		mcp.WithString("place",
			mcp.Required(),
			mcp.Description("The place name to geocode"),
		),
	)
}

// HandleGeocodePlace implements the geocoding functionality.
func (r *Registry) HandleGeocodePlace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "geocode_place")

	place := mcp.ParseString(req, "place", "")
	if place == "" {
		return ErrorResponse("Place must not be empty"), nil
	}

	resolved, err := r.geocoder.Geocode(ctx, place)
	if err != nil {
		logger.Error("geocoding failed", "place", place, "error", err)
		switch {
		case errors.Is(err, osm.ErrPlaceNotFound):
			return ErrorWithGuidance(NewAPIError("Nominatim", 0, "No results found for the place name", GuidanceNominatimNotFound)), nil
		case errors.Is(err, osm.ErrMalformedResponse):
			return ErrorWithGuidance(NewAPIError("Nominatim", 0, "The geocoding response could not be parsed", GuidanceNominatimGeneral)), nil
		default:
			return ErrorWithGuidance(NewAPIError("Nominatim", 0, "Failed to communicate with the geocoding service", GuidanceNetworkError)), nil
		}
	}

	resultBytes, err := json.Marshal(struct {
		Place interface{} `json:"place"`
	}{Place: resolved})
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}
