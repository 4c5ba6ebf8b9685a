package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wanderkit/tripagent/pkg/geo"
)

// GetWeatherTool returns a tool definition for fetching current weather.
func GetWeatherTool() mcp.Tool {
	return mcp.NewTool("get_weather",
		mcp.WithDescription("Get the current temperature and precipitation chance for a coordinate"),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("The latitude coordinate"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("The longitude coordinate"),
		),
	)
}

// HandleGetWeather implements the weather lookup functionality.
func (r *Registry) HandleGetWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "get_weather")

	loc := geo.Location{
		Latitude:  mcp.ParseFloat64(req, "latitude", 0),
		Longitude: mcp.ParseFloat64(req, "longitude", 0),
	}
	if err := loc.Validate(); err != nil {
		return ErrorResponse(err.Error()), nil
	}

	report, err := r.weather.CurrentConditions(ctx, loc)
	if err != nil {
		logger.Error("weather lookup failed", "error", err)
		return ErrorWithGuidance(NewAPIError("Open-Meteo", 0, "Failed to fetch current weather", GuidanceMeteoGeneral)), nil
	}

	output := struct {
		Temperature         float64 `json:"temperature"`
		PrecipitationChance *int    `json:"precipitation_chance"`
		Sentence            string  `json:"sentence"`
	}{
		Temperature:         report.TemperatureC,
		PrecipitationChance: report.PrecipChance,
		Sentence:            report.Sentence(),
	}

	resultBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}
