package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wanderkit/tripagent/pkg/geo"
	"github.com/wanderkit/tripagent/pkg/meteo"
	"github.com/wanderkit/tripagent/pkg/osm"
	"github.com/wanderkit/tripagent/pkg/testutil"
	"github.com/wanderkit/tripagent/pkg/trip"
)

type stubGeocoder struct {
	place *geo.Place
	err   error
}

func (s *stubGeocoder) Geocode(_ context.Context, _ string) (*geo.Place, error) {
	return s.place, s.err
}

type stubWeather struct {
	report *meteo.Report
	err    error
}

func (s *stubWeather) CurrentConditions(_ context.Context, _ geo.Location) (*meteo.Report, error) {
	return s.report, s.err
}

type stubAttractions struct {
	attractions []osm.Attraction
	err         error
}

func (s *stubAttractions) FindAttractions(_ context.Context, _ geo.Location) ([]osm.Attraction, error) {
	return s.attractions, s.err
}

func newRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: struct {
			Name      string         `json:"name"`
			Arguments map[string]any `json:"arguments,omitempty"`
			Meta      *struct {
				ProgressToken mcp.ProgressToken `json:"progressToken,omitempty"`
			} `json:"_meta,omitempty"`
		}{
			Name:      name,
			Arguments: args,
		},
	}
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			return text.Text
		}
	}
	t.Fatal("no text content in result")
	return ""
}

func newTestRegistry(g *stubGeocoder, w *stubWeather, a *stubAttractions) *Registry {
	logger := testutil.DiscardLogger()
	planner := trip.NewPlanner(g, w, a, logger)
	return NewRegistry(logger, planner, g, w, a)
}

func TestHandlePlanTrip(t *testing.T) {
	registry := newTestRegistry(
		&stubGeocoder{place: &geo.Place{
			Name:     "Manali",
			Location: geo.Location{Latitude: 32.2454608, Longitude: 77.1872926},
		}},
		&stubWeather{report: &meteo.Report{TemperatureC: 3.2}},
		&stubAttractions{attractions: []osm.Attraction{
			{Name: "Hadimba Temple", Location: &geo.Location{Latitude: 32.2458, Longitude: 77.1807}},
		}},
	)

	result, err := registry.HandlePlanTrip(context.Background(), newRequest("plan_trip", map[string]any{
		"query": "trip to Manali",
	}))
	if err != nil {
		t.Fatalf("HandlePlanTrip() returned error: %v", err)
	}

	var out trip.Result
	if err := json.Unmarshal([]byte(textContent(t, result)), &out); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if !out.Success {
		t.Error("expected success=true")
	}
	if out.Place != "Manali" {
		t.Errorf("place = %q, want Manali", out.Place)
	}
	if out.Latitude != 32.2454608 {
		t.Errorf("latitude = %f, want 32.2454608", out.Latitude)
	}
}

func TestHandlePlanTripEmptyQuery(t *testing.T) {
	registry := newTestRegistry(&stubGeocoder{}, &stubWeather{}, &stubAttractions{})

	result, err := registry.HandlePlanTrip(context.Background(), newRequest("plan_trip", map[string]any{
		"query": "   ",
	}))
	if err != nil {
		t.Fatalf("HandlePlanTrip() returned error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for blank query")
	}
}

func TestHandleGeocodePlaceErrors(t *testing.T) {
	tests := []struct {
		name         string
		geocodeErr   error
		wantGuidance string
	}{
		{
			name:         "Not found",
			geocodeErr:   osm.ErrPlaceNotFound,
			wantGuidance: GuidanceNominatimNotFound,
		},
		{
			name:         "Malformed",
			geocodeErr:   osm.ErrMalformedResponse,
			wantGuidance: GuidanceNominatimGeneral,
		},
		{
			name:         "Network",
			geocodeErr:   errors.New("connection refused"),
			wantGuidance: GuidanceNetworkError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			registry := newTestRegistry(&stubGeocoder{err: tc.geocodeErr}, &stubWeather{}, &stubAttractions{})

			result, err := registry.HandleGeocodePlace(context.Background(), newRequest("geocode_place", map[string]any{
				"place": "Nowhere",
			}))
			if err != nil {
				t.Fatalf("HandleGeocodePlace() returned error: %v", err)
			}
			if !result.IsError {
				t.Fatal("expected error result")
			}
			if text := textContent(t, result); !strings.Contains(text, tc.wantGuidance) {
				t.Errorf("error text %q missing guidance %q", text, tc.wantGuidance)
			}
		})
	}
}

func TestHandleGetWeatherValidation(t *testing.T) {
	registry := newTestRegistry(&stubGeocoder{}, &stubWeather{}, &stubAttractions{})

	result, err := registry.HandleGetWeather(context.Background(), newRequest("get_weather", map[string]any{
		"latitude":  91.0,
		"longitude": 0.0,
	}))
	if err != nil {
		t.Fatalf("HandleGetWeather() returned error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for latitude out of range")
	}
}

func TestHandleFindAttractionsDistances(t *testing.T) {
	registry := newTestRegistry(&stubGeocoder{}, &stubWeather{}, &stubAttractions{
		attractions: []osm.Attraction{
			{Name: "Near", Location: &geo.Location{Latitude: 32.25, Longitude: 77.19}},
			{Name: "Unlocated"},
		},
	})

	result, err := registry.HandleFindAttractions(context.Background(), newRequest("find_attractions", map[string]any{
		"latitude":  32.2454608,
		"longitude": 77.1872926,
	}))
	if err != nil {
		t.Fatalf("HandleFindAttractions() returned error: %v", err)
	}

	var out struct {
		Attractions []attractionOutput `json:"attractions"`
	}
	if err := json.Unmarshal([]byte(textContent(t, result)), &out); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if len(out.Attractions) != 2 {
		t.Fatalf("got %d attractions, want 2", len(out.Attractions))
	}
	if out.Attractions[0].DistanceMeters == nil {
		t.Error("expected distance for located attraction")
	}
	if out.Attractions[1].DistanceMeters != nil {
		t.Error("expected no distance for unlocated attraction")
	}
}
