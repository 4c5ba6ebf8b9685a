// Package meteo provides a client for the Open-Meteo forecast service.
package meteo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wanderkit/tripagent/pkg/geo"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com"

// Report holds current weather conditions for a coordinate.
// PrecipChance is nil when the hourly series lookup failed; temperature
// alone is still a successful report.
type Report struct {
	TemperatureC float64
	PrecipChance *int
}

// Sentence formats the report as the natural-language summary handed to
// downstream consumers alongside the raw values.
func (r Report) Sentence() string {
	s := fmt.Sprintf("The current temperature is %s°C",
		strconv.FormatFloat(r.TemperatureC, 'f', -1, 64))
	if r.PrecipChance != nil {
		s += fmt.Sprintf(" with a %d%% chance of rain", *r.PrecipChance)
	}
	return s + "."
}

// Client fetches current weather conditions from Open-Meteo.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates an Open-Meteo client.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With("client", "open-meteo"),
	}
}

// forecastResponse is the subset of the Open-Meteo response the report needs.
type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		Time        string  `json:"time"`
	} `json:"current_weather"`
	Hourly struct {
		Time                     []string `json:"time"`
		PrecipitationProbability []int    `json:"precipitation_probability"`
	} `json:"hourly"`
}

// CurrentConditions fetches the current temperature and the precipitation
// probability for the current forecast hour. A failed hourly lookup (missing
// timestamp, short series) omits the precipitation chance instead of failing
// the call.
func (c *Client) CurrentConditions(ctx context.Context, loc geo.Location) (*Report, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	reqURL, err := url.Parse(c.baseURL + "/v1/forecast")
	if err != nil {
		return nil, fmt.Errorf("parse forecast URL: %w", err)
	}
	q := reqURL.Query()
	q.Add("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Add("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	q.Add("current_weather", "true")
	q.Add("hourly", "precipitation_probability")
	q.Add("forecast_days", "1")
	q.Add("timezone", "auto")
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create forecast request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("forecast request failed", "error", err)
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("forecast service returned error", "status", resp.StatusCode)
		return nil, fmt.Errorf("forecast service error: status %d", resp.StatusCode)
	}

	var fr forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	report := &Report{TemperatureC: fr.CurrentWeather.Temperature}
	if chance, ok := currentHourChance(fr); ok {
		report.PrecipChance = &chance
	} else {
		c.logger.Debug("precipitation probability unavailable for current hour",
			"time", fr.CurrentWeather.Time)
	}

	return report, nil
}

// currentHourChance looks up the precipitation probability for the current
// forecast hour in the hourly series.
func currentHourChance(fr forecastResponse) (int, bool) {
	for i, ts := range fr.Hourly.Time {
		if ts != fr.CurrentWeather.Time {
			continue
		}
		if i >= len(fr.Hourly.PrecipitationProbability) {
			return 0, false
		}
		return fr.Hourly.PrecipitationProbability[i], true
	}
	return 0, false
}
