package osm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/wanderkit/tripagent/pkg/geo"
)

// Geocoding failure modes. The trip assembler needs to tell these apart to
// describe which stage failed, so they are surfaced as distinct conditions
// rather than collapsed into one error.
var (
	// ErrPlaceNotFound means the geocoding service returned an empty result set.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrMalformedResponse means the geocoding response was missing or had
	// unparseable coordinate fields.
	ErrMalformedResponse = errors.New("malformed geocoding response")
)

// GeocodeClient resolves place names to coordinates via Nominatim.
type GeocodeClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
	throttle  *rate.Limiter
	logger    *slog.Logger
}

// NewGeocodeClient creates a Nominatim client. The throttle is the shared
// process-wide limiter that spaces out calls to the service; it must be the
// same instance for every client talking to the same Nominatim host.
func NewGeocodeClient(baseURL string, throttle *rate.Limiter, logger *slog.Logger) *GeocodeClient {
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	if throttle == nil {
		throttle = NewThrottle(NominatimMinInterval)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeocodeClient{
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
		http:      NewHTTPClient(),
		throttle:  throttle,
		logger:    logger.With("client", "nominatim"),
	}
}

// SetUserAgent overrides the User-Agent sent to Nominatim.
func (c *GeocodeClient) SetUserAgent(ua string) {
	if ua != "" {
		c.userAgent = ua
	}
}

// nominatimResult is a single candidate match from the /search endpoint.
// Nominatim serializes coordinates as strings.
type nominatimResult struct {
	PlaceID     json.Number `json:"place_id"`
	DisplayName string      `json:"display_name"`
	Lat         string      `json:"lat"`
	Lon         string      `json:"lon"`
	Type        string      `json:"type"`
	Importance  float64     `json:"importance"`
}

// Geocode resolves a place name to its best-matching location. It issues a
// single lookup with limit=1 and takes the first result. The shared throttle
// is paid before every call.
func (c *GeocodeClient) Geocode(ctx context.Context, place string) (*geo.Place, error) {
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocoding throttle: %w", err)
	}

	reqURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("parse geocoding URL: %w", err)
	}
	q := reqURL.Query()
	q.Add("q", place)
	q.Add("format", "json")
	q.Add("limit", "1")
	reqURL.RawQuery = q.Encode()

	req, err := newRequest(ctx, http.MethodGet, reqURL.String(), c.userAgent, nil)
	if err != nil {
		return nil, fmt.Errorf("create geocoding request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("geocoding request failed", "place", place, "error", err)
		return nil, fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("geocoding service returned error", "status", resp.StatusCode)
		return nil, fmt.Errorf("geocoding service error: status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrPlaceNotFound, place)
	}

	best := results[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad latitude %q", ErrMalformedResponse, best.Lat)
	}
	lon, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad longitude %q", ErrMalformedResponse, best.Lon)
	}

	c.logger.Debug("geocoded place", "place", place, "lat", lat, "lon", lon)

	return &geo.Place{
		ID:          best.PlaceID.String(),
		Name:        place,
		DisplayName: best.DisplayName,
		Location:    geo.Location{Latitude: lat, Longitude: lon},
	}, nil
}
