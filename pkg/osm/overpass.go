package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/wanderkit/tripagent/pkg/geo"
	"github.com/wanderkit/tripagent/pkg/osm/queries"
)

const (
	// AttractionRadiusMeters is the fixed search radius around the
	// geocoded coordinate.
	AttractionRadiusMeters = 10000

	// MaxAttractions caps how many named attractions are returned.
	MaxAttractions = 5
)

// Attraction is a named point of interest. The coordinate is optional:
// Overpass may return geometries without a usable center point, in which
// case the name is still kept for display.
type Attraction struct {
	Name     string
	Location *geo.Location
}

// OverpassClient finds tourist attractions near a coordinate via the
// Overpass API.
type OverpassClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
	throttle  *rate.Limiter
	logger    *slog.Logger
}

// NewOverpassClient creates an Overpass client. A nil throttle disables
// call spacing; pass a shared limiter when talking to a public instance.
func NewOverpassClient(baseURL string, throttle *rate.Limiter, logger *slog.Logger) *OverpassClient {
	if baseURL == "" {
		baseURL = DefaultOverpassBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OverpassClient{
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
		http:      NewHTTPClient(),
		throttle:  throttle,
		logger:    logger.With("client", "overpass"),
	}
}

// SetUserAgent overrides the User-Agent sent to Overpass.
func (c *OverpassClient) SetUserAgent(ua string) {
	if ua != "" {
		c.userAgent = ua
	}
}

// overpassElement is one element from an Overpass response. Coordinates use
// pointers so a missing field is distinguishable from a genuine 0.
type overpassElement struct {
	ID     int64    `json:"id"`
	Type   string   `json:"type"`
	Lat    *float64 `json:"lat,omitempty"`
	Lon    *float64 `json:"lon,omitempty"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center,omitempty"`
	Tags map[string]string `json:"tags"`
}

// FindAttractions returns up to MaxAttractions named attractions within the
// fixed radius of loc, preserving the upstream response order. Unnamed
// elements are dropped. An empty result set is a valid outcome, not an
// error. Elements without a direct coordinate fall back to the Overpass
// center point; if neither exists the attraction is returned without a
// location.
func (c *OverpassClient) FindAttractions(ctx context.Context, loc geo.Location) ([]Attraction, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	if c.throttle != nil {
		if err := c.throttle.Wait(ctx); err != nil {
			return nil, fmt.Errorf("overpass throttle: %w", err)
		}
	}

	query := queries.Attractions(loc.Latitude, loc.Longitude, AttractionRadiusMeters)

	req, err := newRequest(ctx, http.MethodPost, c.baseURL, c.userAgent,
		strings.NewReader("data="+url.QueryEscape(query)))
	if err != nil {
		return nil, fmt.Errorf("create overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("overpass request failed", "error", err)
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("overpass service returned error", "status", resp.StatusCode)
		return nil, fmt.Errorf("overpass service error: status %d", resp.StatusCode)
	}

	var overpassResp struct {
		Elements []overpassElement `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	attractions := make([]Attraction, 0, MaxAttractions)
	for _, element := range overpassResp.Elements {
		name := element.Tags["name"]
		if name == "" {
			continue
		}

		a := Attraction{Name: name}
		switch {
		case element.Lat != nil && element.Lon != nil:
			a.Location = &geo.Location{Latitude: *element.Lat, Longitude: *element.Lon}
		case element.Center != nil:
			a.Location = &geo.Location{Latitude: element.Center.Lat, Longitude: element.Center.Lon}
		}

		attractions = append(attractions, a)
		if len(attractions) == MaxAttractions {
			break
		}
	}

	c.logger.Debug("found attractions",
		"count", len(attractions),
		"lat", loc.Latitude,
		"lon", loc.Longitude)

	return attractions, nil
}
