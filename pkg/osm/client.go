// Package osm provides clients for the OpenStreetMap services the trip
// pipeline depends on: Nominatim for geocoding and Overpass for attractions.
package osm

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultNominatimBaseURL is the public Nominatim geocoding endpoint.
	DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

	// DefaultOverpassBaseURL is the public Overpass API endpoint.
	DefaultOverpassBaseURL = "https://overpass-api.de/api/interpreter"

	// DefaultUserAgent identifies this service to the OSM APIs.
	// Nominatim's usage policy requires a meaningful User-Agent.
	DefaultUserAgent = "tripagent/0.1.0"
)

// NewHTTPClient returns an HTTP client configured for OSM API requests,
// with connection pooling and a fixed per-request timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			MaxConnsPerHost:     10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// newRequest creates an HTTP request with the User-Agent header set.
func newRequest(ctx context.Context, method, url, userAgent string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}
