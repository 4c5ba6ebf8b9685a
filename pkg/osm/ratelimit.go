package osm

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	// NominatimMinInterval is the minimum spacing between Nominatim calls.
	// Nominatim's usage policy forbids more than one request per second:
	// https://operations.osmfoundation.org/policies/nominatim/
	NominatimMinInterval = time.Second

	// OverpassMinInterval is the minimum spacing between Overpass calls.
	OverpassMinInterval = time.Second
)

// NewThrottle returns a rate limiter enforcing a minimum interval between
// consecutive calls with no burst allowance. A single throttle instance is
// meant to be shared process-wide by every caller of the same upstream
// service; rate.Limiter is internally synchronized, so concurrent requests
// serialize on it safely.
func NewThrottle(minInterval time.Duration) *rate.Limiter {
	return rate.NewLimiter(rate.Every(minInterval), 1)
}
