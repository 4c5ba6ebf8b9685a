package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wanderkit/tripagent/pkg/extract"
	"github.com/wanderkit/tripagent/pkg/geo"
	"github.com/wanderkit/tripagent/pkg/meteo"
	"github.com/wanderkit/tripagent/pkg/osm"
)

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (*geo.Place, error)
}

// WeatherService fetches current conditions for a coordinate.
type WeatherService interface {
	CurrentConditions(ctx context.Context, loc geo.Location) (*meteo.Report, error)
}

// AttractionFinder finds nearby attractions for a coordinate.
type AttractionFinder interface {
	FindAttractions(ctx context.Context, loc geo.Location) ([]osm.Attraction, error)
}

// Planner runs the trip-planning pipeline. Geocoding must complete first;
// the weather and attraction lookups then share its coordinate and run
// concurrently, both finishing before assembly.
type Planner struct {
	geocoder    Geocoder
	weather     WeatherService
	attractions AttractionFinder
	logger      *slog.Logger
}

// NewPlanner creates a planner over the three upstream clients.
func NewPlanner(g Geocoder, w WeatherService, a AttractionFinder, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		geocoder:    g,
		weather:     w,
		attractions: a,
		logger:      logger.With("component", "planner"),
	}
}

// Plan answers a free-text travel query. Geocoding failure is fatal and
// yields Success=false; weather and attraction failures each degrade
// independently, so a geocoded place always yields Success=true.
func (p *Planner) Plan(ctx context.Context, query string) *Result {
	place, err := extract.Place(query)
	if err != nil {
		// Best effort: treat the raw trimmed query as the place name.
		place = strings.TrimSpace(query)
		p.logger.Debug("no place pattern matched, using raw query", "query", place)
	}

	resolved, err := p.geocoder.Geocode(ctx, place)
	if err != nil {
		p.logger.Warn("geocoding failed", "place", place, "error", err)
		return geocodeFailure(place, err)
	}
	loc := resolved.Location

	var (
		report     *meteo.Report
		weatherErr error
		found      []osm.Attraction
		poiErr     error
	)

	// Both lookups reuse the one coordinate geocoding produced; neither
	// failure cancels the other, so errors are captured rather than
	// returned to the group.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report, weatherErr = p.weather.CurrentConditions(gctx, loc)
		return nil
	})
	g.Go(func() error {
		found, poiErr = p.attractions.FindAttractions(gctx, loc)
		return nil
	})
	_ = g.Wait() // the goroutines capture their errors instead of returning them

	var temperature *float64
	var precipChance *int
	if weatherErr != nil {
		p.logger.Warn("weather lookup failed", "place", place, "error", weatherErr)
	} else {
		// Numbers are pulled back out of the formatted sentence with the
		// tolerant patterns, so any sentence-shaped weather source works.
		temperature, precipChance = meteo.ParseSentence(report.Sentence())
	}

	if poiErr != nil {
		p.logger.Warn("attraction lookup failed", "place", place, "error", poiErr)
		found = nil
	}

	names := make([]string, 0, len(found))
	markers := make([]AttractionMarker, 0, len(found))
	for _, a := range found {
		names = append(names, a.Name)
		if a.Location == nil {
			continue
		}
		markers = append(markers, AttractionMarker{
			Name:      a.Name,
			Latitude:  a.Location.Latitude,
			Longitude: a.Location.Longitude,
		})
	}

	return &Result{
		Place:                 place,
		Latitude:              loc.Latitude,
		Longitude:             loc.Longitude,
		Temperature:           temperature,
		PrecipitationChance:   precipChance,
		Attractions:           names,
		AttractionsWithCoords: markers,
		Success:               true,
		Response:              buildSummary(place, temperature, precipChance, names, weatherErr != nil),
	}
}

// geocodeFailure builds the short-circuit result for a fatal geocoding
// error, with an error description naming the failed stage.
func geocodeFailure(place string, err error) *Result {
	var msg string
	switch {
	case errors.Is(err, osm.ErrPlaceNotFound):
		msg = fmt.Sprintf("could not find a location named %q", place)
	case errors.Is(err, osm.ErrMalformedResponse):
		msg = fmt.Sprintf("the geocoding service returned an unusable response for %q", place)
	default:
		msg = fmt.Sprintf("the geocoding service could not be reached for %q: %v", place, err)
	}

	return &Result{
		Place:                 place,
		Attractions:           []string{},
		AttractionsWithCoords: []AttractionMarker{},
		Success:               false,
		Response:              fmt.Sprintf("Sorry, I couldn't plan a trip to %q.", place),
		Error:                 &msg,
	}
}

// buildSummary templates the human-readable response, substituting "--" for
// any numeric field that is unset.
func buildSummary(place string, temperature *float64, precipChance *int, names []string, weatherFailed bool) string {
	tempStr := "--"
	if temperature != nil {
		tempStr = strconv.FormatFloat(*temperature, 'f', -1, 64)
	}
	chanceStr := "--"
	if precipChance != nil {
		chanceStr = strconv.Itoa(*precipChance)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here is your trip plan for %s. Current temperature: %s°C, chance of rain: %s%%.", place, tempStr, chanceStr)
	if weatherFailed {
		b.WriteString(" Weather information is currently unavailable.")
	}
	if len(names) > 0 {
		fmt.Fprintf(&b, " Places to visit: %s.", strings.Join(names, ", "))
	} else {
		b.WriteString(" No attractions found nearby.")
	}
	return b.String()
}
