// Package trip orchestrates the trip-planning pipeline: place extraction,
// geocoding, weather and attraction lookups, and assembly of the final
// result.
package trip

// AttractionMarker is an attraction with a resolved coordinate, suitable for
// placing a map marker.
type AttractionMarker struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Result is the aggregate answer for one trip query. It is constructed once
// per request and never mutated afterwards.
//
// Attractions and AttractionsWithCoords are two views over the same upstream
// attraction list: every marker corresponds by name to an entry in
// Attractions, but an attraction whose coordinate could not be resolved
// appears in the name list only. The marker list is therefore never longer
// than the name list.
type Result struct {
	Place                 string             `json:"place"`
	Latitude              float64            `json:"latitude"`
	Longitude             float64            `json:"longitude"`
	Temperature           *float64           `json:"temperature"`
	PrecipitationChance   *int               `json:"precipitation_chance"`
	Attractions           []string           `json:"attractions"`
	AttractionsWithCoords []AttractionMarker `json:"attractions_with_coords"`
	Success               bool               `json:"success"`
	Response              string             `json:"response"`
	Error                 *string            `json:"error"`
}
