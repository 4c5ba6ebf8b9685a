// Package queries provides utilities for building Overpass API queries.
package queries

import (
	"fmt"
	"strings"
)

// OverpassBuilder provides a fluent interface for building Overpass API
// queries. It allows composing multi-element queries with proper syntax.
type OverpassBuilder struct {
	buf        strings.Builder
	hasElement bool
}

// NewOverpassBuilder creates a new Overpass query builder.
// All queries start with [out:json] to request JSON output format.
func NewOverpassBuilder() *OverpassBuilder {
	b := &OverpassBuilder{}
	b.buf.WriteString("[out:json];")
	return b
}

// WithNode adds a node query around a point with the specified radius and tag.
func (b *OverpassBuilder) WithNode(lat, lon, radius float64, key, value string) *OverpassBuilder {
	b.addElement(fmt.Sprintf("node(around:%f,%f,%f)", radius, lat, lon), key, value)
	return b
}

// WithWay adds a way query around a point with the specified radius and tag.
func (b *OverpassBuilder) WithWay(lat, lon, radius float64, key, value string) *OverpassBuilder {
	b.addElement(fmt.Sprintf("way(around:%f,%f,%f)", radius, lat, lon), key, value)
	return b
}

// WithRelation adds a relation query around a point with the specified radius and tag.
func (b *OverpassBuilder) WithRelation(lat, lon, radius float64, key, value string) *OverpassBuilder {
	b.addElement(fmt.Sprintf("relation(around:%f,%f,%f)", radius, lat, lon), key, value)
	return b
}

// WithTag adds node, way and relation queries for the same tag around a point.
// An empty value only checks for the presence of the key.
func (b *OverpassBuilder) WithTag(key, value string, lat, lon, radius float64) *OverpassBuilder {
	return b.WithNode(lat, lon, radius, key, value).
		WithWay(lat, lon, radius, key, value).
		WithRelation(lat, lon, radius, key, value)
}

// WithOutput closes the element group and adds the output statement.
// Common options include "body", "center" and "geom". Use "center" when ways
// and relations should carry a computed center point.
func (b *OverpassBuilder) WithOutput(outputType string) *OverpassBuilder {
	if b.hasElement {
		b.buf.WriteString(fmt.Sprintf(");out %s;", outputType))
	}
	return b
}

// Build returns the complete Overpass query string. It should be called
// after all query elements have been added and WithOutput() has been called.
func (b *OverpassBuilder) Build() string {
	return b.buf.String()
}

// addElement adds a single query element with a tag filter to the builder.
func (b *OverpassBuilder) addElement(baseQuery, key, value string) {
	if !b.hasElement {
		b.buf.WriteString("(")
		b.hasElement = true
	}

	b.buf.WriteString(baseQuery)
	if value == "" {
		// Just check for the presence of the key
		b.buf.WriteString(fmt.Sprintf("[%s]", key))
	} else {
		b.buf.WriteString(fmt.Sprintf("[%s=%s]", key, value))
	}
	b.buf.WriteString(";")
}

// Attractions builds the fixed tourist-attraction query: anything tagged
// tourism or historic, plus parks, within the given radius of a point.
// Ways and relations get a computed center so they can still be placed on a
// map.
func Attractions(lat, lon, radius float64) string {
	return NewOverpassBuilder().
		WithTag("tourism", "", lat, lon, radius).
		WithTag("leisure", "park", lat, lon, radius).
		WithTag("historic", "", lat, lon, radius).
		WithOutput("center").
		Build()
}
