// Package extract derives a candidate place name from free-text travel queries.
package extract

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoPlace is returned when no place name can be derived from the query.
// Callers are expected to degrade to the raw trimmed query in that case.
var ErrNoPlace = errors.New("no place name found in query")

// placeRun matches a run of capitalized/mixed-case words ("Manali",
// "New Delhi", "Chiang Rai"). Lowercase words terminate the run, so trailing
// clauses like "and the weather" are not captured.
const placeRun = `((?:[A-Z][A-Za-z'-]*)(?:\s+[A-Z][A-Za-z'-]*)*)`

// Ordered keyword patterns; the first pattern that matches wins.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[Tt]rip\s+to\s+` + placeRun),
	regexp.MustCompile(`\b[Vv]isit(?:ing)?\s+` + placeRun),
	regexp.MustCompile(`\b[Gg]o(?:ing)?\s+to\s+` + placeRun),
	regexp.MustCompile(`\b(?:[Ii]n|[Aa]t|[Ff]or)\s+` + placeRun),
}

// capitalizedRun is the fallback scan for capitalized word runs anywhere in
// the input, used when no keyword pattern matches.
var capitalizedRun = regexp.MustCompile(`(?:[A-Z][A-Za-z'-]*)(?:\s+[A-Z][A-Za-z'-]*)*`)

// stopwords are common sentence starters that look like place names to the
// fallback scan but never are.
var stopwords = map[string]struct{}{
	"I":      {},
	"I'm":    {},
	"Im":     {},
	"Am":     {},
	"Hey":    {},
	"Hi":     {},
	"Hello":  {},
	"The":    {},
	"A":      {},
	"An":     {},
	"And":    {},
	"What":   {},
	"What's": {},
	"Where":  {},
	"When":   {},
	"Which":  {},
	"How":    {},
	"Can":    {},
	"Could":  {},
	"Would":  {},
	"Should": {},
	"Tell":   {},
	"Please": {},
	"Plan":   {},
	"Let":    {},
	"Let's":  {},
	"Lets":   {},
	"My":     {},
	"Our":    {},
	"We":     {},
	"It":     {},
	"Its":    {},
	"It's":   {},
	"Is":     {},
	"Are":    {},
	"Do":     {},
	"Does":   {},
	"Going":  {},
	"Give":   {},
	"Show":   {},
}

// Place extracts a single candidate place name from a free-text query.
// Keyword patterns ("trip to X", "visit X", "going to X", "in/at/for X") are
// tried in order and the first match wins, returning the capture exactly as
// written. If none match, runs of capitalized words are scanned with
// sentence starters filtered out; the stoplist applies only to that fallback
// scan. The returned candidate is not guaranteed to name a real place.
func Place(query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", ErrNoPlace
	}

	// Keyword captures are returned verbatim: the keyword already
	// disambiguates, so a place like "The Hague" keeps its article.
	for _, p := range patterns {
		if m := p.FindStringSubmatch(q); m != nil {
			return strings.TrimSpace(m[1]), nil
		}
	}

	// Fallback: first capitalized run that survives the stoplist.
	for _, run := range capitalizedRun.FindAllString(q, -1) {
		if place := trimStopwords(run); place != "" {
			return place, nil
		}
	}

	return "", ErrNoPlace
}

// trimStopwords drops leading stopwords from a capitalized run, so a run
// like "Hey Bangalore" yields "Bangalore" and a pure "I Am" yields "".
func trimStopwords(run string) string {
	words := strings.Fields(run)
	for len(words) > 0 {
		if _, ok := stopwords[words[0]]; !ok {
			break
		}
		words = words[1:]
	}
	return strings.Join(words, " ")
}
