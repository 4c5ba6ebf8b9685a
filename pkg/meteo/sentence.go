package meteo

import (
	"regexp"
	"strconv"
)

// Tolerant patterns for pulling numbers back out of a weather sentence.
// Decimals and negative temperatures are accepted; the precipitation clause
// may be absent entirely.
var (
	temperaturePattern   = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*°?\s*C`)
	precipitationPattern = regexp.MustCompile(`(\d+)\s*%`)
)

// ParseSentence extracts the temperature and precipitation chance from a
// weather sentence produced by Report.Sentence (or any similarly phrased
// text). Either value is nil when its clause is missing or unparseable.
func ParseSentence(s string) (temperature *float64, precipChance *int) {
	if m := temperaturePattern.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			temperature = &v
		}
	}
	if m := precipitationPattern.FindStringSubmatch(s); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			precipChance = &v
		}
	}
	return temperature, precipChance
}
