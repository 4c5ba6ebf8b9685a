package geo

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	// Test cases with known distances
	tests := []struct {
		lat1      float64
		lon1      float64
		lat2      float64
		lon2      float64
		expected  float64
		name      string
		tolerance float64 // Relative tolerance (e.g., 0.001 for 0.1%)
	}{
		{
			name:      "Same point",
			lat1:      37.7749,
			lon1:      -122.4194,
			lat2:      37.7749,
			lon2:      -122.4194,
			expected:  0,
			tolerance: 0.0001, // 0.01% for zero case
		},
		{
			name:      "Short distance - SF downtown to Market St",
			lat1:      37.7749,
			lon1:      -122.4194,
			lat2:      37.7734,
			lon2:      -122.4167,
			expected:  290.06,
			tolerance: 0.001, // 0.1% relative tolerance
		},
		{
			name:      "Medium distance - SF to Oakland",
			lat1:      37.7749,
			lon1:      -122.4194,
			lat2:      37.8044,
			lon2:      -122.2712,
			expected:  13429.63,
			tolerance: 0.001,
		},
		{
			name:      "Long distance - SF to NYC",
			lat1:      37.7749,
			lon1:      -122.4194,
			lat2:      40.7128,
			lon2:      -74.0060,
			expected:  4129936.81, // ~4130 km
			tolerance: 0.001,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := HaversineDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)

			// Use relative tolerance for non-zero distances
			var difference float64
			if tc.expected == 0 {
				difference = math.Abs(result)
			} else {
				difference = math.Abs(result-tc.expected) / tc.expected
			}

			if difference > tc.tolerance {
				t.Errorf("HaversineDistance(%f, %f, %f, %f) = %f, expected %f ± %.1f%%",
					tc.lat1, tc.lon1, tc.lat2, tc.lon2, result, tc.expected, tc.tolerance*100)
			}
		})
	}
}

func TestLocationValidate(t *testing.T) {
	tests := []struct {
		name    string
		loc     Location
		wantErr bool
	}{
		{
			name:    "Valid coordinates",
			loc:     Location{Latitude: 32.2454608, Longitude: 77.1872926},
			wantErr: false,
		},
		{
			name:    "Zero coordinates",
			loc:     Location{},
			wantErr: false,
		},
		{
			name:    "Latitude too large",
			loc:     Location{Latitude: 91, Longitude: 0},
			wantErr: true,
		},
		{
			name:    "Latitude too small",
			loc:     Location{Latitude: -90.1, Longitude: 0},
			wantErr: true,
		},
		{
			name:    "Longitude too large",
			loc:     Location{Latitude: 0, Longitude: 180.5},
			wantErr: true,
		},
		{
			name:    "Longitude too small",
			loc:     Location{Latitude: 0, Longitude: -181},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.loc.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tc.loc, err, tc.wantErr)
			}
		})
	}
}
