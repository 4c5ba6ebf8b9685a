package osm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/wanderkit/tripagent/pkg/geo"
	"github.com/wanderkit/tripagent/pkg/testutil"
)

func overpassFixture(elements ...string) string {
	return fmt.Sprintf(`{"version": 0.6, "elements": [%s]}`, strings.Join(elements, ","))
}

func namedNode(id int64, name string, lat, lon float64) string {
	return fmt.Sprintf(`{"type":"node","id":%d,"lat":%f,"lon":%f,"tags":{"tourism":"attraction","name":%q}}`,
		id, lat, lon, name)
}

func TestFindAttractions(t *testing.T) {
	t.Run("Caps at five in source order", func(t *testing.T) {
		var elements []string
		for i := 0; i < 7; i++ {
			elements = append(elements, namedNode(int64(i+1), fmt.Sprintf("Attraction %d", i+1), 32.2+float64(i)*0.01, 77.1))
		}

		attractions := findAttractions(t, overpassFixture(elements...))
		if len(attractions) != MaxAttractions {
			t.Fatalf("got %d attractions, want %d", len(attractions), MaxAttractions)
		}
		for i, a := range attractions {
			want := fmt.Sprintf("Attraction %d", i+1)
			if a.Name != want {
				t.Errorf("attraction[%d].Name = %q, want %q (source order must be preserved)", i, a.Name, want)
			}
		}
	})

	t.Run("Drops unnamed elements", func(t *testing.T) {
		fixture := overpassFixture(
			`{"type":"node","id":1,"lat":32.2,"lon":77.1,"tags":{"tourism":"viewpoint"}}`,
			namedNode(2, "Hadimba Temple", 32.2458, 77.1807),
		)

		attractions := findAttractions(t, fixture)
		if len(attractions) != 1 {
			t.Fatalf("got %d attractions, want 1", len(attractions))
		}
		if attractions[0].Name != "Hadimba Temple" {
			t.Errorf("got %q, want Hadimba Temple", attractions[0].Name)
		}
	})

	t.Run("Center fallback for ways", func(t *testing.T) {
		fixture := overpassFixture(
			`{"type":"way","id":10,"center":{"lat":32.25,"lon":77.19},"tags":{"leisure":"park","name":"Van Vihar"}}`,
		)

		attractions := findAttractions(t, fixture)
		if len(attractions) != 1 {
			t.Fatalf("got %d attractions, want 1", len(attractions))
		}
		loc := attractions[0].Location
		if loc == nil {
			t.Fatal("expected center coordinate, got nil")
		}
		if loc.Latitude != 32.25 || loc.Longitude != 77.19 {
			t.Errorf("location = (%f, %f), want (32.25, 77.19)", loc.Latitude, loc.Longitude)
		}
	})

	t.Run("Missing coordinate keeps name", func(t *testing.T) {
		fixture := overpassFixture(
			`{"type":"relation","id":20,"tags":{"historic":"fort","name":"Old Fort"}}`,
		)

		attractions := findAttractions(t, fixture)
		if len(attractions) != 1 {
			t.Fatalf("got %d attractions, want 1", len(attractions))
		}
		if attractions[0].Name != "Old Fort" {
			t.Errorf("got %q, want Old Fort", attractions[0].Name)
		}
		if attractions[0].Location != nil {
			t.Errorf("expected nil location, got %+v", attractions[0].Location)
		}
	})

	t.Run("Empty result is not an error", func(t *testing.T) {
		attractions := findAttractions(t, overpassFixture())
		if len(attractions) != 0 {
			t.Fatalf("got %d attractions, want 0", len(attractions))
		}
	})
}

func TestFindAttractionsQueryShape(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(body))
		if err != nil {
			t.Fatalf("failed to parse form body: %v", err)
		}
		query = form.Get("data")
		w.Write([]byte(overpassFixture()))
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL, nil, testutil.DiscardLogger())
	if _, err := client.FindAttractions(context.Background(), geo.Location{Latitude: 32.2454608, Longitude: 77.1872926}); err != nil {
		t.Fatalf("FindAttractions() failed: %v", err)
	}

	for _, want := range []string{"[out:json]", "[tourism]", "[leisure=park]", "[historic]", "out center;", "around:10000"} {
		if !strings.Contains(query, want) {
			t.Errorf("query %q missing %q", query, want)
		}
	}
}

func TestFindAttractionsThrottleSpacing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(overpassFixture()))
	}))
	defer srv.Close()

	interval := 50 * time.Millisecond
	client := NewOverpassClient(srv.URL, NewThrottle(interval), testutil.DiscardLogger())
	loc := geo.Location{Latitude: 32.2454608, Longitude: 77.1872926}

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := client.FindAttractions(context.Background(), loc); err != nil {
			t.Fatalf("FindAttractions() call %d failed: %v", i+1, err)
		}
	}
	if elapsed := time.Since(start); elapsed < interval {
		t.Errorf("two calls completed in %v, want at least %v between calls", elapsed, interval)
	}
}

func TestFindAttractionsInvalidCoordinate(t *testing.T) {
	client := NewOverpassClient("http://unused.invalid", nil, testutil.DiscardLogger())
	if _, err := client.FindAttractions(context.Background(), geo.Location{Latitude: 91, Longitude: 0}); err == nil {
		t.Fatal("expected validation error for latitude 91")
	}
}

func findAttractions(t *testing.T, fixture string) []Attraction {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Write([]byte(fixture))
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL, nil, testutil.DiscardLogger())
	attractions, err := client.FindAttractions(context.Background(), geo.Location{Latitude: 32.2454608, Longitude: 77.1872926})
	if err != nil {
		t.Fatalf("FindAttractions() failed: %v", err)
	}
	return attractions
}
