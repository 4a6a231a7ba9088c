package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fernweh/api/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
}

// ============================================================================
// Geocode Tests
// ============================================================================

func TestClient_Geocode_ParsesFirstResult(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/geocode/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("address"); got != "Pier 39, San Francisco" {
			t.Errorf("unexpected address param %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("unexpected key param %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": 37.8087, "lng": -122.4098}}},
				{"geometry": {"location": {"lat": 0, "lng": 0}}}
			]
		}`))
	})

	coord, err := client.Geocode(context.Background(), "Pier 39, San Francisco")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}

	if coord.Latitude != 37.8087 || coord.Longitude != -122.4098 {
		t.Errorf("expected first result coordinate, got %+v", coord)
	}
}

func TestClient_Geocode_ZeroResults_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := client.Geocode(context.Background(), "nowhere at all")

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_Geocode_EmptyResultsWithOKStatus_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	_, err := client.Geocode(context.Background(), "odd response")

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_Geocode_RequestDenied_ReturnsUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	})

	_, err := client.Geocode(context.Background(), "Pier 39")

	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_Geocode_ServerError_ReturnsUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Geocode(context.Background(), "Pier 39")

	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_Geocode_CanceledContext_ReturnsUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OK", "results": [{"geometry": {"location": {"lat": 1, "lng": 1}}}]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Geocode(ctx, "Pier 39")

	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

// ============================================================================
// FindPlace Tests
// ============================================================================

func TestClient_FindPlace_ParsesFirstResult(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/place/textsearch/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "pier 39" {
			t.Errorf("unexpected query param %q", got)
		}
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"name": "Pier 39", "place_id": "ChIJpier39", "geometry": {"location": {"lat": 37.8087, "lng": -122.4098}}}
			]
		}`))
	})

	place, err := client.FindPlace(context.Background(), "pier 39", model.Coordinate{Latitude: 37.77, Longitude: -122.42})
	if err != nil {
		t.Fatalf("FindPlace: %v", err)
	}

	if place.Name != "Pier 39" {
		t.Errorf("expected name 'Pier 39', got %q", place.Name)
	}
	if place.ID != "ChIJpier39" {
		t.Errorf("expected provider place id, got %q", place.ID)
	}
	if place.Location.Latitude != 37.8087 {
		t.Errorf("expected latitude from provider, got %v", place.Location.Latitude)
	}
}

func TestClient_FindPlace_SendsLocationBias(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("location"); got != "37.77,-122.42" {
			t.Errorf("unexpected location param %q", got)
		}
		if got := r.URL.Query().Get("radius"); got != "100000" {
			t.Errorf("unexpected radius param %q", got)
		}
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"name": "Pier 39", "place_id": "p", "geometry": {"location": {"lat": 1, "lng": 1}}}]
		}`))
	})

	_, err := client.FindPlace(context.Background(), "pier 39", model.Coordinate{Latitude: 37.77, Longitude: -122.42})
	if err != nil {
		t.Fatalf("FindPlace: %v", err)
	}
}

func TestClient_FindPlace_ZeroResults_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := client.FindPlace(context.Background(), "atlantis", model.Coordinate{})

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FindPlace_MalformedBody_ReturnsUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.FindPlace(context.Background(), "pier 39", model.Coordinate{})

	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

// ============================================================================
// NewClient Tests
// ============================================================================

func TestNewClient_AppliesDefaults(t *testing.T) {
	t.Parallel()

	client := NewClient(Config{APIKey: "k"})

	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", client.baseURL)
	}
	if client.biasRadius != DefaultBiasRadiusMeters {
		t.Errorf("expected default bias radius, got %d", client.biasRadius)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", client.httpClient.Timeout)
	}
}
