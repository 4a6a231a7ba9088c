package gatewaytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fernweh/api/internal/gateway"
)

// location mirrors the provider's geometry.location object
type location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type placeSeed struct {
	name    string
	placeID string
	loc     location
}

// Server is a fake Google Maps provider backed by httptest.
// Tests seed it with geocode and place results, point a gateway.Client at
// it, and inspect the requests it received.
type Server struct {
	hts *httptest.Server
	t   *testing.T

	mu         sync.Mutex
	geocodes   map[string]location  // keyed by exact address
	places     map[string]placeSeed // keyed by exact query
	failStatus string               // provider status returned for every call when set
	failHTTP   int                  // HTTP status returned for every call when set

	lastBias     string
	lastRadius   string
	geocodeCalls int
	placeCalls   int
}

// New starts a fake provider with no seeded results. Unseeded lookups
// answer ZERO_RESULTS, matching the real provider's miss behavior.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		t:        t,
		geocodes: make(map[string]location),
		places:   make(map[string]placeSeed),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/geocode/json", s.handleGeocode)
	mux.HandleFunc("/maps/api/place/textsearch/json", s.handleTextSearch)
	s.hts = httptest.NewServer(mux)

	return s
}

// URL returns the base URL to hand to gateway.Config.BaseURL
func (s *Server) URL() string {
	return s.hts.URL
}

// Client builds a gateway client pointed at this fake provider
func (s *Server) Client(biasRadiusMeters int) *gateway.Client {
	return gateway.NewClient(gateway.Config{
		APIKey:           "test-key",
		BaseURL:          s.hts.URL,
		Timeout:          5 * time.Second,
		BiasRadiusMeters: biasRadiusMeters,
	})
}

// Close shuts the fake provider down
func (s *Server) Close() {
	s.hts.Close()
}

// SetGeocode seeds the result returned for an exact address
func (s *Server) SetGeocode(address string, lat, lng float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geocodes[address] = location{Lat: lat, Lng: lng}
}

// SetPlace seeds the result returned for an exact text search query
func (s *Server) SetPlace(query, name, placeID string, lat, lng float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places[query] = placeSeed{name: name, placeID: placeID, loc: location{Lat: lat, Lng: lng}}
}

// FailWithStatus makes every subsequent call answer the given provider
// status, e.g. "OVER_QUERY_LIMIT" or "REQUEST_DENIED"
func (s *Server) FailWithStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// FailWithHTTP makes every subsequent call answer the given HTTP status
func (s *Server) FailWithHTTP(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failHTTP = code
}

// Recover clears any injected failure
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = ""
	s.failHTTP = 0
}

// LastBias returns the location and radius parameters of the most recent
// text search request
func (s *Server) LastBias() (location, radius string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBias, s.lastRadius
}

// GeocodeCalls returns how many geocode requests the server has received
func (s *Server) GeocodeCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.geocodeCalls
}

// PlaceCalls returns how many text search requests the server has received
func (s *Server) PlaceCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placeCalls
}

func (s *Server) handleGeocode(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.geocodeCalls++
	failStatus, failHTTP := s.failStatus, s.failHTTP
	loc, ok := s.geocodes[r.URL.Query().Get("address")]
	s.mu.Unlock()

	if failHTTP != 0 {
		http.Error(w, "provider error", failHTTP)
		return
	}
	if failStatus != "" {
		writeJSON(w, map[string]interface{}{"status": failStatus, "results": []interface{}{}})
		return
	}
	if !ok {
		writeJSON(w, map[string]interface{}{"status": "ZERO_RESULTS", "results": []interface{}{}})
		return
	}

	writeJSON(w, map[string]interface{}{
		"status": "OK",
		"results": []interface{}{
			map[string]interface{}{
				"geometry": map[string]interface{}{"location": loc},
			},
		},
	})
}

func (s *Server) handleTextSearch(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.placeCalls++
	s.lastBias = r.URL.Query().Get("location")
	s.lastRadius = r.URL.Query().Get("radius")
	failStatus, failHTTP := s.failStatus, s.failHTTP
	seed, ok := s.places[r.URL.Query().Get("query")]
	s.mu.Unlock()

	if failHTTP != 0 {
		http.Error(w, "provider error", failHTTP)
		return
	}
	if failStatus != "" {
		writeJSON(w, map[string]interface{}{"status": failStatus, "results": []interface{}{}})
		return
	}
	if !ok {
		writeJSON(w, map[string]interface{}{"status": "ZERO_RESULTS", "results": []interface{}{}})
		return
	}

	writeJSON(w, map[string]interface{}{
		"status": "OK",
		"results": []interface{}{
			map[string]interface{}{
				"name":     seed.name,
				"place_id": seed.placeID,
				"geometry": map[string]interface{}{"location": seed.loc},
			},
		},
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
