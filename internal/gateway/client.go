package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fernweh/api/internal/model"
)

// Standard errors for provider calls.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the provider had no results for the query.
	ErrNotFound = errors.New("no results from geocoding provider")

	// ErrUnavailable indicates the provider could not be reached or
	// rejected the request.
	ErrUnavailable = errors.New("geocoding provider unavailable")
)

// Defaults applied by NewClient
const (
	DefaultBaseURL          = "https://maps.googleapis.com"
	DefaultTimeout          = 10 * time.Second
	DefaultBiasRadiusMeters = 100000
)

// Config holds settings for the provider client
type Config struct {
	APIKey           string
	BaseURL          string        // DefaultBaseURL when empty
	Timeout          time.Duration // DefaultTimeout when zero
	BiasRadiusMeters int           // DefaultBiasRadiusMeters when <= 0
}

// Client calls the geocoding and place search endpoints
type Client struct {
	apiKey     string
	baseURL    string
	biasRadius int
	httpClient *http.Client
}

// NewClient creates a provider client
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	radius := cfg.BiasRadiusMeters
	if radius <= 0 {
		radius = DefaultBiasRadiusMeters
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		biasRadius: radius,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// geoLocation mirrors the provider's geometry.location object
type geoLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geoGeometry struct {
	Location geoLocation `json:"location"`
}

type geocodeResult struct {
	Geometry geoGeometry `json:"geometry"`
}

type geocodeResponse struct {
	Status  string          `json:"status"`
	Results []geocodeResult `json:"results"`
}

type placeResult struct {
	Name     string      `json:"name"`
	PlaceID  string      `json:"place_id"`
	Geometry geoGeometry `json:"geometry"`
}

type placeSearchResponse struct {
	Status  string        `json:"status"`
	Results []placeResult `json:"results"`
}

// Geocode resolves a street address to a coordinate. The provider's first
// result wins.
func (c *Client) Geocode(ctx context.Context, address string) (model.Coordinate, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	body, err := c.get(ctx, "/maps/api/geocode/json", q)
	if err != nil {
		return model.Coordinate{}, err
	}

	var resp geocodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Coordinate{}, fmt.Errorf("%w: decode geocode response: %v", ErrUnavailable, err)
	}
	if err := checkStatus(resp.Status, len(resp.Results), address); err != nil {
		return model.Coordinate{}, err
	}

	loc := resp.Results[0].Geometry.Location
	coord, err := model.NewCoordinate(loc.Lat, loc.Lng)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return coord, nil
}

// FindPlace resolves free-text place queries, biased toward the given
// coordinate within the configured radius. The provider's first result wins.
func (c *Client) FindPlace(ctx context.Context, query string, bias model.Coordinate) (model.Place, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("location", formatLatLng(bias))
	q.Set("radius", strconv.Itoa(c.biasRadius))
	q.Set("key", c.apiKey)

	body, err := c.get(ctx, "/maps/api/place/textsearch/json", q)
	if err != nil {
		return model.Place{}, err
	}

	var resp placeSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Place{}, fmt.Errorf("%w: decode place response: %v", ErrUnavailable, err)
	}
	if err := checkStatus(resp.Status, len(resp.Results), query); err != nil {
		return model.Place{}, err
	}

	first := resp.Results[0]
	place, err := model.NewPlace(first.Name, first.PlaceID, first.Geometry.Location.Lat, first.Geometry.Location.Lng)
	if err != nil {
		return model.Place{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return place, nil
}

// get performs one provider request and returns the raw body
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrUnavailable, resp.StatusCode, body)
	}
	return body, nil
}

// checkStatus maps the provider's status field onto the error taxonomy
func checkStatus(status string, results int, query string) error {
	switch status {
	case "OK":
		if results == 0 {
			return fmt.Errorf("%w: %q", ErrNotFound, query)
		}
		return nil
	case "ZERO_RESULTS":
		return fmt.Errorf("%w: %q", ErrNotFound, query)
	default:
		// OVER_QUERY_LIMIT, REQUEST_DENIED, INVALID_REQUEST, ...
		return fmt.Errorf("%w: status %s", ErrUnavailable, status)
	}
}

// formatLatLng renders a coordinate the way the provider expects
func formatLatLng(c model.Coordinate) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
