package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hotelsearch/internal/adapters/observability"
	"hotelsearch/internal/domain"
)

const DefaultBase = "https://nominatim.openstreetmap.org/search"

// boundsDelta is the half-size of the square synthesized around a point when
// the geocoder returns no bounding box.
const boundsDelta = 0.05

// Client resolves free-text locations through Nominatim.
type Client struct {
	base string
	hc   *http.Client
}

func NewClient(base string) *Client {
	if base == "" {
		base = DefaultBase
	}
	return &Client{base: base, hc: &http.Client{Timeout: 10 * time.Second}}
}

type place struct {
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	BoundingBox []string `json:"boundingbox"` // [south, north, west, east]
}

func (c *Client) Resolve(ctx context.Context, query string) (domain.GeoResult, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return domain.GeoResult{}, fmt.Errorf("missing location query: %w", domain.ErrBadInput)
	}

	vals := url.Values{}
	vals.Set("q", q)
	vals.Set("format", "json")
	vals.Set("limit", "1")
	vals.Set("addressdetails", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?"+vals.Encode(), nil)
	if err != nil {
		return domain.GeoResult{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hotel-search/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("nominatim", "search", 0, time.Since(start))
		if ctx.Err() != nil {
			return domain.GeoResult{}, ctx.Err()
		}
		return domain.GeoResult{}, fmt.Errorf("geocode: %v: %w", err, domain.ErrUpstream)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("nominatim", "search", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return domain.GeoResult{}, fmt.Errorf("geocode: status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.GeoResult{}, fmt.Errorf("geocode: decode: %w", domain.ErrUpstream)
	}
	if len(places) == 0 {
		return domain.GeoResult{}, domain.ErrNotFound
	}

	first := places[0]
	lat, latErr := strconv.ParseFloat(first.Lat, 64)
	lng, lngErr := strconv.ParseFloat(first.Lon, 64)
	if latErr != nil || lngErr != nil {
		return domain.GeoResult{}, fmt.Errorf("geocode: invalid coordinates: %w", domain.ErrUpstream)
	}

	res := domain.GeoResult{Lat: lat, Lng: lng, Bounds: pointBounds(lat, lng)}
	if b, ok := parseBoundingBox(first.BoundingBox); ok {
		res.Bounds = b
	}
	return res, nil
}

func pointBounds(lat, lng float64) domain.Bounds {
	return domain.Bounds{
		SW: domain.GeoPoint{Lat: lat - boundsDelta, Lng: lng - boundsDelta},
		NE: domain.GeoPoint{Lat: lat + boundsDelta, Lng: lng + boundsDelta},
	}
}

func parseBoundingBox(bb []string) (domain.Bounds, bool) {
	if len(bb) < 4 {
		return domain.Bounds{}, false
	}
	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(bb[i], 64)
		if err != nil {
			return domain.Bounds{}, false
		}
		vals[i] = v
	}
	south, north, west, east := vals[0], vals[1], vals[2], vals[3]
	return domain.Bounds{
		SW: domain.GeoPoint{Lat: south, Lng: west},
		NE: domain.GeoPoint{Lat: north, Lng: east},
	}, true
}
