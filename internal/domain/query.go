package domain

import (
	"encoding/json"
	"fmt"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is a rectangular geographic viewport.
type Bounds struct {
	NE GeoPoint `json:"ne"`
	SW GeoPoint `json:"sw"`
}

func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.SW.Lat && lat <= b.NE.Lat && lng >= b.SW.Lng && lng <= b.NE.Lng
}

// SearchQuery is the transient search input. Bounds wins over Center when
// both are set; Center is the fallback viewport fingerprint.
type SearchQuery struct {
	Text     string
	CheckIn  string // ISO calendar date, e.g. 2024-03-01
	CheckOut string // must be >= CheckIn
	Adults   int
	Children int
	Bounds   *Bounds
	Center   *GeoPoint
}

// PageToken is a polymorphic continuation cursor: a small positive page
// number in mock mode, an opaque string in upstream mode. On the wire it
// marshals as a bare number or string; a nil *PageToken marshals as null and
// means "no more pages".
type PageToken struct {
	Num   int
	Token string
}

func NumToken(n int) *PageToken    { return &PageToken{Num: n} }
func StrToken(s string) *PageToken { return &PageToken{Token: s} }

func (t PageToken) String() string {
	if t.Token != "" {
		return t.Token
	}
	return fmt.Sprintf("%d", t.Num)
}

func (t PageToken) MarshalJSON() ([]byte, error) {
	if t.Token != "" {
		return json.Marshal(t.Token)
	}
	return json.Marshal(t.Num)
}

func (t *PageToken) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*t = PageToken{Num: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("page token must be a number or a string: %w", err)
	}
	*t = PageToken{Token: s}
	return nil
}

// Page is one fetch result. Total may be an upstream estimate or just the
// count of items seen so far.
type Page struct {
	Results  []Hotel    `json:"results"`
	NextPage *PageToken `json:"nextPage"`
	Total    int        `json:"total"`
}
