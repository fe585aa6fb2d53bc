package domain

import (
	"context"
	"time"
)

// CatalogPageQuery addresses one page of the in-memory catalog. Page is
// 1-based; Bounds, when set, keeps only records inside the viewport (records
// without coordinates are always kept).
type CatalogPageQuery struct {
	Page   int
	Limit  int
	Bounds *Bounds
}

// Catalog is the mock data provider.
type Catalog interface {
	ListPage(ctx context.Context, q CatalogPageQuery) (Page, error)
	// FindByIDOrSlug matches by place_id first, then by the slug of the title.
	FindByIDOrSlug(ctx context.Context, key string) (Hotel, bool)
	// RecommendedFor returns up to limit other records in list order,
	// excluding current. Not similarity-ranked.
	RecommendedFor(ctx context.Context, current Hotel, limit int) []Hotel
}

// UpstreamSearcher is the third-party hotel search API.
type UpstreamSearcher interface {
	// Search fetches one page; cursor is the opaque continuation token from
	// the previous page, empty for the first.
	Search(ctx context.Context, q SearchQuery, cursor string) (Page, error)
	// FetchDetail resolves an opaque property token into the detail payload.
	FetchDetail(ctx context.Context, token, checkIn, checkOut string) (HotelDetail, error)
}

// GeoResult is a resolved location. Bounds is always populated: when the
// geocoder gives none, a fixed square around the point is synthesized.
type GeoResult struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Bounds Bounds  `json:"bounds"`
}

type Geocoder interface {
	Resolve(ctx context.Context, query string) (GeoResult, error)
}

// Cache is a read-through cache for JSON-serializable values.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
