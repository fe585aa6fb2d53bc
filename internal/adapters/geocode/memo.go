package geocode

import (
	"context"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"hotelsearch/internal/adapters/observability"
	"hotelsearch/internal/domain"
)

const DefaultMemoSize = 256

// Memo wraps a Geocoder with a bounded LRU keyed by the normalized query
// text. Concurrent lookups for the same key are collapsed into one upstream
// call. Only successful resolutions are cached; not-found and upstream
// failures are re-attempted on the next call.
type Memo struct {
	next  domain.Geocoder
	cache *lru.Cache[string, domain.GeoResult]
	group singleflight.Group
}

func NewMemo(next domain.Geocoder, capacity int) (*Memo, error) {
	if capacity <= 0 {
		capacity = DefaultMemoSize
	}
	cache, err := lru.New[string, domain.GeoResult](capacity)
	if err != nil {
		return nil, err
	}
	return &Memo{next: next, cache: cache}, nil
}

func (m *Memo) Resolve(ctx context.Context, query string) (domain.GeoResult, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if v, ok := m.cache.Get(key); ok {
		observability.ObserveCache("geocode", "hit")
		return v, nil
	}
	observability.ObserveCache("geocode", "miss")

	v, err, _ := m.group.Do(key, func() (any, error) {
		// a concurrent caller may have filled the cache while we waited
		if v, ok := m.cache.Get(key); ok {
			return v, nil
		}
		res, err := m.next.Resolve(ctx, query)
		if err != nil {
			return domain.GeoResult{}, err
		}
		m.cache.Add(key, res)
		observability.ObserveCache("geocode", "set")
		return res, nil
	})
	if err != nil {
		return domain.GeoResult{}, err
	}
	return v.(domain.GeoResult), nil
}
