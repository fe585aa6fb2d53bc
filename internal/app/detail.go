package app

import (
	"context"
	"fmt"
	"time"

	"hotelsearch/internal/domain"
)

const recommendedLimit = 4

// DetailService resolves a detail-page identifier: a mock place_id or slug
// first, then an upstream property token when an upstream client is
// configured. Upstream payloads are cached through the Cache port.
type DetailService struct {
	catalog  domain.Catalog
	upstream domain.UpstreamSearcher
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewDetailService(catalog domain.Catalog, upstream domain.UpstreamSearcher, cache domain.Cache, ttl time.Duration) *DetailService {
	return &DetailService{catalog: catalog, upstream: upstream, cache: cache, cacheTTL: ttl}
}

func (s *DetailService) Get(ctx context.Context, id, checkIn, checkOut string) (domain.HotelDetail, error) {
	if id == "" {
		return domain.HotelDetail{}, fmt.Errorf("missing hotel id: %w", domain.ErrBadInput)
	}

	if h, ok := s.catalog.FindByIDOrSlug(ctx, id); ok {
		return domain.HotelDetail{
			Hotel:       h,
			Recommended: s.catalog.RecommendedFor(ctx, h, recommendedLimit),
		}, nil
	}

	if s.upstream == nil {
		return domain.HotelDetail{}, domain.ErrNotFound
	}

	if checkIn == "" {
		checkIn = time.Now().Format("2006-01-02")
	}
	if checkOut == "" {
		checkOut = time.Now().Add(24 * time.Hour).Format("2006-01-02")
	}

	key := fmt.Sprintf("hotel:detail:%s:%s:%s", id, checkIn, checkOut)
	if s.cache != nil {
		var d domain.HotelDetail
		if ok, _ := s.cache.Get(ctx, key, &d); ok {
			return d, nil
		}
	}

	d, err := s.upstream.FetchDetail(ctx, id, checkIn, checkOut)
	if err != nil {
		return domain.HotelDetail{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, d, s.cacheTTL)
	}
	return d, nil
}
