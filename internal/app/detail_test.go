package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotelsearch/internal/domain"
)

// memCache is an in-process domain.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	vals map[string]domain.HotelDetail
	sets int
}

func newMemCache() *memCache { return &memCache{vals: map[string]domain.HotelDetail{}} }

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.vals[key]
	if !ok {
		return false, nil
	}
	*dst.(*domain.HotelDetail) = v
	return true, nil
}

func (c *memCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals[key] = v.(domain.HotelDetail)
	c.sets++
	return nil
}

func (c *memCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.vals, key)
	return nil
}

func TestDetail_MockHitSkipsUpstream(t *testing.T) {
	andrew := domain.Hotel{Title: "The Andrew Hotel", PlaceID: "pid-1"}
	cat := &fakeCatalog{byKey: map[string]domain.Hotel{
		"the-andrew-hotel": andrew,
		"pid-2":            {Title: "Other", PlaceID: "pid-2"},
	}}
	up := &fakeUpstream{}
	svc := NewDetailService(cat, up, nil, time.Minute)

	d, err := svc.Get(context.Background(), "the-andrew-hotel", "", "")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Hotel.Title != "The Andrew Hotel" {
		t.Fatalf("hotel: %+v", d.Hotel)
	}
	if up.calls != 0 {
		t.Fatalf("mock hit must not reach upstream")
	}
	for _, r := range d.Recommended {
		if r.Key() == andrew.Key() {
			t.Fatalf("recommended includes the current hotel")
		}
	}
}

func TestDetail_EmptyIDAndNotFound(t *testing.T) {
	svc := NewDetailService(&fakeCatalog{byKey: map[string]domain.Hotel{}}, nil, nil, time.Minute)

	if _, err := svc.Get(context.Background(), "", "", ""); !errors.Is(err, domain.ErrBadInput) {
		t.Fatalf("empty id: %v", err)
	}
	// no catalog match and no upstream configured
	if _, err := svc.Get(context.Background(), "tok-xyz", "", ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("miss without upstream: %v", err)
	}
}

func TestDetail_UpstreamFetchIsCached(t *testing.T) {
	up := &fakeUpstream{detail: domain.HotelDetail{Hotel: domain.Hotel{Title: "Remote Hotel", PlaceID: "tok-xyz"}}}
	cache := newMemCache()
	svc := NewDetailService(&fakeCatalog{byKey: map[string]domain.Hotel{}}, up, cache, time.Minute)

	first, err := svc.Get(context.Background(), "tok-xyz", "2026-09-01", "2026-09-03")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := svc.Get(context.Background(), "tok-xyz", "2026-09-01", "2026-09-03")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if up.calls != 1 {
		t.Fatalf("upstream called %d times, want 1 (second hit served from cache)", up.calls)
	}
	if first.Hotel.Title != second.Hotel.Title {
		t.Fatalf("cache returned a different payload")
	}

	// different dates address a different cache entry
	_, _ = svc.Get(context.Background(), "tok-xyz", "2026-09-02", "2026-09-03")
	if up.calls != 2 {
		t.Fatalf("date change must miss the cache, calls=%d", up.calls)
	}
}

func TestDetail_UpstreamErrorsAreNotCached(t *testing.T) {
	up := &fakeUpstream{detailErr: domain.ErrUpstream}
	cache := newMemCache()
	svc := NewDetailService(&fakeCatalog{byKey: map[string]domain.Hotel{}}, up, cache, time.Minute)

	if _, err := svc.Get(context.Background(), "tok-xyz", "2026-09-01", "2026-09-03"); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("err: %v", err)
	}
	if cache.sets != 0 {
		t.Fatalf("failure must not be cached")
	}

	// upstream recovers; the next call goes through
	up.detailErr = nil
	up.detail = domain.HotelDetail{Hotel: domain.Hotel{Title: "Recovered"}}
	d, err := svc.Get(context.Background(), "tok-xyz", "2026-09-01", "2026-09-03")
	if err != nil || d.Hotel.Title != "Recovered" {
		t.Fatalf("recovery: %v %+v", err, d)
	}
}
