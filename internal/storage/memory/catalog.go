package memory

import (
	"context"

	"hotelsearch/internal/domain"
)

// Catalog serves the fixed seed list. It is safe for concurrent use: the
// list is never mutated after construction and pages are returned as copies.
type Catalog struct {
	hotels []domain.Hotel
}

func New() *Catalog { return &Catalog{hotels: seedHotels()} }

// Len returns the size of the unfiltered seed list.
func (c *Catalog) Len() int { return len(c.hotels) }

func (c *Catalog) ListPage(ctx context.Context, q domain.CatalogPageQuery) (domain.Page, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 5 {
		limit = 5
	}
	if limit > 20 {
		limit = 20
	}

	list := c.hotels
	if q.Bounds != nil {
		filtered := make([]domain.Hotel, 0, len(list))
		for _, h := range list {
			// Unknown location is never excluded by the viewport.
			if !h.Mappable() || q.Bounds.Contains(*h.Latitude, *h.Longitude) {
				filtered = append(filtered, h)
			}
		}
		list = filtered
	}

	total := len(list)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	results := append([]domain.Hotel(nil), list[start:end]...)
	if results == nil {
		results = []domain.Hotel{}
	}
	var next *domain.PageToken
	if end < total {
		next = domain.NumToken(page + 1)
	}
	return domain.Page{Results: results, NextPage: next, Total: total}, nil
}

func (c *Catalog) FindByIDOrSlug(ctx context.Context, key string) (domain.Hotel, bool) {
	for _, h := range c.hotels {
		if h.PlaceID == key {
			return h, true
		}
	}
	for _, h := range c.hotels {
		if Slugify(h.Title) == key {
			return h, true
		}
	}
	return domain.Hotel{}, false
}

func (c *Catalog) RecommendedFor(ctx context.Context, current domain.Hotel, limit int) []domain.Hotel {
	out := make([]domain.Hotel, 0, limit)
	for _, h := range c.hotels {
		if h.Key() == current.Key() {
			continue
		}
		out = append(out, h)
		if len(out) == limit {
			break
		}
	}
	return out
}
