package app

import (
	"context"
	"time"

	"hotelsearch/internal/domain"
)

type Mode int

const (
	ModeMock Mode = iota
	ModeUpstream
)

func (m Mode) String() string {
	if m == ModeMock {
		return "mock"
	}
	return "upstream"
}

// SearchRequest is the gateway input: a numeric page (mock mode) or an
// opaque cursor (upstream mode), plus the search query and viewport.
type SearchRequest struct {
	Page   int
	Limit  int
	Cursor string
	Bounds *domain.Bounds
	Query  domain.SearchQuery
}

// SearchService is the hotel search gateway. The mock-vs-upstream mode is
// resolved once at construction and stays fixed for the service lifetime, so
// a paging sequence never mixes cursor schemes.
type SearchService struct {
	mode     Mode
	catalog  domain.Catalog
	upstream domain.UpstreamSearcher
}

// NewSearchService selects mock mode when useMock is set or when no upstream
// client is configured.
func NewSearchService(catalog domain.Catalog, upstream domain.UpstreamSearcher, useMock bool) *SearchService {
	mode := ModeUpstream
	if useMock || upstream == nil {
		mode = ModeMock
	}
	return &SearchService{mode: mode, catalog: catalog, upstream: upstream}
}

func (s *SearchService) Mode() Mode { return s.mode }

// Search returns one result page. "No results" is an empty page, never an
// error; upstream/network failures propagate as domain.ErrUpstream so the
// caller can tell the two apart.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (domain.Page, error) {
	if s.mode == ModeMock {
		page := req.Page
		if page < 1 {
			page = 1
		}
		return s.catalog.ListPage(ctx, domain.CatalogPageQuery{
			Page:   page,
			Limit:  clampInt(req.Limit, 5, 20),
			Bounds: req.Bounds,
		})
	}

	q := req.Query
	if q.CheckIn == "" {
		q.CheckIn = time.Now().Format("2006-01-02")
	}
	if q.CheckOut == "" {
		q.CheckOut = q.CheckIn
	}
	if q.Adults == 0 {
		q.Adults = 2
	}
	// upstream accepts 1..10 adults; the UI's own input clamp (1..9) is a
	// separate, narrower rule
	q.Adults = clampInt(q.Adults, 1, 10)

	p, err := s.upstream.Search(ctx, q, req.Cursor)
	if err != nil {
		return domain.Page{Results: []domain.Hotel{}}, err
	}
	if p.Results == nil {
		p.Results = []domain.Hotel{}
	}
	return p, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
