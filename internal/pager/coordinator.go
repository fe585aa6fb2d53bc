package pager

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"hotelsearch/internal/domain"
)

// DefaultViewportWindow is how long the map viewport must hold still before
// it participates in the cache key.
const DefaultViewportWindow = 400 * time.Millisecond

type Status int

const (
	StatusIdle Status = iota
	StatusLoadingFirst
	StatusLoadingMore
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoadingFirst:
		return "loading-first"
	case StatusLoadingMore:
		return "loading-more"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// FetchFunc fetches one page for a logical search. A nil cursor asks for the
// first page.
type FetchFunc func(ctx context.Context, q domain.SearchQuery, cursor *domain.PageToken) (domain.Page, error)

// Snapshot is a consistent view of the coordinator's state.
type Snapshot struct {
	Key     string
	Status  Status
	Results []domain.Hotel
	Total   int
	HasMore bool
	Err     error
}

// Coordinator drives infinite pagination for one logical search at a time.
// A logical search is identified by its cache key; changing any key
// component restarts pagination from the first page and discards whatever a
// superseded fetch returns ("last key wins"). Pages are requested strictly
// in cursor order and at most one fetch is in flight per key.
type Coordinator struct {
	mu       sync.Mutex
	fetch    FetchFunc
	debounce *Debouncer

	query   domain.SearchQuery
	started bool
	key     string
	gen     uint64
	ctx     context.Context
	cancel  context.CancelFunc

	pages    []domain.Page
	next     *domain.PageToken
	status   Status
	err      error
	inflight bool
}

func New(fetch FetchFunc, viewportWindow time.Duration) *Coordinator {
	return &Coordinator{
		fetch:    fetch,
		debounce: NewDebouncer(viewportWindow),
		status:   StatusIdle,
	}
}

// CacheKey derives the identity of a logical search. Bounds are rounded to
// 3 decimal places (~111 m); when absent the center point is rounded to 4
// decimal places (~11 m) instead.
func CacheKey(q domain.SearchQuery) string {
	fp := ""
	switch {
	case q.Bounds != nil:
		fp = fmt.Sprintf("%.3f,%.3f,%.3f,%.3f",
			q.Bounds.SW.Lat, q.Bounds.SW.Lng, q.Bounds.NE.Lat, q.Bounds.NE.Lng)
	case q.Center != nil:
		fp = fmt.Sprintf("%.4f,%.4f", q.Center.Lat, q.Center.Lng)
	}
	return strings.Join([]string{
		strings.TrimSpace(q.Text),
		q.CheckIn,
		q.CheckOut,
		strconv.Itoa(q.Adults),
		fp,
	}, "|")
}

// Update applies new search text, dates and guest count, restarting
// pagination when the derived key changes. The viewport is not taken from q;
// it only enters through SetViewport's debounce window.
func (c *Coordinator) Update(q domain.SearchQuery) {
	c.mu.Lock()
	q.Bounds, q.Center = c.query.Bounds, c.query.Center
	c.query = q
	c.restartIfChangedLocked()
	c.mu.Unlock()
}

// SetViewport records a map viewport change. Continuous pan/zoom is
// debounced so only the settled viewport re-derives the key.
func (c *Coordinator) SetViewport(bounds *domain.Bounds, center *domain.GeoPoint) {
	c.debounce.Trigger(func() {
		c.mu.Lock()
		c.query.Bounds, c.query.Center = bounds, center
		c.restartIfChangedLocked()
		c.mu.Unlock()
	})
}

// LoadMore requests the next page. It is a no-op unless the previous page
// produced a cursor and no fetch is in flight: concurrent triggers coalesce
// rather than queue.
func (c *Coordinator) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started || c.inflight || c.next == nil {
		return
	}
	cursor := *c.next
	c.status = StatusLoadingMore
	c.inflight = true
	go c.run(c.ctx, c.gen, c.query, &cursor)
}

// Snapshot returns the flattened, order-preserving concatenation of all
// fetched pages plus the current status.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, p := range c.pages {
		n += len(p.Results)
	}
	results := make([]domain.Hotel, 0, n)
	total := 0
	for _, p := range c.pages {
		results = append(results, p.Results...)
		total = p.Total
	}
	return Snapshot{
		Key:     c.key,
		Status:  c.status,
		Results: results,
		Total:   total,
		HasMore: c.next != nil,
		Err:     c.err,
	}
}

// Close cancels any in-flight fetch and pending viewport commit.
func (c *Coordinator) Close() {
	c.debounce.Stop()
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()
}

func (c *Coordinator) restartIfChangedLocked() {
	key := CacheKey(c.query)
	if c.started && key == c.key {
		return
	}
	c.started = true
	c.key = key
	c.gen++
	if c.cancel != nil {
		c.cancel()
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())

	// accumulated pages belong to the old key; drop them before the first
	// new page arrives
	c.pages = nil
	c.next = nil
	c.err = nil
	c.status = StatusLoadingFirst
	c.inflight = true
	go c.run(c.ctx, c.gen, c.query, nil)
}

func (c *Coordinator) run(ctx context.Context, gen uint64, q domain.SearchQuery, cursor *domain.PageToken) {
	page, err := c.fetch(ctx, q, cursor)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// late arrival for a superseded key: never merged into current state
		return
	}
	c.inflight = false
	if err != nil {
		c.err = err
		c.status = StatusError
		return
	}
	c.pages = append(c.pages, page)
	c.next = page.NextPage
	c.err = nil
	c.status = StatusSuccess
}
