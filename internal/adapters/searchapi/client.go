package searchapi

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

	"golang.org/x/time/rate"

	"hotelsearch/internal/adapters/observability"
	"hotelsearch/internal/domain"
)

const DefaultBase = "https://www.searchapi.io/api/v1/search"

// Client calls the SearchApi.io Google Hotels engines. Requests are
// rate-limited client-side; failures surface immediately, there is no retry
// loop (a failed search is re-issued only by the user searching again).
type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("searchapi: API key is required")
	}
	if base == "" {
		base = DefaultBase
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (c *Client) Search(ctx context.Context, q domain.SearchQuery, cursor string) (domain.Page, error) {
	vals := url.Values{}
	vals.Set("engine", "google_hotels")
	vals.Set("api_key", c.key)
	text := strings.TrimSpace(q.Text)
	if text == "" {
		text = "Hotels"
	}
	vals.Set("q", text)
	vals.Set("check_in_date", q.CheckIn)
	vals.Set("check_out_date", q.CheckOut)
	vals.Set("adults", strconv.Itoa(q.Adults))
	if cursor != "" {
		vals.Set("next_page_token", cursor)
	}

	var resp searchResponse
	if err := c.get(ctx, "google_hotels", vals, &resp); err != nil {
		return domain.Page{}, err
	}
	if msg := resp.errorMessage(); msg != "" {
		return domain.Page{}, fmt.Errorf("searchapi: %s: %w", msg, domain.ErrUpstream)
	}

	results := make([]domain.Hotel, 0, len(resp.Properties))
	for _, p := range resp.Properties {
		results = append(results, mapCard(p))
	}
	var next *domain.PageToken
	if resp.Pagination.NextPageToken != "" {
		next = domain.StrToken(resp.Pagination.NextPageToken)
	}
	total := resp.SearchInformation.TotalResults
	if total == 0 {
		total = len(results)
	}
	return domain.Page{Results: results, NextPage: next, Total: total}, nil
}

func (c *Client) FetchDetail(ctx context.Context, token, checkIn, checkOut string) (domain.HotelDetail, error) {
	vals := url.Values{}
	vals.Set("engine", "google_hotels_property")
	vals.Set("api_key", c.key)
	vals.Set("property_token", token)
	vals.Set("check_in_date", checkIn)
	vals.Set("check_out_date", checkOut)

	var resp detailResponse
	if err := c.get(ctx, "google_hotels_property", vals, &resp); err != nil {
		return domain.HotelDetail{}, err
	}
	if resp.Error != "" {
		return domain.HotelDetail{}, fmt.Errorf("searchapi: %s: %w", resp.Error, domain.ErrUpstream)
	}
	if resp.Property == nil {
		return domain.HotelDetail{}, domain.ErrNotFound
	}

	recommended := make([]domain.Hotel, 0, 4)
	for _, p := range resp.PeopleAlsoViewed {
		recommended = append(recommended, mapCard(p))
		if len(recommended) == 4 {
			break
		}
	}
	return domain.HotelDetail{Hotel: mapDetail(*resp.Property), Recommended: recommended}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, vals url.Values, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?"+vals.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hotel-search/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("searchapi", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("searchapi: %v: %w", err, domain.ErrUpstream)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("searchapi", endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return domain.ErrNotFound
	default:
		// keep a short error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("searchapi: status %d: %s: %w",
			resp.StatusCode, strings.TrimSpace(string(b)), domain.ErrUpstream)
	}
}
