package geocode_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"hotelsearch/internal/adapters/geocode"
	"hotelsearch/internal/domain"
)

func TestResolve_ParsesBoundingBox(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "paris" {
			t.Errorf("q = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat": "48.8566", "lon": "2.3522", "boundingbox": ["48.815", "48.902", "2.224", "2.469"]}]`))
	}))
	defer ts.Close()

	cl := geocode.NewClient(ts.URL)
	res, err := cl.Resolve(context.Background(), "paris")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Lat != 48.8566 || res.Lng != 2.3522 {
		t.Fatalf("coords: %+v", res)
	}
	want := domain.Bounds{
		SW: domain.GeoPoint{Lat: 48.815, Lng: 2.224},
		NE: domain.GeoPoint{Lat: 48.902, Lng: 2.469},
	}
	if res.Bounds != want {
		t.Fatalf("bounds: %+v", res.Bounds)
	}
}

func TestResolve_SynthesizesBounds(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat": "10", "lon": "20"}]`))
	}))
	defer ts.Close()

	cl := geocode.NewClient(ts.URL)
	res, err := cl.Resolve(context.Background(), "somewhere")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := domain.Bounds{
		SW: domain.GeoPoint{Lat: 9.95, Lng: 19.95},
		NE: domain.GeoPoint{Lat: 10.05, Lng: 20.05},
	}
	if res.Bounds != want {
		t.Fatalf("synthesized bounds: %+v", res.Bounds)
	}
}

func TestResolve_Errors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	cl := geocode.NewClient(ts.URL)

	if _, err := cl.Resolve(context.Background(), "  "); !errors.Is(err, domain.ErrBadInput) {
		t.Fatalf("empty query: want ErrBadInput, got %v", err)
	}
	if _, err := cl.Resolve(context.Background(), "atlantis"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("no match: want ErrNotFound, got %v", err)
	}
}

func TestResolve_UpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	cl := geocode.NewClient(ts.URL)
	if _, err := cl.Resolve(context.Background(), "paris"); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
}

func TestMemo_CaseInsensitiveHit(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat": "48.85", "lon": "2.35"}]`))
	}))
	defer ts.Close()

	memo, err := geocode.NewMemo(geocode.NewClient(ts.URL), 8)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := memo.Resolve(context.Background(), "paris"); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if _, err := memo.Resolve(context.Background(), "Paris"); err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", got)
	}
}

func TestMemo_ErrorsNotCached(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat": "1", "lon": "2"}]`))
	}))
	defer ts.Close()

	memo, err := geocode.NewMemo(geocode.NewClient(ts.URL), 8)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := memo.Resolve(context.Background(), "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	res, err := memo.Resolve(context.Background(), "x")
	if err != nil {
		t.Fatalf("second resolve should retry upstream: %v", err)
	}
	if res.Lat != 1 || res.Lng != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
