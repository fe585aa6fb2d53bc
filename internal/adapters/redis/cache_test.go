package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "hotelsearch/internal/adapters/redis"
	"hotelsearch/internal/domain"
)

func newCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestCache_RoundTrip(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	in := domain.HotelDetail{
		Hotel:       domain.Hotel{Title: "The Andrew Hotel", Link: "http://www.andrewhotel.com/"},
		Recommended: []domain.Hotel{{Title: "Sky Hotel Flushing", Link: "http://skyhotelny.com/"}},
	}
	if err := c.Set(ctx, "hotel:detail:x", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.HotelDetail
	ok, err := c.Get(ctx, "hotel:detail:x", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.Hotel.Title != in.Hotel.Title || len(out.Recommended) != 1 {
		t.Fatalf("unexpected value: %+v", out)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	var out domain.HotelDetail
	ok, err := c.Get(ctx, "absent", &out)
	if err != nil || ok {
		t.Fatalf("want miss without error, got ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "k", out, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatalf("expected miss after del")
	}
}
