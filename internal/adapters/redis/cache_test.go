package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "wander_wave/internal/adapters/redis"
	"wander_wave/internal/domain"
)

func newCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	in := []domain.Document{
		{"room_name": "Skyline Suite", "price_per_night": 250.0, "availability": true},
	}
	if err := c.Set(ctx, "rooms:0:0", in, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out []domain.Document
	ok, err := c.Get(ctx, "rooms:0:0", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if len(out) != 1 || out[0]["room_name"] != "Skyline Suite" || out[0]["price_per_night"] != 250.0 {
		t.Fatalf("round trip mangled value: %+v", out)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	var out domain.Document
	ok, err := c.Get(ctx, "room:missing", &out)
	if err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "room:x", domain.Document{"availability": true}, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Del(ctx, "room:x"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	ok, err = c.Get(ctx, "room:x", &out)
	if err != nil || ok {
		t.Fatalf("expected miss after delete, ok=%v err=%v", ok, err)
	}
}
