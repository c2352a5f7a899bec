package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func closedClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	if err := client.Close(); err != nil {
		t.Fatalf("close client: %v", err)
	}
	return client
}

func TestIdempotencyStore_Key(t *testing.T) {
	s := NewIdempotencyStore(nil, time.Hour)

	if got := s.key("custom-order", "abc"); got != "idem:custom-order:abc" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestIdempotencyStore_DefaultTTL(t *testing.T) {
	s := NewIdempotencyStore(nil, 0)

	if s.ttl != defaultIdempotencyTTL {
		t.Fatalf("expected default ttl, got %s", s.ttl)
	}
}

func TestIdempotencyStore_ErrorsSurface(t *testing.T) {
	s := NewIdempotencyStore(closedClient(t), time.Hour)
	ctx := context.Background()

	if ok, err := s.Reserve(ctx, "custom-order", "abc"); err == nil || ok {
		t.Fatalf("expected reserve error on closed client, got ok=%v err=%v", ok, err)
	}
	if _, found, err := s.Lookup(ctx, "custom-order", "abc"); err == nil || found {
		t.Fatalf("expected lookup error on closed client, got found=%v err=%v", found, err)
	}
	if err := s.Remember(ctx, "custom-order", "abc", "o-1"); err == nil {
		t.Fatalf("expected remember error on closed client")
	}
	if err := s.Release(ctx, "custom-order", "abc"); err == nil {
		t.Fatalf("expected release error on closed client")
	}
	if err := s.Ping(ctx); err == nil {
		t.Fatalf("expected ping error on closed client")
	}
}
