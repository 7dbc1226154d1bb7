package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/iamasit07/connect4-cli/internal/config"
	"github.com/iamasit07/connect4-cli/internal/domain"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*MoveCache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewMoveCache(client, ttl), s
}

func TestMoveCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, s := newTestCache(t, time.Hour)

	b := domain.NewBoard()
	b.Apply(3, domain.Player1)

	if _, found, err := cache.GetMove(ctx, b, domain.Player2, 5); err != nil || found {
		t.Fatalf("expected a miss on an empty cache, got found=%t err=%v", found, err)
	}

	if err := cache.SetMove(ctx, b, domain.Player2, 5, 2); err != nil {
		t.Fatalf("SetMove: %v", err)
	}
	col, found, err := cache.GetMove(ctx, b, domain.Player2, 5)
	if err != nil || !found || col != 2 {
		t.Fatalf("expected cached column 2, got %d found=%t err=%v", col, found, err)
	}

	if ttl := s.TTL(MoveKey(b, domain.Player2, 5)); ttl != time.Hour {
		t.Fatalf("expected a one hour TTL, got %s", ttl)
	}

	if _, found, _ := cache.GetMove(ctx, b, domain.Player1, 5); found {
		t.Fatalf("entry leaked to the other player")
	}
	if _, found, _ := cache.GetMove(ctx, b, domain.Player2, 4); found {
		t.Fatalf("entry leaked to another depth")
	}
}

func TestMoveKeyDependsOnPosition(t *testing.T) {
	a := domain.NewBoard()
	a.Apply(0, domain.Player1)
	b := domain.NewBoard()
	b.Apply(6, domain.Player1)

	if MoveKey(a, domain.Player2, 5) == MoveKey(b, domain.Player2, 5) {
		t.Fatalf("different positions share a key")
	}
	if MoveKey(a, domain.Player2, 5) != MoveKey(a.Clone(), domain.Player2, 5) {
		t.Fatalf("equal positions produced different keys")
	}
}

func TestConnect(t *testing.T) {
	ctx := context.Background()

	if client := Connect(ctx, &config.Config{}); client != nil {
		t.Fatalf("expected no client without REDIS_URL")
	}

	s := miniredis.RunT(t)
	client := Connect(ctx, &config.Config{RedisURL: s.Addr()})
	if client == nil {
		t.Fatalf("expected a client for a reachable server")
	}
	client.Close()

	addr := s.Addr()
	s.Close()
	if client := Connect(ctx, &config.Config{RedisURL: addr}); client != nil {
		client.Close()
		t.Fatalf("expected no client for an unreachable server")
	}
}
