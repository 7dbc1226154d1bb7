package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/iamasit07/connect4-cli/internal/config"
	"github.com/iamasit07/connect4-cli/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "connect4:move:v1"

// Connect opens the move cache connection. It returns a nil client, and no
// error, when no address is configured or the server cannot be reached: the
// game simply runs without a cache then.
func Connect(ctx context.Context, cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		log.Println("[REDIS] No REDIS_URL set, move cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[REDIS] Warning: Could not connect to Redis at %s: %v. Running without move cache.", cfg.RedisURL, err)
		client.Close()
		return nil
	}

	log.Println("[REDIS] Connected successfully")
	return client
}

// MoveCache stores computer decisions keyed by position, player and depth.
type MoveCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMoveCache(client *redis.Client, ttl time.Duration) *MoveCache {
	return &MoveCache{client: client, ttl: ttl}
}

// MoveKey derives the cache key for a position.
func MoveKey(board *domain.Board, player domain.PlayerID, depth int) string {
	return fmt.Sprintf("%s:%d:%d:%016x", keyPrefix, depth, player, xxhash.Sum64String(board.String()))
}

func (c *MoveCache) GetMove(ctx context.Context, board *domain.Board, player domain.PlayerID, depth int) (int, bool, error) {
	col, err := c.client.Get(ctx, MoveKey(board, player, depth)).Int()
	if errors.Is(err, redis.Nil) {
		return -1, false, nil
	}
	if err != nil {
		return -1, false, fmt.Errorf("failed to read cached move: %w", err)
	}
	return col, true, nil
}

func (c *MoveCache) SetMove(ctx context.Context, board *domain.Board, player domain.PlayerID, depth, column int) error {
	if err := c.client.Set(ctx, MoveKey(board, player, depth), column, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache move: %w", err)
	}
	return nil
}
