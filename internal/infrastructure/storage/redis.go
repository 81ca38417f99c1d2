package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"svw.info/codebreaker/internal/domain"
)

const redisKeyPrefix = "codebreaker:progress:"

// Redis stores progress documents as JSON strings keyed by player.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis { return &Redis{client: client} }

// DialRedis parses url, connects and pings.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func (s *Redis) Save(ctx context.Context, playerID string, p *domain.Progress) error {
	if p == nil {
		return errors.New("invalid progress: nil")
	}
	if err := validPlayerID(playerID); err != nil {
		return err
	}
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisKeyPrefix+playerID, b, 0).Err(); err != nil {
		return fmt.Errorf("save progress for %s: %w", playerID, err)
	}
	return nil
}

func (s *Redis) Load(ctx context.Context, playerID string) (*domain.Progress, error) {
	if err := validPlayerID(playerID); err != nil {
		return nil, err
	}
	b, err := s.client.Get(ctx, redisKeyPrefix+playerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("player %s: %w", playerID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("load progress for %s: %w", playerID, err)
	}
	var out domain.Progress
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode progress for %s: %w", playerID, err)
	}
	return &out, nil
}
