package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/A1Marky/premium-nba-api/internal/provider"
	"github.com/redis/go-redis/v9"
)

// GameLogTTL bounds how stale a cached game log may get. Game logs
// only change once a day during the season, so an hour is generous.
const GameLogTTL = time.Hour

// RedisCache holds recently fetched provider payloads so repeated
// analysis calls for the same player don't hammer the upstream.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection.
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// HealthCheck pings Redis to verify connection.
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

func gameLogKey(playerID, season string) string {
	if season == "" {
		season = "current"
	}
	return fmt.Sprintf("gamelog:%s:%s", playerID, season)
}

// GetGameLog returns a cached game log, or nil on a miss.
func (rc *RedisCache) GetGameLog(ctx context.Context, playerID, season string) (*provider.GameLog, error) {
	data, err := rc.client.Get(ctx, gameLogKey(playerID, season)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var gameLog provider.GameLog
	if err := json.Unmarshal(data, &gameLog); err != nil {
		return nil, fmt.Errorf("decoding cached game log: %w", err)
	}
	return &gameLog, nil
}

// SetGameLog stores a fetched game log with the standard TTL.
func (rc *RedisCache) SetGameLog(ctx context.Context, gameLog *provider.GameLog) error {
	data, err := json.Marshal(gameLog)
	if err != nil {
		return fmt.Errorf("encoding game log: %w", err)
	}
	return rc.client.Set(ctx, gameLogKey(gameLog.PlayerID, gameLog.Season), data, GameLogTTL).Err()
}

// InvalidateGameLog drops a player's cached log for one season.
func (rc *RedisCache) InvalidateGameLog(ctx context.Context, playerID, season string) error {
	return rc.client.Del(ctx, gameLogKey(playerID, season)).Err()
}
