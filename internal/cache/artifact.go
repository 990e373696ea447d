// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// artifactKeyPrefix is the Valkey key prefix for cached generator responses.
	artifactKeyPrefix = "holiday:artifacts:"

	// DefaultArtifactTTL is how long a generated response stays cached.
	DefaultArtifactTTL = 10 * time.Minute
)

// ArtifactCache stores complete generator responses in Valkey under a key
// the caller derives with Key, typically from the raw brief plus base URL
// and year. Cache errors are logged and treated as misses so generation
// never fails because Valkey is down.
type ArtifactCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewArtifactCache creates a cache backed by the given Valkey client.
// A zero ttl selects DefaultArtifactTTL.
func NewArtifactCache(client *redis.Client, ttl time.Duration) *ArtifactCache {
	if ttl == 0 {
		ttl = DefaultArtifactTTL
	}
	return &ArtifactCache{client: client, ttl: ttl}
}

// Get returns the cached response for key.
func (ac *ArtifactCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := ac.client.Get(ctx, artifactKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("artifact cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("artifact cache hit", "key", key)
	return val, true
}

// Set stores a response under key with the configured TTL.
func (ac *ArtifactCache) Set(ctx context.Context, key string, body []byte) {
	if err := ac.client.Set(ctx, artifactKeyPrefix+key, body, ac.ttl).Err(); err != nil {
		slog.Warn("artifact cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached response by scanning for the prefix.
// The server calls it at startup so a new build never serves responses
// produced by the previous catalog.
func (ac *ArtifactCache) InvalidateAll(ctx context.Context) int {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := ac.client.Scan(ctx, cursor, artifactKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("artifact cache scan error", "error", err)
			return deleted
		}
		if len(keys) > 0 {
			if err := ac.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("artifact cache bulk delete error", "error", err)
			} else {
				deleted += len(keys)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("artifact cache cleared", "deleted", deleted)
	}
	return deleted
}

// Key derives a cache key from any JSON-encodable value: the hex SHA-256
// of its JSON encoding. Equal values always map to the same key.
func Key(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
