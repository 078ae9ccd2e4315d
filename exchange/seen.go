package exchange

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/xy-planning-network/connect"
)

// SeenTTL is how long a submitted code is remembered.
// Google's authorization codes expire well before then.
const SeenTTL = 10 * time.Minute

// A SeenCache remembers which codes were submitted.
type SeenCache interface {
	// MarkSeen records key and reports whether it had already been recorded.
	MarkSeen(ctx context.Context, key string) (seen bool, err error)
}

// Digest hashes code so the code itself is never stored.
func Digest(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// Dedup returns ErrDuplicate if code was already submitted through cache
// and otherwise records it.
//
// A nil cache never reports duplicates.
func Dedup(ctx context.Context, cache SeenCache, code string) error {
	if cache == nil {
		return nil
	}

	seen, err := cache.MarkSeen(ctx, Digest(code))
	if err != nil {
		return fmt.Errorf("%w: checking code: %s", connect.ErrUnexpected, err)
	}

	if seen {
		return ErrDuplicate
	}

	return nil
}

// A MemorySeenCache is a SeenCache local to the process.
type MemorySeenCache struct {
	mu   sync.Mutex
	now  func() time.Time
	seen map[string]time.Time
	ttl  time.Duration
}

// NewMemorySeenCache constructs a *MemorySeenCache remembering keys for ttl.
func NewMemorySeenCache(ttl time.Duration) *MemorySeenCache {
	return &MemorySeenCache{now: time.Now, seen: make(map[string]time.Time), ttl: ttl}
}

// MarkSeen records key and reports whether it had already been recorded within the ttl.
// Expired keys are swept on every call.
func (c *MemorySeenCache) MarkSeen(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, expires := range c.seen {
		if !now.Before(expires) {
			delete(c.seen, k)
		}
	}

	if _, ok := c.seen[key]; ok {
		return true, nil
	}

	c.seen[key] = now.Add(c.ttl)
	return false, nil
}

// A RedisSeenCache is a SeenCache shared by every process using the same Redis.
type RedisSeenCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisSeenCache constructs a *RedisSeenCache remembering keys for ttl.
func NewRedisSeenCache(client redis.Cmdable, ttl time.Duration) *RedisSeenCache {
	return &RedisSeenCache{client: client, prefix: "connect:seen:", ttl: ttl}
}

// MarkSeen records key with SETNX and reports whether it was already set.
func (c *RedisSeenCache) MarkSeen(ctx context.Context, key string) (bool, error) {
	set, err := c.client.SetNX(ctx, c.prefix+key, 1, c.ttl).Result()
	if err != nil {
		return false, err
	}

	return !set, nil
}
