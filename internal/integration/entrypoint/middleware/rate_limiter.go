package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	redisKeyPrefix = "ratelimit:"
)

// RateLimitStore counts attempts per key inside a fixed window.
type RateLimitStore interface {
	// Increment records one attempt and returns the attempts in the current window.
	Increment(ctx context.Context, key string, window time.Duration) (int, error)
}

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	store          RateLimitStore
	maxAttempts    int
	windowDuration time.Duration
	enabled        bool
}

// NewRateLimiter creates a rate limiter with the default limits over store.
func NewRateLimiter(store RateLimitStore) *RateLimiter {
	return NewRateLimiterWithConfig(store, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(store RateLimitStore, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RateLimiter{
		store:          store,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		enabled:        true,
	}
}

// Disable turns the limiter into a pass-through.
func (rl *RateLimiter) Disable() {
	rl.enabled = false
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), c.FullPath()+"|"+clientIP) {
			limited := domainerror.NewRateLimitedError()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: limited.Message,
				Code:  string(limited.Code),
			})
			return
		}

		c.Next()
	}
}

// allow fails open when the store is unreachable.
func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	attempts, err := rl.store.Increment(ctx, key, rl.windowDuration)
	if err != nil {
		slog.Warn("Rate limit store unavailable", "error", err)
		return true
	}
	return attempts <= rl.maxAttempts
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// MemoryRateLimitStore keeps counters in process memory.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

// NewMemoryRateLimitStore creates an empty in-process store.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

// Increment implements RateLimitStore.
func (s *MemoryRateLimitStore) Increment(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(window),
		}
		return 1, nil
	}

	entry.attempts++
	return entry.attempts, nil
}

// Cleanup removes expired entries.
func (s *MemoryRateLimitStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// RedisRateLimitStore shares counters between API instances.
type RedisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore creates a store backed by client.
func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

// Increment implements RateLimitStore. The window starts at the first attempt.
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	redisKey := redisKeyPrefix + key

	attempts, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, err
	}
	if attempts == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return 0, err
		}
	}
	return int(attempts), nil
}
