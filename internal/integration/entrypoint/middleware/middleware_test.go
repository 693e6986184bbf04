package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/finance-app/backend/internal/application/adapter"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(limiter *RateLimiter) *gin.Engine {
	r := gin.New()
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r http.Handler, method, path string, header http.Header) int {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterStores(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	stores := map[string]RateLimitStore{
		"memory": NewMemoryRateLimitStore(),
		"redis":  NewRedisRateLimitStore(client),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			r := newLimitedRouter(NewRateLimiterWithConfig(store, 3, time.Minute))
			for i := 0; i < 3; i++ {
				if code := hit(r, http.MethodPost, "/login", nil); code != http.StatusOK {
					t.Fatalf("attempt %d: expected 200, got %d", i+1, code)
				}
			}
			if code := hit(r, http.MethodPost, "/login", nil); code != http.StatusTooManyRequests {
				t.Errorf("expected 429 after limit, got %d", code)
			}
		})
	}
}

func TestRedisRateLimitWindowExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, _ = store.Increment(ctx, "k", time.Minute)
	}
	mr.FastForward(2 * time.Minute)

	n, err := store.Increment(ctx, "k", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected counter to restart after window, got %d", n)
	}
}

func TestMemoryRateLimitWindowExpires(t *testing.T) {
	store := NewMemoryRateLimitStore()
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = store.Increment(ctx, "k", time.Minute)
	_, _ = store.Increment(ctx, "k", time.Minute)
	now = now.Add(2 * time.Minute)

	if n, _ := store.Increment(ctx, "k", time.Minute); n != 1 {
		t.Errorf("expected counter to restart, got %d", n)
	}
	now = now.Add(2 * time.Minute)
	store.Cleanup()
	if len(store.entries) != 0 {
		t.Error("expected expired entries to be removed")
	}
}

type failingStore struct{}

func (failingStore) Increment(context.Context, string, time.Duration) (int, error) {
	return 0, errors.New("connection refused")
}

func TestRateLimiterFailsOpenAndDisable(t *testing.T) {
	r := newLimitedRouter(NewRateLimiterWithConfig(failingStore{}, 1, time.Minute))
	for i := 0; i < 3; i++ {
		if code := hit(r, http.MethodPost, "/login", nil); code != http.StatusOK {
			t.Fatalf("expected store failure to let requests through, got %d", code)
		}
	}

	limiter := NewRateLimiterWithConfig(NewMemoryRateLimitStore(), 1, time.Minute)
	limiter.Disable()
	r = newLimitedRouter(limiter)
	for i := 0; i < 3; i++ {
		if code := hit(r, http.MethodPost, "/login", nil); code != http.StatusOK {
			t.Fatalf("expected disabled limiter to pass, got %d", code)
		}
	}
}

type stubTokenService struct {
	adapter.TokenService
	userID uuid.UUID
}

func (s stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &adapter.TokenClaims{UserID: s.userID, Email: "ana@example.com"}, nil
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	auth := NewAuthMiddleware(stubTokenService{userID: userID})

	r := gin.New()
	r.GET("/me", auth.Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		email, _ := GetUserEmailFromContext(c)
		if !ok || id != userID || email != "ana@example.com" {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"invalid token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}
			if code := hit(r, http.MethodGet, "/me", header); code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, code)
			}
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	r := gin.New()
	r.Use(metrics.Middleware(), RequestLogger())
	r.GET("/api/bills/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	hit(r, http.MethodGet, "/api/bills/"+uuid.NewString(), nil)
	hit(r, http.MethodGet, "/api/bills/"+uuid.NewString(), nil)

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, family := range families {
		if family.GetName() != "finance_app_http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			if labels["route"] == "/api/bills/:id" && labels["status"] == "404" {
				found = metric.GetCounter().GetValue() == 2
			}
		}
	}
	if !found {
		t.Error("expected two requests counted under the route template")
	}
}
