package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tech2saini/portfolio/pkg/httpx"
)

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"

		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")

		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Real-IP", "203.0.113.2")

		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestUserIDKeyExtractor(t *testing.T) {
	t.Run("reads the resolved user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), httpx.CtxKeyUserID, "user-1"))

		require.Equal(t, "user-1", httpx.UserIDKeyExtractor(req))
	})

	t.Run("empty for anonymous requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.Equal(t, "", httpx.UserIDKeyExtractor(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	req = req.WithContext(context.WithValue(req.Context(), httpx.CtxKeyUserID, "user-1"))

	extractor := httpx.CompositeKeyExtractor(":",
		httpx.UserIDKeyExtractor,
		httpx.IPKeyExtractor,
	)
	require.Equal(t, "user-1:192.168.1.1", extractor(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	do := func(h http.Handler, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows up to burst then rejects", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
		h := httpx.RateLimitByIP(config)(okHandler)

		require.Equal(t, http.StatusOK, do(h, "10.1.0.1").Code)
		require.Equal(t, http.StatusOK, do(h, "10.1.0.1").Code)

		rec := do(h, "10.1.0.1")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("buckets are per key", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		h := httpx.RateLimitByIP(config)(okHandler)

		require.Equal(t, http.StatusOK, do(h, "10.2.0.1").Code)
		require.Equal(t, http.StatusTooManyRequests, do(h, "10.2.0.1").Code)
		require.Equal(t, http.StatusOK, do(h, "10.2.0.2").Code)
	})
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaults := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	t.Run("returns defaults when unset", func(t *testing.T) {
		config := httpx.ParseRateLimitFromEnv("UNSET_TEST", defaults)
		require.Equal(t, defaults, config)
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("RATELIMIT_ENV_TEST_REQUESTS", "50")
		t.Setenv("RATELIMIT_ENV_TEST_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_ENV_TEST_BURST", "10")

		config := httpx.ParseRateLimitFromEnv("ENV_TEST", defaults)
		require.Equal(t, 50, config.RequestsPerWindow)
		require.Equal(t, 30*time.Second, config.Window)
		require.Equal(t, 10, config.Burst)
	})

	t.Run("ignores malformed values", func(t *testing.T) {
		t.Setenv("RATELIMIT_BAD_TEST_REQUESTS", "not-a-number")
		t.Setenv("RATELIMIT_BAD_TEST_BURST", "-3")

		config := httpx.ParseRateLimitFromEnv("BAD_TEST", defaults)
		require.Equal(t, defaults, config)
	})
}
