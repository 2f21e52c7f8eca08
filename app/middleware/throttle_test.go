package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"clinic-api/app/middleware"
)

func throttled(rdb *redis.Client) http.Handler {
	t := &middleware.Throttle{Rdb: rdb, Limit: 2, Window: time.Minute, Log: zerolog.Nop()}
	return t.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestThrottleDisabledWithoutRedis(t *testing.T) {
	h := throttled(nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d, want 204", rec.Code)
	}
}

// The limiter protects credentials, it does not gate availability: when redis
// is unreachable every request passes through.
func TestThrottleFailsOpenWhenRedisUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		ReadTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	h := throttled(rdb)
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: status %d, want 204", i, rec.Code)
		}
	}
}
