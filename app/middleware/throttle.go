package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Throttle is a fixed-window per-IP limiter for the credential endpoints
// (register/login), backed by redis so the window survives restarts and is
// shared between replicas. A nil client disables it.
type Throttle struct {
	Rdb    *redis.Client
	Limit  int64
	Window time.Duration
	Log    zerolog.Logger
}

func (t *Throttle) Wrap(next http.Handler) http.Handler {
	if t == nil || t.Rdb == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		key := "throttle:" + r.URL.Path + ":" + ip

		ctx := r.Context()
		count, err := t.Rdb.Incr(ctx, key).Result()
		if err != nil {
			// fail open: the store stays the authority on credentials
			t.Log.Warn().Err(err).Msg("throttle: redis unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			if err := t.Rdb.Expire(ctx, key, t.Window).Err(); err != nil {
				// a counter without a TTL would throttle this IP forever
				t.Log.Warn().Err(err).Msg("throttle: expire failed")
				t.Rdb.Del(ctx, key)
				next.ServeHTTP(w, r)
				return
			}
		}
		if count > t.Limit {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"message":"Too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
