// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long a client's bucket is kept after its last request
const idleLimiterTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int

	// trustProxy keys buckets on forwarded headers instead of the peer address
	trustProxy bool
}

// NewRateLimiter allows perMinute requests per client, with bursts of the
// same size. perMinute <= 0 disables limiting. Clients are identified by
// their peer address unless trustProxy is set, in which case
// X-Forwarded-For and X-Real-IP are honoured.
func NewRateLimiter(perMinute int, trustProxy bool) *RateLimiter {
	rl := &RateLimiter{
		limiters:   cache.New(idleLimiterTTL, idleLimiterTTL),
		limit:      rate.Inf,
		burst:      1,
		trustProxy: trustProxy,
	}
	if perMinute > 0 {
		rl.limit = rate.Every(time.Minute / time.Duration(perMinute))
		rl.burst = perMinute
	}
	return rl
}

// Allow consumes one token for ip
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	var lim *rate.Limiter
	if v, ok := rl.limiters.Get(ip); ok {
		lim = v.(*rate.Limiter)
	} else {
		lim = rate.NewLimiter(rl.limit, rl.burst)
	}
	// Refresh expiry on every hit
	rl.limiters.SetDefault(ip, lim)

	return lim.Allow()
}

func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.trustProxy {
		return GetClientIP(r)
	}
	return RemoteIP(r)
}

// Limit wraps a handler, answering 429 once a client runs out of tokens
func (rl *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientKey(r)
		if !rl.Allow(ip) {
			slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
			if rl.limit != rate.Inf && rl.limit > 0 {
				retry := time.Duration(float64(time.Second) / float64(rl.limit))
				w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
			}
			ErrorResponse(w, http.StatusTooManyRequests, "Too many attempts, try again later")
			return
		}
		next(w, r)
	}
}
