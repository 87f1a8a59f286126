package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"

	. "postshare/pkg/common"
	"postshare/pkg/logger"
	"postshare/pkg/ratelimit"
)

type (
	ILimiter interface {
		Allow(ctx context.Context, key string) (ratelimit.Decision, error)
	}

	RateLimiter struct {
		Limiter  ILimiter
		Resource string
	}
)

func NewRateLimitMiddleware(l ILimiter, resource string) *RateLimiter {
	return &RateLimiter{
		Limiter:  l,
		Resource: resource,
	}
}

// Middleware counts requests per client address. If the counter store fails the
// request goes through.
func (rl RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.Resource + ":ip:" + ClientIP(r)
		decision, err := rl.Limiter.Allow(r.Context(), key)
		if err != nil {
			logger.Log(r.Context()).Warnf("ratelimit: letting request through: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			retry := int(math.Ceil(decision.RetryAfter.Seconds()))
			h.Set("Retry-After", strconv.Itoa(retry))
			WriteErr(w, RateLimited())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP is the host part of the peer address.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
