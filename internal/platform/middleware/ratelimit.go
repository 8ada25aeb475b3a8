package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"leadgate/pkg/platform/httputil"
)

// Limiter answers whether a client may submit again within the current
// window. Implementations must fail open: an infrastructure error lets the
// request through rather than blocking a prospective lead.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit caps intake submissions per client IP. A nil limiter disables the
// middleware entirely (Redis not configured).
func RateLimit(limiter Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := fmt.Sprintf("intake:%s:%s", r.URL.Path, GetClientIP(ctx))

			allowed, err := limiter.Allow(ctx, key)
			if err != nil {
				logger.WarnContext(ctx, "rate limit check failed, allowing request",
					"request_id", GetRequestID(ctx),
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(time.Minute.Seconds())))
				httputil.WriteFailure(w, http.StatusTooManyRequests,
					"Too many submissions. Please wait a moment and try again.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
