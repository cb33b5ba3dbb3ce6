package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
)

// RateLimiter checks whether a request from the given IP is allowed.
type RateLimiter interface {
	AllowRequest(ctx context.Context, ip string, limit int) (bool, error)
}

// RateLimitConfig holds rate limit middleware configuration.
type RateLimitConfig struct {
	Logger  *slog.Logger
	Limiter RateLimiter
	Enabled bool
	RPS     int
}

// RateLimitIP returns a middleware enforcing a per-IP request limit.
// If the limiter itself fails, the request is allowed; losing the
// limiter must not take the write path down with it.
func RateLimitIP(cfg RateLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed, err := cfg.Limiter.AllowRequest(r.Context(), ip, cfg.RPS)
			if err != nil {
				cfg.Logger.Warn("rate_limit_check_failed",
					"request_id", GetRequestID(r.Context()),
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				cfg.Logger.Warn("rate_limit_exceeded",
					"request_id", GetRequestID(r.Context()),
					"path", r.URL.Path,
				)
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the remote IP without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
