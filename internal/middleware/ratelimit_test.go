package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeLimiter struct {
	allowed bool
	err     error
	calls   int
}

func (f *fakeLimiter) AllowRequest(ctx context.Context, ip string, limit int) (bool, error) {
	f.calls++
	return f.allowed, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitIP_Disabled(t *testing.T) {
	limiter := &fakeLimiter{}
	mw := RateLimitIP(RateLimitConfig{Logger: discardLogger(), Limiter: limiter, Enabled: false, RPS: 1})

	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if limiter.calls != 0 {
		t.Errorf("limiter should not be consulted when disabled, got %d calls", limiter.calls)
	}
}

func TestRateLimitIP_Allowed(t *testing.T) {
	limiter := &fakeLimiter{allowed: true}
	mw := RateLimitIP(RateLimitConfig{Logger: discardLogger(), Limiter: limiter, Enabled: true, RPS: 1})

	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if limiter.calls != 1 {
		t.Errorf("expected 1 limiter call, got %d", limiter.calls)
	}
}

func TestRateLimitIP_Blocked(t *testing.T) {
	limiter := &fakeLimiter{allowed: false}
	mw := RateLimitIP(RateLimitConfig{Logger: discardLogger(), Limiter: limiter, Enabled: true, RPS: 1})

	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user", nil))

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", rec.Code)
	}
}

func TestRateLimitIP_FailsOpen(t *testing.T) {
	limiter := &fakeLimiter{err: errors.New("redis down")}
	mw := RateLimitIP(RateLimitConfig{Logger: discardLogger(), Limiter: limiter, Enabled: true, RPS: 1})

	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("limiter failure should not block requests, got %d", rec.Code)
	}
}
