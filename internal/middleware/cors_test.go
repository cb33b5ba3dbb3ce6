package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsHandler(origins ...string) http.Handler {
	return CORS(DefaultCORSConfig(origins))(okHandler())
}

func TestCORS_AllowedOrigin(t *testing.T) {
	h := corsHandler("http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("unexpected Allow-Origin: %q", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	h := corsHandler("http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin should be absent, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("request should still be served, got %d", rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := corsHandler("http://localhost:3000")

	req := httptest.NewRequest(http.MethodOptions, "/user", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("expected Allow-Methods on preflight")
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "3600" {
		t.Errorf("unexpected Max-Age: %q", got)
	}
}

func TestCORS_NoOriginHeader(t *testing.T) {
	h := corsHandler("http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("same-origin request should pass through, got %d", rec.Code)
	}
}
