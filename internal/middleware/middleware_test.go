package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestGlobalRateLimiter_AllowsWithinLimit(t *testing.T) {
	rl := NewGlobalRateLimiter(100, 10)
	handler := rl.Middleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestGlobalRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewGlobalRateLimiter(1, 1)
	handler := rl.Middleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.RemoteAddr = "10.0.0.2:1234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestGlobalRateLimiter_SeparateIPs(t *testing.T) {
	rl := NewGlobalRateLimiter(1, 1)
	handler := rl.Middleware()(okHandler())

	for i, addr := range []string{"10.0.0.3:1", "10.0.0.4:1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("request %d status = %d, want 200", i, rec.Code)
		}
	}
}

func TestGlobalRateLimiter_UsesProxyHeaders(t *testing.T) {
	rl := NewGlobalRateLimiter(1, 1)
	handler := rl.Middleware()(okHandler())

	// Same RemoteAddr but different X-Real-IP should use separate buckets
	for _, ip := range []string{"1.2.3.4", "5.6.7.8"} {
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.RemoteAddr = "127.0.0.1:9999"
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("request from %s status = %d, want 200", ip, rec.Code)
		}
	}
}

func TestGlobalRateLimiter_Prune(t *testing.T) {
	rl := NewGlobalRateLimiter(1, 1)
	handler := rl.Middleware()(okHandler())

	for _, addr := range []string{"10.1.0.1:1", "10.1.0.2:1", "10.1.0.3:1"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	if !rl.Prune(2) {
		t.Error("Prune(2) = false, want true with 3 tracked IPs")
	}
	if rl.Prune(2) {
		t.Error("Prune(2) = true after clearing, want false")
	}
}

func TestTimeout_CompletesInTime(t *testing.T) {
	handler := Timeout(time.Second)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestTimeout_Expires(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	handler := Timeout(20 * time.Millisecond)(slow)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	handler := CORS([]string{"https://mathlog.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Origin", "https://mathlog.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://mathlog.example.com" {
		t.Errorf("Allow-Origin = %q, want origin echoed", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	handler := CORS([]string{"https://mathlog.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty", got)
	}
	// Request still goes through without CORS headers
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS([]string{"*"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("expected Allow-Methods header on preflight")
	}
}

func TestCORS_NoOrigin(t *testing.T) {
	handler := CORS([]string{"*"})(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty without Origin header", got)
	}
}

func TestStripTrailingSlash(t *testing.T) {
	handler := StripTrailingSlash(okHandler())

	tests := []struct {
		name     string
		path     string
		query    string
		wantCode int
		wantLoc  string
	}{
		{"redirects trailing slash", "/api/posts/", "", http.StatusMovedPermanently, "/api/posts"},
		{"preserves query", "/api/posts/", "topic=Calculus", http.StatusMovedPermanently, "/api/posts?topic=Calculus"},
		{"root untouched", "/", "", http.StatusOK, ""},
		{"no trailing slash untouched", "/api/posts", "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.path
			if tt.query != "" {
				target += "?" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantLoc != "" && w.Header().Get("Location") != tt.wantLoc {
				t.Errorf("Location = %q, want %q", w.Header().Get("Location"), tt.wantLoc)
			}
		})
	}
}
