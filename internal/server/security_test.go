package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, nil)

	tests := []struct {
		name           string
		header         string
		value          string
		path           string
		expectedStatus int
	}{
		{"valid api key", HeaderAPIKey, apiKey, "/api/v1/items/decode", http.StatusOK},
		{"valid bearer token", HeaderAuthorization, "Bearer " + apiKey, "/api/v1/items/decode", http.StatusOK},
		{"invalid api key", HeaderAPIKey, "wrong-key", "/api/v1/items/decode", http.StatusUnauthorized},
		{"bearer without prefix", HeaderAuthorization, apiKey, "/api/v1/items/decode", http.StatusUnauthorized},
		{"missing api key", "", "", "/api/v1/catalog/eggs", http.StatusUnauthorized},
		{"public healthz", "", "", "/healthz", http.StatusOK},
		{"public metrics", "", "", "/metrics", http.StatusOK},
		{"public version", "", "", "/version", http.StatusOK},
		{"public swagger", "", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestAuthMiddleware_EmptyConfiguredKeyRejects(t *testing.T) {
	middleware := AuthMiddleware("", nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/eggs", nil)
	rec := httptest.NewRecorder()
	middleware(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RecordsFailedAuth(t *testing.T) {
	detector := NewSuspiciousActivityDetector(DefaultDetectorConfig())
	middleware := AuthMiddleware("secret", nil, detector)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/eggs", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		req.Header.Set(HeaderAPIKey, "nope")
		middleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuth["10.0.0.7"])
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, readErr = r.Body.Read(buf)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/items/decode", stringsReader("0123456789abcdef"))
	RequestSizeLimitMiddleware(4)(next).ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct peer", "192.0.2.10:1234", "", nil, "192.0.2.10"},
		{"untrusted peer ignores forwarded", "192.0.2.10:1234", "203.0.113.5", nil, "192.0.2.10"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "198.51.100.1, 203.0.113.5", []string{"10.0.0.1"}, "203.0.113.5"},
		{"trusted proxy with garbage header", "10.0.0.1:80", "not-an-ip", []string{"10.0.0.1"}, "10.0.0.1"},
		{"remote addr without port", "192.0.2.44", "", nil, "192.0.2.44"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSuspiciousActivityDetector_WindowResets(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	detector := NewSuspiciousActivityDetector(DetectorConfig{
		Window:            time.Minute,
		MaxRequestsPerIP:  2,
		FailedAuthAlertAt: 5,
	})
	detector.now = func() time.Time { return now }
	detector.reset(now)

	assert.True(t, detector.Allow("1.2.3.4"))
	assert.True(t, detector.Allow("1.2.3.4"))
	assert.False(t, detector.Allow("1.2.3.4"))
	assert.True(t, detector.Allow("5.6.7.8"), "limits are per IP")

	now = now.Add(2 * time.Minute)
	assert.True(t, detector.Allow("1.2.3.4"))
	assert.Equal(t, 1, detector.RequestCount("1.2.3.4"))
}
