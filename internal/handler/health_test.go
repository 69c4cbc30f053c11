package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockPool mocks database.Pool
type mockPool struct {
	mock.Mock
}

func (m *mockPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockPool) Close() {
	m.Called()
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		wantStatus  int
		wantMessage string
	}{
		{"snapshot store reachable", nil, http.StatusOK, ""},
		{"snapshot store down", assert.AnError, http.StatusServiceUnavailable, ErrMsgDatabaseConnection},
		{"ping deadline exceeded", context.DeadlineExceeded, http.StatusServiceUnavailable, ErrMsgDatabaseConnection},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connection refused"), http.StatusServiceUnavailable, ErrMsgDatabaseConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := &mockPool{}
			pool.On("Ping", mock.Anything).Return(tt.pingErr)

			w := httptest.NewRecorder()
			HandleReadyz(pool).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.pingErr == nil {
				assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
				assert.Contains(t, w.Body.String(), tt.wantMessage)
			}
			pool.AssertExpectations(t)
			pool.AssertNotCalled(t, "Close")
		})
	}
}

func TestHandleReadyz_PingIsBounded(t *testing.T) {
	pool := &mockPool{}
	pool.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= ReadinessTimeout
	})).Return(nil)

	w := httptest.NewRecorder()
	HandleReadyz(pool).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	pool.AssertExpectations(t)
}

func TestHandleReadyz_CancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil).WithContext(ctx)

	w := httptest.NewRecorder()
	HandleReadyz(ctxPool{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ctxPool reports the state of the ping context.
type ctxPool struct{}

func (ctxPool) Ping(ctx context.Context) error { return ctx.Err() }
func (ctxPool) Close()                         {}
