package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/HabitInventory_Go/internal/database"
	"github.com/osse101/HabitInventory_Go/internal/handler"
	"github.com/osse101/HabitInventory_Go/internal/inventory"
	"github.com/osse101/HabitInventory_Go/internal/logger"
	"github.com/osse101/HabitInventory_Go/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	MaxPayloadBytes int64
	ServiceName     string
	Version         string
	Detector        DetectorConfig
}

// Deps are the services the routes are served from
type Deps struct {
	DB        database.Pool
	Inventory inventory.Service
	Catalog   handler.EggCatalog
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
	detector   *SuspiciousActivityDetector
}

// NewServer wires middleware and routes into a new Server
func NewServer(opts Options, deps Deps) *Server {
	if opts.MaxPayloadBytes <= 0 {
		opts.MaxPayloadBytes = DefaultMaxBodyBytes
	}
	if opts.Detector == (DetectorConfig{}) {
		opts.Detector = DefaultDetectorConfig()
	}

	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector(opts.Detector)

	// Outermost first
	r.Use(loggingMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxPayloadBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DB))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version, deps.Catalog))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/items/decode", handler.HandleDecodeItems(deps.Inventory))

		r.Route("/users/{userID}/items", func(r chi.Router) {
			r.Put("/", handler.HandlePutUserItems(deps.Inventory))
			r.Get("/", handler.HandleGetUserItems(deps.Inventory))
			r.Delete("/", handler.HandleDeleteUserItems(deps.Inventory))
			r.Get("/summary", handler.HandleGetUserItemsSummary(deps.Inventory))
		})

		r.Route("/catalog/eggs", func(r chi.Router) {
			r.Get("/", handler.HandleListEggs(deps.Catalog))
			r.Get("/{key}", handler.HandleGetEgg(deps.Catalog))
		})

		r.Get("/admin/cache/stats", handler.HandleGetCacheStats(deps.Inventory))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ReadTimeout:       DefaultReadTimeout,
			WriteTimeout:      DefaultWriteTimeout,
			IdleTimeout:       DefaultIdleTimeout,
		},
		router:   r,
		detector: detector,
	}
}

// Handler exposes the router, mainly for httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter captures the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, prefix := range quietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// requestID reuses a well-formed inbound X-Request-ID or mints a new one
func requestID(r *http.Request) string {
	if id := r.Header.Get(HeaderRequestID); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	return logger.GenerateRequestID()
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		id := requestID(r)
		ctx := logger.WithRequestID(r.Context(), id)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, id)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start blocks serving HTTP until the server is stopped
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
