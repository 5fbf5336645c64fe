package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/allowance"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/dig"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/handler"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/inventory"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/logger"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/memory"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/metrics"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/profile"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/sse"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/storage"
)

type Server struct {
	httpServer *http.Server
	store      storage.Store
}

// NewServer creates a new Server instance
func NewServer(port int, corsOrigin string, store storage.Store, digService dig.Service, memoryService memory.Service, inventoryService inventory.Service, allowanceService allowance.Service, profileService profile.Service, eventHub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(corsOrigin))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		digHandler := handler.NewDigHandler(digService)
		r.Route("/dig", func(r chi.Router) {
			r.Post("/start", digHandler.HandleStart)
			r.Post("/excavate", digHandler.HandleExcavate)
			r.Get("/session", digHandler.HandleSession)
			r.Post("/acknowledge", digHandler.HandleAcknowledge)
		})

		allowanceHandler := handler.NewAllowanceHandler(allowanceService)
		r.Get("/allowance", allowanceHandler.HandleGet)

		collectionHandler := handler.NewCollectionHandler(inventoryService)
		r.Get("/collection", collectionHandler.HandleGetCollection)
		r.Get("/achievements", collectionHandler.HandleGetAchievements)

		memoryHandler := handler.NewMemoryHandler(memoryService)
		r.Route("/memories", func(r chi.Router) {
			r.Get("/", memoryHandler.HandleList)
			r.Post("/", memoryHandler.HandleCreate)
			r.Get("/search", memoryHandler.HandleSearch)
			r.Post("/{id}/comments", memoryHandler.HandleAddComment)
		})

		profileHandler := handler.NewProfileHandler(profileService)
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", profileHandler.HandleGet)
			r.Put("/", profileHandler.HandleUpdate)
		})

		// Live game events for the browser client
		if eventHub != nil {
			r.Get("/events", sse.Handler(eventHub))
		}
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store: store,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
