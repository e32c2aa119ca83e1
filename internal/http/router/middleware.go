package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pokedex/internal/logging"
)

func useBaseMiddlewares(r chi.Router, logger logging.Logger, throttleLimit int) {
	// Request ID / Real IP / Recover
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Single global inbound limiter.
	if throttleLimit > 0 {
		r.Use(middleware.Throttle(throttleLimit))
	}

	r.Use(requestLoggingMiddleware(logger))

	r.Use(middleware.Timeout(60 * time.Second))
}

func requestLoggingMiddleware(logger logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http_request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
