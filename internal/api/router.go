package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/idea-agent/pkg/logger"
)

// NewRouter wires the handler into a chi router
func NewRouter(h *Handler, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log.WithComponent("http")))
	r.Use(middleware.Recoverer)

	r.Get("/api/ideas", h.GetIdeas)
	r.Get("/api/categories", h.GetCategories)
	r.Get("/health", h.Health)

	return r
}

// requestLogger logs one line per request through zerolog
func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Info().
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Dur("duration", time.Since(start)).
					Msg("Handled request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
