package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := logger.FromRequest(r).Info()
		if lw.status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Warn()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
