package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/harmonfunc/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestTracking tags every request with an ID and logs its outcome.
func requestTracking(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := logger.Fields{
			"request_id":  requestID,
			"duration_ms": time.Since(start).Milliseconds(),
			"status_code": rec.status,
			"method":      r.Method,
			"path":        r.URL.Path,
		}
		switch {
		case rec.status >= http.StatusInternalServerError:
			logger.Error("Request failed with server error", nil, fields)
		case rec.status >= http.StatusBadRequest:
			logger.Warn("Request failed with client error", fields)
		default:
			logger.Info("Request completed", fields)
		}
	})
}
