package middlewares

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// statusRecorder captures the status code and body size written by a handler.
// The status is latched on the first WriteHeader or Write, matching net/http
// semantics.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	bytes   int
	latched bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.latched {
		sr.status = code
		sr.latched = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.latched {
		sr.status = http.StatusOK
		sr.latched = true
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

// LoggingMiddleware tags each request with a generated id, exposes it via the
// X-Request-ID response header, and emits one summary log line per request.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set("X-Request-ID", requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			log.Infow("http request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"elapsed", time.Since(start).String(),
			)
		})
	}
}
