package aquarium

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/xid"

	"github.com/oshokin/aquarium/internal/logger"
	"github.com/oshokin/aquarium/internal/version"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

// WriteHeader implements http.ResponseWriter.
func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestContext attaches a request id and a scoped logger to every request
// and writes one access log line once the handler returns.
// The base context supplies the process-wide logger fields.
func requestContext(base context.Context) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = xid.New().String()
			}

			w.Header().Set(RequestIDHeader, requestID)
			w.Header().Set("Server", version.UserAgent())

			ctx := logger.ToContext(r.Context(), logger.FromContext(base))
			ctx = logger.WithKV(ctx, "request_id", requestID)

			recorder := &statusRecorder{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			startedAt := time.Now()

			next.ServeHTTP(recorder, r.WithContext(ctx))

			logger.DebugKV(ctx, "Request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration", time.Since(startedAt))
		})
	}
}
