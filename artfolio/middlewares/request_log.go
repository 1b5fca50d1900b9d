package middlewares

import (
	"net/http"
	"time"

	"artfolio/artfolio/utils/logging"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger writes one line per request to the request log and tags the
// context with chi's request id so LogDuration entries can be matched up.
// Must run after middleware.RequestID.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := middleware.GetReqID(r.Context())
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		r = r.WithContext(logging.WithTraceID(r.Context(), reqID))

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logging.RequestLogger.Info("request",
			zap.String("trace_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.String("remote", r.RemoteAddr),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}
