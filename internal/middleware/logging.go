package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/adsmedia/mailbridge/internal/logger"
)

type remoteStatusKey struct{}

// statusRecorder captures what the facade sent back and, when a handler
// reports one, the status the remote API answered with.
type statusRecorder struct {
	http.ResponseWriter
	status       int
	bytes        int
	remoteStatus int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// SetRemoteStatus attaches the remote API status to the access log line
// of the current request. No-op outside Logger.
func SetRemoteStatus(ctx context.Context, status int) {
	if rec, ok := ctx.Value(remoteStatusKey{}).(*statusRecorder); ok {
		rec.remoteStatus = status
	}
}

// Logger writes one access log line per request. Facade failures are
// logged at warn level.
func (m *Middleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), remoteStatusKey{}, rec)))

		clientIP := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			clientIP = forwarded
		}

		m.log.WithRequestID(GetRequestID(r.Context())).HTTPRequest(logger.RequestLog{
			Method:       r.Method,
			Path:         r.URL.Path,
			Status:       rec.status,
			Bytes:        rec.bytes,
			RemoteStatus: rec.remoteStatus,
			Duration:     time.Since(start),
			ClientIP:     clientIP,
		})
	})
}
