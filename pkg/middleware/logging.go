package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"postshare/pkg/logger"
)

const RequestIdHeader = "X-Request-Id"

type (
	requestIdKey struct{}

	LoggingMiddleware struct {
		logger *zap.SugaredLogger
	}
)

func NewLoggingMiddleware(l *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: l}
}

func RequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}

// SetupTracing gives every request an id, reusing the caller's one when present.
func (lm *LoggingMiddleware) SetupTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqId := r.Header.Get(RequestIdHeader)
		if reqId == "" || len(reqId) > 128 {
			reqId = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, reqId)
		ctx := context.WithValue(r.Context(), requestIdKey{}, reqId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetupLogging puts a logger tagged with the request id into the context.
func (lm *LoggingMiddleware) SetupLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := lm.logger.With("request_id", RequestId(r.Context()))
		ctx := logger.WithLogger(r.Context(), l)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (lm *LoggingMiddleware) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		logger.Log(r.Context()).Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.Status(),
			"bytes", rec.bytes,
			"remote_addr", r.RemoteAddr,
			"latency", time.Since(start),
		)
	})
}
