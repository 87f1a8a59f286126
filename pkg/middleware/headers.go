package middleware

import (
	"net/http"
	"runtime/debug"

	. "postshare/pkg/common"
	"postshare/pkg/logger"
)

// MaxBodyBytes caps request bodies; base64 images travel inline.
const MaxBodyBytes = 50 << 20

func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-XSS-Protection", "1; mode=block")
		next.ServeHTTP(w, r)
	})
}

func LimitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// Recover turns a panicking handler into a 500 response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Log(r.Context()).Errorw("panic while serving request",
					"error", rec,
					"stack", string(debug.Stack()),
				)
				WriteErr(w, InternalError())
			}
		}()
		next.ServeHTTP(w, r)
	})
}
