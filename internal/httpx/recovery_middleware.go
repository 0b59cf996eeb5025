package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns a handler panic into a 500 envelope so the
// process keeps serving.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				requestID := RequestIDFrom(r)
				log.Printf("panic recovered: request_id=%s error=%v stack=%s", requestID, err, string(debug.Stack()))

				var wroteHeader bool
				if rec, ok := w.(*statusRecorder); ok {
					wroteHeader = rec.started
				}

				if !wroteHeader {
					JSONError(w, http.StatusInternalServerError, "An internal error occurred", nil)
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
