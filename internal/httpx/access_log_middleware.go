package httpx

import (
	"log"
	"net/http"
	"time"
)

// statusRecorder remembers the status and body size a handler produced.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int64
	started bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.started {
		return
	}
	sr.status = code
	sr.started = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.started {
		sr.WriteHeader(http.StatusOK)
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.written += int64(n)
	return n, err
}

// AccessLogMiddleware logs one line per request. Listing queries are logged
// with their raw query string so search terms show up next to the status.
func AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Printf("access method=%s path=%s query=%q status=%d bytes=%d duration_ms=%d request_id=%s",
			r.Method, r.URL.Path, r.URL.RawQuery, rec.status, rec.written,
			time.Since(start).Milliseconds(), RequestIDFrom(r))
	})
}
