package middleware

import (
	"net/http"
	"time"

	"github.com/laplogger/internal/logger"
)

// RequestLog логирует каждый HTTP-запрос: method, path, статус, X-Request-Id клиента и время выполнения.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			logger.Debugf("http %s %s status=%d request_id=%s", r.Method, r.URL.Path, sw.status, r.Header.Get("X-Request-Id"))
			logger.LogDuration("http "+r.Method+" "+r.URL.Path, start)
		}()
		next.ServeHTTP(sw, r)
	})
}
