package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/get2b/Get2B-NotificationService/pkg/logger"
)

// RequestLog пишет строку лога на каждый запрос с полем request_id.
// Подключается после RequestID
func RequestLog(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			l := log
			if id := RequestIDFrom(r.Context()); id != "" {
				l = log.With("request_id", id)
			}

			switch {
			case rec.status >= http.StatusInternalServerError:
				l.Error("%s %s %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
			case rec.status >= http.StatusBadRequest:
				l.Warn("%s %s %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
			default:
				l.Debug("%s %s %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
			}
		})
	}
}
