package middleware

import (
	"net/http"
	"time"
)

// statusRecorder запоминает код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// Logging пишет строку лога на каждый запрос и перехватывает панику обработчика
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			defer func() {
				if p := recover(); p != nil {
					logger.Error("%s %s - panic: %v request_id=%s", r.Method, r.URL.Path, p, GetRequestID(r.Context()))
					rec.WriteHeader(http.StatusInternalServerError)
				}

				latency := time.Since(start)
				switch {
				case rec.status >= http.StatusInternalServerError:
					logger.Error("%s %s status=%d latency=%s request_id=%s",
						r.Method, r.URL.Path, rec.status, latency, GetRequestID(r.Context()))
				case rec.status >= http.StatusBadRequest:
					logger.Warn("%s %s status=%d latency=%s request_id=%s",
						r.Method, r.URL.Path, rec.status, latency, GetRequestID(r.Context()))
				default:
					logger.Info("%s %s status=%d latency=%s request_id=%s",
						r.Method, r.URL.Path, rec.status, latency, GetRequestID(r.Context()))
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
