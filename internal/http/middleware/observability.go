package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/metrics"
)

// Observability records request count and latency per route pattern and logs each request.
// A nil set only logs.
func Observability(logger logx.Logger, m *metrics.Set) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			// pattern, not raw path: ids would blow up label cardinality
			path := pathPattern(r)
			tm := time.Since(start)
			code := ww.Status()
			if code == 0 {
				code = http.StatusOK
			}
			status := strconv.Itoa(code)

			if m != nil {
				m.HTTPRequests.WithLabelValues(r.Method, path, status).Inc()
				m.HTTPDuration.WithLabelValues(r.Method, path, status).Observe(tm.Seconds())
			}

			logger.Info("http request",
				logx.String("req_id", chimw.GetReqID(r.Context())),
				logx.String("method", r.Method),
				logx.String("path", path),
				logx.Int("status", code),
				logx.Duration("duration", tm),
			)
		})
	}
}

func pathPattern(r *http.Request) string {
	rc := chi.RouteContext(r.Context())
	if rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
