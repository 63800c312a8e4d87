// Package pprofserver exposes runtime profiles on a separate listener.
package pprofserver

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"homecare-scheduler/internal/logx"
)

// Config stores pprof server settings.
type Config struct {
	User string
	Pass string
}

// Handler serves /debug/pprof/*. Loopback clients pass freely; everybody else
// needs basic auth credentials, and none are accepted while they are unset.
func Handler(cfg Config, logger logx.Logger) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	r := chi.NewRouter()
	r.Use(guard(cfg, logger))
	r.Mount("/debug", middleware.Profiler())
	return r
}

func guard(cfg Config, logger logx.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isLoopback(r.RemoteAddr) || credentialsMatch(r, cfg) {
				next.ServeHTTP(w, r)
				return
			}
			logger.Warn("profiling access denied",
				logx.String("event", "pprof_denied"),
				logx.String("remote", r.RemoteAddr),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("WWW-Authenticate", `Basic realm="pprof"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})
	}
}

func credentialsMatch(r *http.Request, cfg Config) bool {
	if cfg.User == "" || cfg.Pass == "" {
		return false
	}
	u, p, ok := r.BasicAuth()
	return ok && secureEq(u, cfg.User) && secureEq(p, cfg.Pass)
}

func secureEq(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
