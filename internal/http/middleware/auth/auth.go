// Package auth resolves the caller identity from an HS256 bearer token.
package auth

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"homecare-scheduler/internal/logx"
)

// Roles known to the scheduler.
const (
	RoleCoordinator = "coordinator"
	RoleAdmin       = "admin"
	RoleViewer      = "viewer"
)

// devSubject is used for every request when no secret is configured.
const devSubject = "dev-coordinator"

type ctxKey struct{}

// Identity is the authenticated caller.
type Identity struct {
	Subject string
	Roles   []string
}

// HasAnyRole reports whether the identity holds one of roles.
func (i Identity) HasAnyRole(roles ...string) bool {
	for _, have := range i.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Claims are the token claims the scheduler reads.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity set by Middleware.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// Middleware validates bearer tokens.
type Middleware struct {
	secret []byte
	issuer string
	logger logx.Logger
}

// New creates a Middleware. An empty secret turns on the development identity:
// every request acts as a coordinator and tokens are not checked.
func New(secret, issuer string, logger logx.Logger) *Middleware {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Middleware{secret: []byte(secret), issuer: issuer, logger: logger}
}

// Handler returns chi-style middleware resolving the identity.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(m.secret) == 0 {
				id := Identity{Subject: devSubject, Roles: []string{RoleCoordinator}}
				next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
				return
			}

			raw, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				deny(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			id, err := m.parse(raw)
			if err != nil {
				m.logger.Warn("token rejected",
					logx.String("event", "auth_rejected"),
					logx.String("path", r.URL.Path),
					logx.Any("err", err),
				)
				deny(w, http.StatusUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func (m *Middleware) parse(raw string) (Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return Identity{}, err
	}
	if claims.Subject == "" {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}
	return Identity{Subject: claims.Subject, Roles: claims.Roles}, nil
}

// RequireRole rejects callers holding none of roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := FromContext(r.Context())
			if !ok {
				deny(w, http.StatusUnauthorized, "unauthenticated")
				return
			}
			if !id.HasAnyRole(roles...) {
				deny(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearer(h string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"error":"`+msg+`"}`)
}
