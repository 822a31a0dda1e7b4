package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/jwtx"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/slogx"
)

// Messages returned by AuthnMiddleware. Clients treat any 401 as a forced
// logout, the text is only informational.
const (
	MsgUnauthorized = "Unauthorized"
	MsgInvalidToken = "Invalid token"
)

// AuthnMiddleware requires a valid bearer token and attaches its claims to
// the request context. It never touches storage.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token", MsgUnauthorized)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
			if raw == "" {
				writeBearerError(w, "missing bearer token", MsgUnauthorized)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				desc := "token verification failed"
				if errors.Is(err, jwtx.ErrExpired) {
					desc = "token expired"
				}
				log.Debug("jwt verify failed", "err", err)
				writeBearerError(w, desc, MsgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, claims)))
		})
	}
}

// RFC 6750 style challenge with the API's {"error": ...} body.
func writeBearerError(w http.ResponseWriter, desc, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, NewAPIError(http.StatusUnauthorized, msg))
}
