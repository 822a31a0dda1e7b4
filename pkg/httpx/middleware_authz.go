package httpx

import (
	"net/http"
	"slices"
	"strings"
)

// RequireRole lets the request through only when the token's role claim is
// one of roles (case-insensitive). With no roles it is a no-op, which is
// the default deployment.
func RequireRole(roles ...string) Middleware {
	allowed := make([]string, 0, len(roles))
	for _, r := range roles {
		if r = strings.ToLower(strings.TrimSpace(r)); r != "" {
			allowed = append(allowed, r)
		}
	}

	return func(next http.Handler) http.Handler {
		if len(allowed) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := strings.ToLower(roleFromCtx(r.Context()))
			if !slices.Contains(allowed, role) {
				WriteError(w, NewAPIError(http.StatusForbidden, "Forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
