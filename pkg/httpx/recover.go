package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/slogx"
)

// Recover turns a handler panic into a 500 so one bad request can't take
// the process down.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					if v == http.ErrAbortHandler {
						panic(v)
					}
					slogx.FromContext(r.Context()).Error("panic serving request",
						"panic", v,
						"stack", string(debug.Stack()),
					)
					WriteError(w, NewAPIError(http.StatusInternalServerError, "Internal server error."))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
