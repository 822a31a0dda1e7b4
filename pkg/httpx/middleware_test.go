package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/httpx"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler, mark("outer"), nil, mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	secret := []byte("s3cret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(secret, "")

	var seen jwtx.Claims
	h := httpx.AuthnMiddleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = httpx.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing header", func(t *testing.T) {
		rec := serve("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec := serve("Basic abc")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := serve("Bearer nope")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		tok, err := signer.Sign(jwtx.NewClaims("u1", "", "", "", time.Minute, "", time.Now().Add(-time.Hour)))
		require.NoError(t, err)
		rec := serve("Bearer " + tok)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
	})

	t.Run("valid token", func(t *testing.T) {
		tok, err := signer.Sign(jwtx.NewClaims("u1", "Sana", "sana@example.com", "Manager", time.Minute, "", time.Now()))
		require.NoError(t, err)
		rec := serve("Bearer " + tok)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "u1", seen.Identity())
		require.Equal(t, "Manager", seen.Role)
	})
}

func TestRequireRole(t *testing.T) {
	withRole := func(role string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
		ctx := httpx.ContextWithClaims(context.Background(), jwtx.Claims{Role: role})
		return req.WithContext(ctx)
	}

	t.Run("no roles configured is a no-op", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.RequireRole()(okHandler).ServeHTTP(rec, withRole("Clerk"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("matching role case-insensitive", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.RequireRole("Super Admin")(okHandler).ServeHTTP(rec, withRole("super admin"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.RequireRole("Super Admin")(okHandler).ServeHTTP(rec, withRole("Clerk"))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())
	})
}

func TestRecover(t *testing.T) {
	h := httpx.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Internal server error."}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, httpx.NewAPIError(http.StatusNotFound, "Record not found."))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"error":"Record not found."}`, rec.Body.String())
}

func TestWriteJSONKeepsHTMLCharacters(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusOK, []map[string]string{{"name": "R&D Supplies <Ltd>"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[{\"name\":\"R&D Supplies <Ltd>\"}]\n", rec.Body.String())
}

func TestCORS(t *testing.T) {
	h := httpx.CORS([]string{"http://localhost:5173"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/vendors", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
