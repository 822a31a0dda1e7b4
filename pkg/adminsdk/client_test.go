package adminsdk_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	adminhttp "github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/http"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/service"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store/drivers/sqlite"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/adminsdk"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/cryptox"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/jwtx"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/metrics"
)

const (
	adminEmail    = "root@example.com"
	adminPassword = "root-pass"
)

// newServer runs the full API over an in-memory sqlite store.
func newServer(t *testing.T) (*httptest.Server, *store.Registry) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	names := store.DefaultCollectionNames()
	reg := store.NewRegistry(st, names.Names())
	m := metrics.New()
	secret := []byte("sdk-test-secret")

	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	users, err := reg.Accessor(names.Users)
	require.NoError(t, err)

	r := adminhttp.NewRouter(jwtx.NewVerifierHS256(secret, "admin-api"), "test", reg, names, m, nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.AuthService = &service.AuthService{
		Users:   users,
		Signer:  signer,
		Issuer:  "admin-api",
		Admin:   service.FallbackAdmin{Email: adminEmail, Password: adminPassword},
		Metrics: m,
	}
	r.RecordService = &service.RecordService{Registry: reg, Metrics: m}
	r.DashboardService = &service.DashboardService{Dashboards: reg.Dashboards()}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, reg
}

func TestHealth(t *testing.T) {
	srv, _ := newServer(t)
	client := adminsdk.NewSDKClient(srv.URL + "/")

	status, err := client.Health(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", status.Status)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "test", live.Version)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestLoginFailures(t *testing.T) {
	srv, _ := newServer(t)
	client := adminsdk.NewSDKClient(srv.URL)

	_, err := client.Login(t.Context(), adminEmail, "nope")
	require.True(t, adminsdk.IsUnauthorized(err))

	_, err = client.Login(t.Context(), "", "")
	var apiErr *adminsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Email and password required.", apiErr.Message)
}

func TestSessionLifecycle(t *testing.T) {
	srv, _ := newServer(t)
	client := adminsdk.NewSDKClient(srv.URL)
	ctx := t.Context()

	sess, err := client.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	require.Equal(t, "Super Admin", sess.User().Role)

	me, err := sess.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, adminEmail, me.Email)

	dash, err := sess.Dashboard(ctx)
	require.NoError(t, err)
	require.NotNil(t, dash.Revenue)

	created, err := sess.Create(ctx, "reports/summary", map[string]any{"period": "2024-05", "total": 10})
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(created, &rec))
	id := rec["_id"].(string)

	updated, err := sess.Update(ctx, "reports/summary", id, map[string]any{"total": 12})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(updated, &rec))
	require.EqualValues(t, 12, rec["total"])

	list, err := sess.List(ctx, "reports/summary", 5)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, sess.Delete(ctx, "reports/summary", id))
	require.True(t, adminsdk.IsNotFound(sess.Delete(ctx, "reports/summary", id)))

	sess.Logout()
	require.False(t, sess.LoggedIn())
	_, err = sess.List(ctx, "vendors", 0)
	require.ErrorIs(t, err, adminsdk.ErrNotLoggedIn)
}

func TestHashedUserLogin(t *testing.T) {
	srv, reg := newServer(t)
	ctx := context.Background()

	hash, err := cryptox.HashPassword("argon-pass")
	require.NoError(t, err)
	users, err := reg.Accessor("users")
	require.NoError(t, err)
	_, err = users.Insert(ctx, map[string]any{
		"name":         "Hina",
		"email":        "hina@example.com",
		"role":         "Manager",
		"passwordHash": hash,
	})
	require.NoError(t, err)

	sess, err := adminsdk.NewSDKClient(srv.URL).Login(ctx, "HINA@example.com", "argon-pass")
	require.NoError(t, err)
	require.Equal(t, adminsdk.User{Name: "Hina", Email: "hina@example.com", Role: "Manager"}, sess.User())
}

func TestExpiredTokenIsUnauthorized(t *testing.T) {
	srv, _ := newServer(t)
	client := adminsdk.NewSDKClient(srv.URL)

	sess := client.NewSession("eyJhbGciOiJIUzI1NiJ9.e30.invalid", adminsdk.User{})
	_, err := sess.Dashboard(t.Context())
	require.True(t, adminsdk.IsUnauthorized(err))
}

func TestSessionConcurrentUse(t *testing.T) {
	srv, _ := newServer(t)
	sess, err := adminsdk.NewSDKClient(srv.URL).Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sess.List(context.Background(), "vendors", 0)
			_ = sess.Token()
		}()
	}
	sess.Logout()
	wg.Wait()
	require.Empty(t, sess.Token())
}

func TestListEnvelopes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/vendors":
			_, _ = io.WriteString(w, `{"items":[{"name":"Acme"}],"total":1}`)
		case "/api/customers":
			_, _ = io.WriteString(w, `{"data":[{"name":"Ali"},{"name":"Sara"}]}`)
		case "/api/roles":
			_, _ = io.WriteString(w, `{"items":null,"data":[{"name":"Owner"}]}`)
		case "/api/employees":
			_, _ = io.WriteString(w, `{"items":"nope"}`)
		default:
			_, _ = io.WriteString(w, `null`)
		}
	}))
	t.Cleanup(srv.Close)

	sess := adminsdk.NewSDKClient(srv.URL).NewSession("token", adminsdk.User{})
	ctx := t.Context()

	tests := []struct {
		endpoint string
		want     int
	}{
		{"vendors", 1},
		{"customers", 2},
		{"roles", 1},
		{"employees", 0},
		{"attendance", 0},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			rows, err := sess.List(ctx, tt.endpoint, 0)
			require.NoError(t, err)
			require.NotNil(t, rows)
			require.Len(t, rows, tt.want)
		})
	}
}
