package panel_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	adminhttp "github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/http"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/service"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store/drivers/sqlite"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/adminsdk"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/jwtx"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/metrics"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/panel"
)

func newAPI(t *testing.T) *adminsdk.SDKClient {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	names := store.DefaultCollectionNames()
	reg := store.NewRegistry(st, names.Names())
	m := metrics.New()
	secret := []byte("panel-test-secret")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	users, err := reg.Accessor(names.Users)
	require.NoError(t, err)

	r := adminhttp.NewRouter(jwtx.NewVerifierHS256(secret, "admin-api"), "test", reg, names, m, nil, logger)
	r.AuthService = &service.AuthService{
		Users:  users,
		Signer: signer,
		Issuer: "admin-api",
		Admin:  service.FallbackAdmin{Email: "admin@example.com", Password: "secret", Name: "Ops"},
	}
	r.RecordService = &service.RecordService{Registry: reg}
	r.DashboardService = &service.DashboardService{Dashboards: reg.Dashboards()}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return adminsdk.NewSDKClient(srv.URL)
}

func TestPanelAgainstAPI(t *testing.T) {
	ctx := t.Context()
	api := newAPI(t)

	sess, err := api.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	p := panel.New(panel.DefaultRegistry(), sess, nil)
	name, role := p.Identity(adminsdk.Profile{})
	require.Equal(t, "Ops", name)
	require.Equal(t, "Super Admin", role)

	d := p.Dashboard(ctx)
	require.Empty(t, d.KPIs)
	require.Empty(t, panel.Notifications(d.Notifications))

	require.NoError(t, p.Select("vendors"))
	st, err := p.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, st.Records)

	form, err := p.OpenForm(panel.ModeCreate, nil)
	require.NoError(t, err)
	require.NoError(t, form.Set("name", "Acme"))
	require.NoError(t, form.Set("balance", 1200))
	require.NoError(t, p.Submit(ctx, form))

	st, err = p.Load(ctx)
	require.NoError(t, err)
	require.Len(t, st.Records, 1)
	row := st.Records[0]
	require.Equal(t, "Acme", panel.Primary(panel.ListConfig{Title: "name"}, row))
	require.NotEmpty(t, panel.RecordID(row))

	edit, err := p.OpenForm(panel.ModeEdit, row)
	require.NoError(t, err)
	require.NoError(t, edit.Set("status", "Inactive"))
	require.NoError(t, p.Submit(ctx, edit))

	st, err = p.Load(ctx)
	require.NoError(t, err)
	require.Len(t, st.Records, 1)
	require.Len(t, p.Rows("inactive"), 1)

	require.NoError(t, p.Delete(ctx, st.Records[0]))
	st, err = p.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, st.Records)
}

func TestPanelForcedLogoutOnBadToken(t *testing.T) {
	api := newAPI(t)
	sess := api.NewSession("eyJhbGciOiJIUzI1NiJ9.e30.invalid", adminsdk.User{Name: "Ghost"})

	p := panel.New(panel.DefaultRegistry(), sess, nil)
	require.NoError(t, p.Select("customers"))

	_, err := p.Load(t.Context())
	require.True(t, adminsdk.IsUnauthorized(err))
	require.False(t, sess.LoggedIn())
	require.Equal(t, panel.DashboardKey, p.Active())

	require.NoError(t, p.Select("customers"))
	_, err = p.Load(t.Context())
	require.ErrorIs(t, err, panel.ErrLoginRequired)
}
