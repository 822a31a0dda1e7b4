package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/service"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store/drivers/sqlite"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/cryptox"
)

func setup(t *testing.T, password string) (*commandLine, *bytes.Buffer) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	orig := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { readPasswordFunc = orig })

	reg := store.NewRegistry(st, store.DefaultCollectionNames().Names())
	out := &bytes.Buffer{}
	return &commandLine{
		registry:   reg,
		users:      "users",
		dashboards: &service.DashboardService{Dashboards: reg.Dashboards()},
		out:        out,
	}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func Test_commandLine_usage(t *testing.T) {
	cli, _ := setup(t, "pw")
	tests := []cliTest{
		{name: "no command", args: nil, wantErr: errHelp},
		{name: "unknown command", args: []string{"frobnicate"}, wantErr: errHelp},
		{name: "adduser without email", args: []string{"adduser"}, wantErr: errHelp},
		{name: "seed without file", args: []string{"seed-dashboard"}, wantErr: errHelp},
		{name: "secret too short", args: []string{"secret", "-bytes", "4"}, wantErrStr: "at least 16 bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(append([]string{"adminctl"}, tt.args...))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantErrStr != "" {
				require.ErrorContains(t, err, tt.wantErrStr)
			}
		})
	}
}

func Test_commandLine_adduser(t *testing.T) {
	cli, out := setup(t, "first-pass")
	ctx := context.Background()

	require.NoError(t, cli.run([]string{"adminctl", "adduser", "-email", " Sana@Example.com ", "-name", "Sana", "-role", "Manager"}))
	require.Contains(t, out.String(), "created user sana@example.com")

	users, err := cli.registry.Accessor("users")
	require.NoError(t, err)
	rec, err := users.FindOne(ctx, "email", "sana@example.com")
	require.NoError(t, err)
	require.Equal(t, "Manager", rec["role"])
	require.NoError(t, cryptox.VerifyPassword("first-pass", rec.String("passwordHash")))

	// Running again updates in place.
	readPasswordFunc = func(int) ([]byte, error) { return []byte("second-pass"), nil }
	require.NoError(t, cli.run([]string{"adminctl", "adduser", "-email", "sana@example.com", "-bcrypt"}))
	require.Contains(t, out.String(), "updated user sana@example.com")

	list, err := users.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, strings.HasPrefix(list[0].String("passwordHash"), "$2"))
	require.NoError(t, cryptox.VerifyPassword("second-pass", list[0].String("passwordHash")))
	require.Equal(t, "Sana", list[0]["name"])
}

func Test_commandLine_adduserGenerate(t *testing.T) {
	cli, out := setup(t, "")
	readPasswordFunc = func(int) ([]byte, error) { return nil, errors.New("no terminal") }

	require.NoError(t, cli.run([]string{"adminctl", "adduser", "-email", "ops@example.com", "-generate"}))

	var pwd string
	for _, line := range strings.Split(out.String(), "\n") {
		if p, ok := strings.CutPrefix(line, "generated password: "); ok {
			pwd = p
		}
	}
	require.Len(t, pwd, 12)

	users, err := cli.registry.Accessor("users")
	require.NoError(t, err)
	rec, err := users.FindOne(context.Background(), "email", "ops@example.com")
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword(pwd, rec.String("passwordHash")))
}

func Test_commandLine_hashPasswordAndSecret(t *testing.T) {
	cli, out := setup(t, "hash-me")

	require.NoError(t, cli.run([]string{"adminctl", "hash-password"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	hash := lines[len(lines)-1]
	require.NoError(t, cryptox.VerifyPassword("hash-me", hash))

	out.Reset()
	require.NoError(t, cli.run([]string{"adminctl", "secret"}))
	require.GreaterOrEqual(t, len(strings.TrimSpace(out.String())), 43)
}

func Test_commandLine_seedDashboard(t *testing.T) {
	cli, _ := setup(t, "")

	path := filepath.Join(t.TempDir(), "dashboard.json")
	doc := `{"kpis":[{"label":"Active plans","value":42}],"profile":{"name":"Ops","role":"Admin"},"notifications":3}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	require.NoError(t, cli.run([]string{"adminctl", "seed-dashboard", "-file", path}))

	d := cli.dashboards.Get(context.Background())
	require.Len(t, d.KPIs, 1)
	require.Equal(t, "Ops", d.Profile.Name)
	require.NotNil(t, d.Funnel)
}
