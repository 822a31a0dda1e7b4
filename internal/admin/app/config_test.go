package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "admin.db", cfg.DatabaseFile)
	require.Equal(t, "admin", cfg.MongoDatabase)
	require.Equal(t, 168*time.Hour, cfg.TokenTTL)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.False(t, cfg.AllowPlaintextPasswords)
	require.Equal(t, "report_daily_closing", cfg.Collections.ReportDaily)
	require.Empty(t, cfg.AdminRoleList())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "Mongo")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("TOKEN_TTL", "12h")
	t.Setenv("ADMIN_ROLES", "Super Admin, Owner ,")
	t.Setenv("CORS_ORIGINS", "https://panel.example.com")
	t.Setenv("AUTH_ALLOW_PLAINTEXT_PASSWORDS", "true")
	t.Setenv("COLLECTION_VENDORS", "suppliers")

	cfg, err := loadConfig("")
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, DriverMongo, cfg.DatabaseDriver)
	require.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	require.Equal(t, 12*time.Hour, cfg.TokenTTL)
	require.Equal(t, []string{"Super Admin", "Owner"}, cfg.AdminRoleList())
	require.Equal(t, []string{"https://panel.example.com"}, cfg.CORSOriginList())
	require.True(t, cfg.AllowPlaintextPasswords)
	require.Equal(t, "suppliers", cfg.Collections.Vendors)
}

func TestLoadConfigDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_EMAIL=dotenv@example.com\n"), 0o600))
	t.Setenv("ADMIN_EMAIL", "") // restored after the test; godotenv won't override a set var

	require.NoError(t, os.Unsetenv("ADMIN_EMAIL"))
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "dotenv@example.com", cfg.AdminEmail)
}

func TestLoadConfigMissingDotEnvIsFine(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}

func TestLoadConfigRejects(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "postgres")
		_, err := loadConfig("")
		require.ErrorContains(t, err, "DATABASE_DRIVER")
	})

	t.Run("prod without secret", func(t *testing.T) {
		t.Setenv("ENV", "prod")
		t.Setenv("JWT_SECRET", "")
		_, err := loadConfig("")
		require.ErrorContains(t, err, "JWT_SECRET")
	})
}
