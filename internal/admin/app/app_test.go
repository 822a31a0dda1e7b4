package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, driver string) Config {
	t.Helper()
	cfg, err := loadConfig("")
	require.NoError(t, err)
	cfg.DatabaseDriver = driver
	cfg.DatabaseFile = ":memory:"
	cfg.MongoURI = ""
	cfg.LogLevel = "error"
	return cfg
}

func TestNewSQLiteInMemory(t *testing.T) {
	a, err := New(testConfig(t, DriverSQLite))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.db.Close() })

	require.True(t, a.db.Ready())

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewWithoutDatabase(t *testing.T) {
	for _, cfg := range []Config{
		testConfig(t, DriverNone),
		testConfig(t, DriverMongo), // no MONGODB_URI
	} {
		a, err := New(cfg)
		require.NoError(t, err)
		require.False(t, a.db.Ready())

		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		rec = httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
