package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/tournament-ops/internal/config"
	"github.com/riskibarqy/tournament-ops/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver, dbURL string) config.Config {
	return config.Config{
		AppEnv:         config.EnvDev,
		ServiceName:    "tournament-ops-api",
		HTTPAddr:       ":0",
		DBDriver:       driver,
		DBURL:          dbURL,
		DBMaxOpenConns: 4,
		DBMaxIdleConns: 2,
		DBAutoMigrate:  true,
		CacheEnabled:   true,
		CacheTTL:       time.Second,
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
	}
}

func serve(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestNewHTTPServer_MemoryStore(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(testConfig(config.DBDriverMemory, ""), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cleanup(context.Background())) })

	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, http.StatusOK, serve(t, srv.Handler, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, srv.Handler, http.MethodGet, "/v1/teams/standings", "").Code)
}

func TestNewHTTPServer_SQLiteAutoMigrate(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(testConfig(config.DBDriverSQLite, "file::memory:?_foreign_keys=on"), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cleanup(context.Background())) })

	assert.Equal(t, http.StatusOK, serve(t, srv.Handler, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, srv.Handler, http.MethodGet, "/v1/schedules", "").Code)

	rec := serve(t, srv.Handler, http.MethodPost, "/v1/bracket-teams", `{"bracket_id":1,"team_id":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig(config.DBDriverMemory, "")
	cfg.HTTPAddr = ""

	_, _, err := NewHTTPServer(cfg, nil)
	require.Error(t, err)
}

func TestNewHTTPServer_AuthRequiresSecret(t *testing.T) {
	cfg := testConfig(config.DBDriverMemory, "")
	cfg.AuthEnabled = true

	_, _, err := NewHTTPServer(cfg, nil)
	require.Error(t, err)
}

func TestNewHTTPServer_AuthGuardsMutations(t *testing.T) {
	cfg := testConfig(config.DBDriverMemory, "")
	cfg.AuthEnabled = true
	cfg.AuthJWTSecret = "test-secret"

	srv, cleanup, err := NewHTTPServer(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cleanup(context.Background())) })

	rec := serve(t, srv.Handler, http.MethodPost, "/v1/bracket-teams", `{"bracket_id":1,"team_id":1}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusOK, serve(t, srv.Handler, http.MethodGet, "/v1/schedules", "").Code)
}
