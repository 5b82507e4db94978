package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	return cfg
}

func TestBuild_Memory(t *testing.T) {
	app, err := Build(context.Background(), memoryConfig(), slog.Default())
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.Services.Users)
	assert.NotNil(t, app.Services.Payments)
}

func TestCacheEnabled(t *testing.T) {
	cfg := memoryConfig()
	assert.False(t, cacheEnabled(cfg, slog.Default()))

	cfg.Redis.Addr = "localhost:6379"
	assert.False(t, cacheEnabled(cfg, slog.Default()))

	cfg.Storage.Driver = config.StoragePostgres
	assert.True(t, cacheEnabled(cfg, slog.Default()))
}

func TestNewRouter_ServesResourcesAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := memoryConfig()
	app, err := Build(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer app.Close()

	r := NewRouter(cfg.HTTP, app, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/hotels/",
		strings.NewReader(`{"name":"Inn","location":"Oslo","available_rooms":2,"price_per_night":70}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `booking_records_mutations_total{action="created",entity="Hotel"} 1`)
}

func TestNewRouter_SwaggerDocs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, openAPIFile), []byte(`{"openapi":"3.0.3"}`), 0o600))

	cfg := memoryConfig()
	cfg.HTTP.SwaggerDir = dir
	app, err := Build(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer app.Close()
	r := NewRouter(cfg.HTTP, app, slog.Default())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/"+openAPIFile, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, "127.0.0.1:0", http.NotFoundHandler()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
