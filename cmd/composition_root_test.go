package cmd

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"oms/internal/pkg/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_InMemory(t *testing.T) {
	config, err := LoadConfig(envOf(map[string]string{"JWT_SECRET_KEY": "s", "STORE_DRIVER": "memory"}))
	require.NoError(t, err)

	app, err := NewCompositionRoot(config, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), telemetry.NewMetrics())
	require.NoError(t, err)

	router, err := app.CreateRouter()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	manager := app.CreateJobManager()
	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestCompositionRoot_RequiresSecret(t *testing.T) {
	_, err := NewCompositionRoot(Config{}, nil, slog.Default(), telemetry.NewMetrics())

	require.Error(t, err)
}
