package main

import (
	"github.com/ATenderholt/rainbow-gcs/internal/settings"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInjectApp(t *testing.T) {
	cfg := settings.DefaultConfig()
	cfg.Port = 9191

	app, err := InjectApp(cfg)
	if err != nil {
		t.Fatalf("Unable to inject app: %v", err)
	}

	assert.Equal(t, ":9191", app.server.Addr)

	response := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, response.Code)
}
