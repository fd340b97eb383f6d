package main

import (
	"context"
	"errors"
	"github.com/ATenderholt/rainbow-gcs/internal/settings"
	"github.com/go-chi/chi/v5"
	"net/http"
	"time"
)

type App struct {
	cfg    *settings.Config
	server *http.Server
}

func NewApp(cfg *settings.Config, mux *chi.Mux) App {
	return App{
		cfg: cfg,
		server: &http.Server{
			Addr:    cfg.Address(),
			Handler: mux,
		},
	}
}

func (app App) Start() (err error) {
	logger.Infof("Serving %s on %s", app.cfg.FunctionName, app.server.Addr)

	go func() {
		err := app.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("HTTP server stopped: %v", err)
		}
	}()

	return nil
}

func (app App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return app.server.Shutdown(ctx)
}
