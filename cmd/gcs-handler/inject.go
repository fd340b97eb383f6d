//go:build wireinject
// +build wireinject

package main

import (
	"github.com/ATenderholt/rainbow-gcs/internal/http"
	"github.com/ATenderholt/rainbow-gcs/internal/logging"
	"github.com/ATenderholt/rainbow-gcs/internal/service"
	"github.com/ATenderholt/rainbow-gcs/internal/settings"
	"github.com/google/wire"
)

var api = wire.NewSet(
	http.NewChiMux,
	http.NewEventHandler,
	wire.Bind(new(http.Processor), new(*service.EventProcessor)),
)

var processing = wire.NewSet(
	service.NewEventProcessor,
	logging.NewStdoutSink,
	wire.Bind(new(service.RecordSink), new(*logging.RecordSink)),
)

func InjectApp(cfg *settings.Config) (App, error) {
	wire.Build(
		NewApp,
		api,
		processing,
	)
	return App{}, nil
}
