package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/nim-client/internal/adapter"
	"github.com/MKhiriev/nim-client/internal/client"
	"github.com/MKhiriev/nim-client/internal/config"
	"github.com/MKhiriev/nim-client/internal/logger"
	"github.com/MKhiriev/nim-client/internal/service"
	"github.com/MKhiriev/nim-client/internal/sink"
	"github.com/MKhiriev/nim-client/internal/validators"
	"github.com/MKhiriev/nim-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "nim-client"

func main() {
	log := logger.NewClientLogger(role, "")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewClientLogger(role, cfg.App.LogLevel)
	log.Debug().Object("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).Msg("starting client")

	jsonClient, err := adapter.NewHTTPJSONClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http client")
	}

	services, err := service.NewClientServices(
		adapter.NewNimAPI(jsonClient),
		sink.NewJSONDisplay(os.Stdout, log),
		sink.NewLogErrorSink(log),
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(services, validators.NewCommandValidator(), cfg.Commands, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
