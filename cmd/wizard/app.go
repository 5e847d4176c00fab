package main

import (
	"context"
	"time"
	"wellness-wizard/internal/app/bootstrap"
	"wellness-wizard/internal/app/config"
	"wellness-wizard/internal/app/drivers/logger"
)

type cliApp struct {
	bootstrap *config.Bootstrap
	services  *bootstrap.Services
}

// newCLIApp connects the same drivers as the HTTP server. Outside production
// the logger writes to files so the forms keep the terminal.
func newCLIApp(ctx context.Context) (*cliApp, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if internalConfig.App.Env != "production" {
		internalConfig.App.Env = "cli"
	}

	app := &config.Bootstrap{
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	bootstrap.Connect(connectCtx, app)

	services, err := bootstrap.NewServices(app)
	if err != nil {
		app.Shutdown(ctx)
		return nil, err
	}
	return &cliApp{bootstrap: app, services: services}, nil
}

func (a *cliApp) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.bootstrap.Shutdown(ctx)
}
