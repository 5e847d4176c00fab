package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wellness-wizard/internal/app/bootstrap"
	"wellness-wizard/internal/app/config"
	"wellness-wizard/internal/app/delivery/http/controllers"
	"wellness-wizard/internal/app/delivery/http/middlewares"
	"wellness-wizard/internal/app/delivery/http/routers"
	"wellness-wizard/internal/app/drivers/logger"
	"wellness-wizard/internal/app/services/core/wizard"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	app := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	bootstrap.Connect(connectCtx, app)
	cancelConnect()

	if err := bootstrapingTheApp(app); err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + internalConfig.App.Port,
		Handler: app.Router,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("address", internalConfig.App.Address),
			zap.String("port", internalConfig.App.Port),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = app.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(app *config.Bootstrap) error {
	services, err := bootstrap.NewServices(app)
	if err != nil {
		return err
	}

	// Wizard sessions
	wizardConfig := app.InternalConfig.Wizard
	registry := wizard.NewRegistry(
		app.Logger,
		services.Dependencies,
		time.Duration(wizardConfig.SessionIdleTimeoutInMinutes)*time.Minute,
		wizardConfig.MaxSessions,
	)
	registry.Start(time.Duration(wizardConfig.SweepIntervalInSeconds) * time.Second)
	app.RegistryStop = registry.Stop

	// Middlewares
	middlewares := middlewares.NewMiddlewares(app.Logger, app.InternalConfig)

	wizardController := controllers.NewWizardController(
		app.Logger,
		registry,
		services.Constraints,
		time.Duration(app.InternalConfig.Portal.RequestTimeoutInSeconds)*time.Second,
	)

	routers.SetupRoutes(app.Router, app.InternalConfig, middlewares, wizardController)
	return nil
}
