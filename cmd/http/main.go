package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"registro-service/internal/app/config"
	"registro-service/internal/app/delivery/http/middlewares"
	"registro-service/internal/app/delivery/http/routers"
	"registro-service/internal/app/drivers/database"
	"registro-service/internal/app/drivers/logger"
	"registro-service/internal/app/services/registry"
	sharedredis "registro-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	registryFhirClient := registry.NewRegistryFhirClient(bootstrap.InternalConfig.Registry.BaseUrl, bootstrap.Logger)
	registryUsecase := registry.NewRegistrySearchUsecase(registryFhirClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	registryController := registry.NewRegistryController(bootstrap.Logger, registryUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, registryController)
}
