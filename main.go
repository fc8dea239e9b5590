package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm/internal/config"
	"github.com/umalmyha/crm/internal/infra"
)

// @title                      CRM API
// @version                    1.0
// @description                Customers, interactions and follow-ups of the sales pipeline
// @BasePath                   /
// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := run(cfg); err != nil {
		logrus.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	o, err := infra.NewObservability(ctx, cfg.TelemetryCfg, cfg.LogCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := o.Shutdown(context.Background()); err != nil {
			logrus.WithError(err).Error("failed to flush traces")
		}
	}()

	pgPool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
	if err != nil {
		return err
	}
	defer pgPool.Close()

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	ds := infra.Datastores{Postgres: pgPool, Redis: redisClient}

	if cfg.StorageCfg.Driver == config.StorageDriverMongo {
		mongoClient, err := infra.Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logrus.WithError(err).Error("failed to disconnect from mongo")
			}
		}()
		ds.Mongo = mongoClient
	}

	e, err := infra.Router(cfg, ds, o)
	if err != nil {
		return err
	}

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logrus.Infof("starting server on port %d with %s storage", cfg.HTTPCfg.Port, cfg.StorageCfg.Driver)
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.HTTPCfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to stop server gracefully - %w", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutting down the server, unexpected error occurred - %w", err)
		}
	}
	return nil
}
