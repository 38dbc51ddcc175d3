package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/k4rimDev/catalog-api/config"
	"github.com/k4rimDev/catalog-api/internal/migrations"
	"github.com/k4rimDev/catalog-api/internal/server"
	"github.com/k4rimDev/catalog-api/internal/service"
	"github.com/k4rimDev/catalog-api/internal/store"
	"github.com/k4rimDev/catalog-api/pkg/database"
	"github.com/k4rimDev/catalog-api/pkg/logger"
	"github.com/k4rimDev/catalog-api/pkg/slug"
)

// Run is used to start the application.
func Run(cfg *config.Config, logger *logger.Logger) {
	db, err := database.NewPostgreSQL(database.PostgreSQLOptions{
		User:     cfg.PostgreSQL.User,
		Password: cfg.PostgreSQL.Password,
		Database: cfg.PostgreSQL.Database,
		Host:     cfg.PostgreSQL.Host,
		Port:     cfg.PostgreSQL.Port,
		SSLMode:  cfg.PostgreSQL.SSLMode,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create postgresql connection")
	}
	defer func() {
		err := db.Close()
		if err != nil {
			logger.Error().Err(err).Msg("close postgresql connection")
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = db.Ping(pingCtx)
	if err != nil {
		logger.Fatal().Err(err).Msg("ping postgresql")
	}

	err = migrations.MigrateDB(logger, db.DB, cfg.PostgreSQL.Database, migrations.Migrations)
	if err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	slugConfig := slug.Config{
		SourceField:   "title",
		SymbolMapping: slug.DefaultSymbolMapping,
	}
	warnings, err := slugConfig.Validate()
	if err != nil {
		logger.Fatal().Err(err).Msg("validate slug config")
	}
	for _, warning := range warnings {
		logger.Warn().Str("warning", warning).Msg("slug config")
	}

	stores := service.Stores{
		Category: store.NewCategory(db),
		Product:  store.NewProduct(db),
	}

	services := service.Services{
		Category: service.NewCategory(logger, stores.Category, slugConfig),
		Product:  service.NewProduct(logger, stores.Product, slugConfig),
	}

	srv, err := server.New(logger, services)
	if err != nil {
		logger.Fatal().Err(err).Msg("create http server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Server.Address)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("http server stopped")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")

		err := srv.Stop()
		if err != nil {
			logger.Error().Err(err).Msg("stop http server")
		}
	}
}
