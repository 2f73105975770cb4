package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/metrika-dev/metrika/db"
	"github.com/metrika-dev/metrika/internal/auth"
	"github.com/metrika-dev/metrika/internal/config"
	"github.com/metrika-dev/metrika/internal/handlers"
	"github.com/metrika-dev/metrika/internal/importer"
	"github.com/metrika-dev/metrika/internal/router"
	"github.com/metrika-dev/metrika/internal/store"
	"go.uber.org/zap"
)

func main() {
	// .env is optional outside development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := auth.Init(cfg.JWTSecret, cfg.JWTTTL); err != nil {
		logger.Fatal("failed to initialize token signing", zap.Error(err))
	}

	// The process must not serve traffic without a working store.
	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	users := auth.NewGormUserStore(db.DB)

	if err := auth.EnsureAdminUser(db.DB, cfg.AdminUsername, cfg.AdminPassword, logger); err != nil {
		logger.Fatal("failed to seed admin user", zap.Error(err))
	}

	imp := importer.New(db.DB, logger)

	// First-boot convenience: populate an empty store from the spreadsheet
	// if one is present. Idempotent, and a missing file is not an error.
	if _, err := imp.AutoImport(cfg.ImportFile); err != nil {
		logger.Warn("startup import failed", zap.Error(err))
	}

	indicatorStore := store.NewIndicatorStore(db.DB, logger)

	r := router.NewRouter(router.Deps{
		Config:     cfg,
		Users:      users,
		Indicators: handlers.NewIndicatorHandler(indicatorStore, logger),
		Auth:       handlers.NewAuthHandler(users, logger),
		Import:     handlers.NewImportHandler(imp, cfg.ImportFile, logger),
		Logger:     logger,
	})

	logger.Info("starting server", zap.String("port", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
