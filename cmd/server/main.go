package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/NedohAR/marketplace-platform/config"
	"github.com/NedohAR/marketplace-platform/internal/listing"
	deliveryHTTP "github.com/NedohAR/marketplace-platform/internal/messaging/delivery/http"
	"github.com/NedohAR/marketplace-platform/internal/messaging/repository"
	"github.com/NedohAR/marketplace-platform/internal/messaging/usecase"
	"github.com/NedohAR/marketplace-platform/internal/user"
	"github.com/NedohAR/marketplace-platform/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.PingContext(ctx); err != nil {
		appLogger.Errorf("failed to ping database: %v", err)
		os.Exit(1)
	}
	if err := repository.Migrate(ctx, db); err != nil {
		appLogger.Errorf("failed to migrate messaging schema: %v", err)
		os.Exit(1)
	}
	if err := user.Migrate(ctx, db); err != nil {
		appLogger.Errorf("failed to migrate user schema: %v", err)
		os.Exit(1)
	}
	if err := listing.Migrate(ctx, db); err != nil {
		appLogger.Errorf("failed to migrate listing schema: %v", err)
		os.Exit(1)
	}

	convRepo := repository.NewConversationRepository(db, *appLogger)
	profiles := user.NewProfileProvider(db)
	listings := listing.NewSummaryProvider(db)
	messagingUC := usecase.NewMessagingUsecase(convRepo, profiles, listings, *appLogger)

	handler := deliveryHTTP.NewMessagingHandler(messagingUC, *appLogger)
	router := deliveryHTTP.NewRouter(cfg, handler)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("server listening", "addr", cfg.Server.Port, "env", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Errorf("server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}
}
