// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	appConfig "github.com/festy23/teamup/internal/config"
	"github.com/festy23/teamup/internal/database/database"
	"github.com/festy23/teamup/internal/database/migrate"
	"github.com/festy23/teamup/internal/health"
	matchingRouter "github.com/festy23/teamup/internal/matching/router"
	"github.com/festy23/teamup/internal/middleware"
	"github.com/festy23/teamup/internal/notification/dispatcher"
	notificationRouter "github.com/festy23/teamup/internal/notification/router"
	profileRouter "github.com/festy23/teamup/internal/profile/router"
	requestRouter "github.com/festy23/teamup/internal/request/router"
	statisticsRouter "github.com/festy23/teamup/internal/statistics/router"
	teamRouter "github.com/festy23/teamup/internal/team/router"
	"github.com/festy23/teamup/pkg/logger"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}

	if appConfig.GetEnvBool("RUN_MIGRATIONS", true) {
		if err := migrate.Migrate(db); err != nil {
			zapLogger.Fatalw("failed to apply migrations", "error", err)
		}
	}

	notifier := dispatcher.NewLogNotifier(zapLogger)
	d := dispatcher.New(notifier, cfg.Notifier, zapLogger)
	d.Start()
	defer d.Stop()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))

	r.GET("/health", health.New(db, zapLogger).Check)
	profileRouter.RegisterRoutes(r, db, zapLogger)
	teamRouter.RegisterRoutes(r, db, zapLogger)
	matchingRouter.RegisterRoutes(r, db, zapLogger)
	requestRouter.RegisterRoutes(r, db, d, zapLogger)
	notificationRouter.RegisterRoutes(r, db, zapLogger)
	statisticsRouter.RegisterRoutes(r, db, zapLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Infow("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Errorw("graceful shutdown failed", "error", err)
	}
}
