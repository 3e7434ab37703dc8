package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"alertroster/config"
	httpdelivery "alertroster/internal/delivery/http"
	"alertroster/internal/delivery/http/controllers"
	"alertroster/internal/delivery/http/middleware"
	"alertroster/internal/repository/postgres"
	"alertroster/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		return
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to reach database", "err", err)
		return
	}

	var (
		settingsCtrl *controllers.SettingsController
		rosterCtrl   *controllers.RosterController
	)
	switch cfg.Mode {
	case config.ModeSettings:
		svc := services.NewSettingsService(postgres.NewSettingsRepository(db), cfg.SettingsPassword)
		settingsCtrl = controllers.NewSettingsController(logger, svc)
	case config.ModeRoster:
		svc := services.NewRosterService(postgres.NewRecipientRepository(db))
		rosterCtrl = controllers.NewRosterController(logger, svc)
	}

	mux := httpdelivery.NewRouter(cfg.Mode, settingsCtrl, rosterCtrl, cfg.StaticDir)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server started", "port", cfg.Port, "mode", cfg.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
