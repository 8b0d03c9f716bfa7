package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mamadbah2/herdmethane/internal/config"
	"github.com/mamadbah2/herdmethane/internal/server/handlers"
	"github.com/mamadbah2/herdmethane/internal/server/router"
	commandsvc "github.com/mamadbah2/herdmethane/internal/service/commands"
	"github.com/mamadbah2/herdmethane/internal/service/emissions"
	whatsappsvc "github.com/mamadbah2/herdmethane/internal/service/whatsapp"
	whatsappclient "github.com/mamadbah2/herdmethane/pkg/clients/whatsapp"
	"github.com/mamadbah2/herdmethane/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	presets, err := config.LoadPresets(cfg.Presets)
	if err != nil {
		baseLogger.Fatal("failed to load presets", zap.Error(err))
	}

	catalog, err := emissions.NewCatalog(presets, cfg.Presets.Default, baseLogger.Named("svc.emissions"))
	if err != nil {
		baseLogger.Fatal("invalid preset configuration", zap.Error(err))
	}

	routes := router.Handlers{
		Emissions: handlers.NewEmissionsHandler(catalog, baseLogger.Named("handlers.emissions")),
	}

	if cfg.WhatsApp.Enabled() {
		dispatcher := commandsvc.NewService(catalog, baseLogger.Named("svc.commands"))
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		messagingSvc := whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsClient, dispatcher, baseLogger.Named("svc.whatsapp"))
		routes.Webhook = handlers.NewWebhookHandler(messagingSvc, baseLogger.Named("handlers.whatsapp"))
		baseLogger.Info("whatsapp channel enabled")
	} else {
		baseLogger.Warn("whatsapp token missing, chat channel disabled")
	}

	limiter := router.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	engine := router.New(routes, limiter, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("default_preset", catalog.DefaultName()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
