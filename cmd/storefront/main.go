package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/empire-storefront/internal/application/services"
	"github.com/DanielPopoola/empire-storefront/internal/clock"
	"github.com/DanielPopoola/empire-storefront/internal/config"
	"github.com/DanielPopoola/empire-storefront/internal/domain"
	"github.com/DanielPopoola/empire-storefront/internal/infrastructure/dispatch"
	"github.com/DanielPopoola/empire-storefront/internal/interfaces/rest"
	"github.com/DanielPopoola/empire-storefront/internal/interfaces/rest/middleware"
	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting storefront service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	catalog := config.DefaultCatalog()
	if err := domain.ValidateCatalog(catalog); err != nil {
		logger.Error("invalid catalog", "error", err)
		os.Exit(1)
	}
	paymentMethods := config.DefaultPaymentMethods()

	sessions := services.NewSessionStore()
	whatsappSink := dispatch.NewWhatsAppSink()
	fileSink := dispatch.NewFileExportSink(cfg.Store.ExportDir)

	catalogService := services.NewCatalogService(catalog, paymentMethods)
	cartService := services.NewCartService(catalog, sessions, logger)
	checkoutService := services.NewCheckoutService(
		paymentMethods,
		whatsappSink,
		fileSink,
		clock.NewSystem(),
		rand.New(rand.NewSource(time.Now().UnixNano())),
		cfg.Store.CurrencyLabel,
		cfg.Store.WhatsAppNumber,
		cfg.Store.InvoiceFilename,
		logger,
	)
	chatService := services.NewChatService(catalog, cfg.Store.CurrencyLabel, logger)

	h := rest.NewHandler(
		catalogService,
		cartService,
		checkoutService,
		chatService,
		sessions,
		logger,
	)

	router := mux.NewRouter()
	h.RegisterRoutes(router)

	handler := middleware.Recovery(logger)(router)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
