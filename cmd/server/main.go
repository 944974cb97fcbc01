package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/addispay/yagoutpay-service/internal/adapters/memory"
	"github.com/addispay/yagoutpay-service/internal/adapters/postgres"
	"github.com/addispay/yagoutpay-service/internal/config"
	"github.com/addispay/yagoutpay-service/internal/domain/ports"
	"github.com/addispay/yagoutpay-service/internal/handlers/checkout"
	"github.com/addispay/yagoutpay-service/internal/middleware"
	"github.com/addispay/yagoutpay-service/internal/services/payment"
	"github.com/addispay/yagoutpay-service/pkg/observability"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.Logger)
	defer logger.Sync()

	logger.Info("starting yagoutpay checkout service",
		zap.String("environment", cfg.Gateway.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	client, err := payment.NewClient(
		cfg.Gateway.MerchantID,
		cfg.Gateway.EncryptionKey,
		cfg.Gateway.Environment,
		logger,
	)
	if err != nil {
		logger.Fatal("failed to initialize payment client", zap.Error(err))
	}

	orders, cleanup, err := initOrderStore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize order store", zap.Error(err))
	}
	defer cleanup()

	checkoutHandler := checkout.NewHandler(client, orders, logger, cfg.Server.BaseURL)
	callbackHandler := checkout.NewCallbackHandler(client, orders, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	r.Get("/", checkoutHandler.ShowCheckout)
	r.Post("/pay", checkoutHandler.Pay)
	r.Post("/payment/success", callbackHandler.HandleSuccess)
	r.Post("/payment/failure", callbackHandler.HandleFailure)
	r.Get("/healthz", healthz)
	r.Handle("/metrics", observability.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

// initOrderStore picks postgres when a DSN is configured, otherwise falls
// back to the in-memory store.
func initOrderStore(cfg *config.Config, logger *zap.Logger) (ports.OrderRepository, func(), error) {
	if cfg.Gateway.OrdersDSN == "" {
		logger.Info("using in-memory order store")
		return memory.NewOrderRepository(), func() {}, nil
	}

	pool, err := postgres.NewPool(context.Background(), cfg.Gateway.OrdersDSN)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using postgres order store")
	return postgres.NewOrderRepository(pool), pool.Close, nil
}

func initLogger(cfg config.LoggerConfig) *zap.Logger {
	if cfg.Development {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	zapCfg := zap.NewProductionConfig()
	if level, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	logger, _ := zapCfg.Build()
	return logger
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
