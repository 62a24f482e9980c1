package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quantfeed/tradeboard/internal/config"
	"github.com/quantfeed/tradeboard/internal/copytrade"
	"github.com/quantfeed/tradeboard/internal/exchange"
	"github.com/quantfeed/tradeboard/internal/market"
	"github.com/quantfeed/tradeboard/internal/server"
	"github.com/quantfeed/tradeboard/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/server.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting server",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadServer(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"addr", cfg.Server.Addr,
		"exchange_url", cfg.Exchange.BaseURL,
	)

	// Cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Upstream exchange client
	exClient := exchange.NewClient(
		cfg.Exchange.BaseURL,
		exchange.WithLogger(logger),
		exchange.WithTimeout(cfg.Exchange.Timeout),
		exchange.WithRetries(cfg.Exchange.MaxRetries, time.Second),
	)

	marketSvc := market.NewService(exClient, cfg.History.Size, logger)
	copySvc := copytrade.NewService(logger)

	// Background order processor
	processor := copytrade.NewProcessor(cfg.Processor.Interval, copySvc, logger)
	if err := processor.Start(ctx); err != nil {
		logger.Error("failed to start order processor", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, marketSvc, copySvc, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown error", "error", err)
		}
		if err := processor.Stop(shutdownCtx); err != nil {
			logger.Error("processor stop error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
