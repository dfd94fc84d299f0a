package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/network"
	"github.com/katalvlaran/lvroute/server"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	if envErr != nil {
		logger.Debug("no .env file loaded, using process environment", "error", envErr)
	}

	g, err := network.LoadFile(cfg.Network.File)
	if err != nil {
		logger.Error("failed to load network", "file", cfg.Network.File, "error", err)
		os.Exit(1)
	}
	logger.Info("network loaded",
		"file", cfg.Network.File,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
	)

	router := server.NewRouter(logger, server.RouterDependencies{
		Routes:         server.NewRouteHandlers(logger, g, cfg.Network.Time),
		AllowedOrigins: cfg.HTTP.AllowedOrigins(),
	})
	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
