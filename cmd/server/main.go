package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/folio/app/api"
	"github.com/lysyi3m/folio/app/cfg"
	"github.com/lysyi3m/folio/app/view"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting Folio server", "version", appCfg.Version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	options, err := view.NewOptionsStore(appCfg.MountsFile)
	if err != nil {
		slog.Error("Failed to load mount options", "file", appCfg.MountsFile, "error", err)
		os.Exit(1)
	}

	slog.Debug("Mount options loaded",
		"list_target", options.Get().List.Target,
		"featured_target", options.Get().Featured.Target,
		"featured_limit", options.Get().Featured.Limit,
		"locale", options.Get().Locale)

	if appCfg.WatchMounts {
		if err := options.Watch(ctx); err != nil {
			slog.Warn("Mount options will not be reloaded", "file", appCfg.MountsFile, "error", err)
		}
	}

	if _, err := os.Stat(appCfg.SiteDir); err != nil {
		slog.Warn("Site directory not accessible", "dir", appCfg.SiteDir, "error", err)
	}

	httpClient := &http.Client{Timeout: appCfg.GetFetchTimeout()}

	apiHandler := api.NewHandler(appCfg, httpClient, options)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: appCfg.GetFetchTimeout() + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening",
			"port", appCfg.Port,
			"site_dir", appCfg.SiteDir,
			"data_origin", appCfg.DataOrigin)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig)
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Folio server shutdown complete")
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}
