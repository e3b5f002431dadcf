package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/scripfeed/scrip-tickers/internal/config"
	"github.com/scripfeed/scrip-tickers/internal/database"
	"github.com/scripfeed/scrip-tickers/internal/pipeline"
	"github.com/scripfeed/scrip-tickers/internal/scrip"
	"github.com/scripfeed/scrip-tickers/internal/version"
	"github.com/scripfeed/scrip-tickers/internal/writer"
)

func main() {
	configPath := flag.String("config", "configs/updater.yaml", "path to config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting ticker update",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration; a missing config file means pure defaults.
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		logger.Info("no config file found, using defaults", "path", *configPath)
		cfg = config.Default()
	}

	logger.Info("configuration loaded",
		"source_url", cfg.Source.URL,
		"output_root", cfg.Output.Root,
		"archive", cfg.Database.Enabled(),
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	client := scrip.NewClient(cfg.Source.URL,
		scrip.WithUserAgent(cfg.Source.UserAgent),
		scrip.WithTimeout(cfg.Source.Timeout),
		scrip.WithRetries(cfg.Source.MaxRetries, cfg.Source.RetryDelay),
		scrip.WithLogger(logger),
	)

	var archive *database.Archive
	if cfg.Database.Enabled() {
		archive, err = database.Open(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to run archive", "error", err)
			os.Exit(1)
		}
		defer archive.Close()
		logger.Info("run archive connected",
			"host", cfg.Database.Host,
			"database", cfg.Database.Name,
		)
	}

	runner := pipeline.New(client, writer.New(cfg.Output.Root, logger), archive, logger)

	sum, err := runner.Run(ctx)
	if err != nil {
		logger.Error("update failed", "error", err)
		if archive != nil {
			archive.Close()
		}
		os.Exit(1)
	}

	logger.Info("update completed",
		"run_id", sum.RunID,
		"rows", sum.RowsFetched,
		"consolidated", sum.Consolidated,
		"duration", sum.Finished.Sub(sum.Started),
	)
}
