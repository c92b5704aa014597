package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"emojicli/internal/combiner"
	"emojicli/internal/config"
	"emojicli/internal/infrastructure"
)

func main() {
	dir := flag.String("dir", "", "root directory containing message exports (defaults to the current directory)")
	out := flag.String("out", "", "output csv file path (defaults to combined_messages.csv in the root directory)")
	flag.Parse()

	// Optional .env next to the binary
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if *dir == "" {
		*dir = cfg.Input.RootDir
	}
	if *out == "" {
		*out = filepath.Join(*dir, cfg.Input.CombinedFile)
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger := infrastructure.LoggerWithContext(ctx)
	logger.Info("Starting message export combine",
		slog.String("input_dir", *dir),
		slog.String("output_file", *out))

	c := combiner.New(logger, cfg.Input.ProvenanceColumn)
	result, err := c.Run(*dir, *out)
	if err != nil {
		logger.Error("Combine failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Combine finished",
		slog.Int("files_found", result.FilesFound),
		slog.Int("files_combined", result.FilesCombined),
		slog.Int("files_skipped", result.FilesSkipped),
		slog.Int("total_rows", result.TotalRows),
		slog.Bool("written", result.Written))
}
