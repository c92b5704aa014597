package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"emojicli/internal/analysis"
	"emojicli/internal/config"
	"emojicli/internal/emoji"
	"emojicli/internal/exporter"
	"emojicli/internal/infrastructure"
	"emojicli/internal/report"
)

func main() {
	input := flag.String("input", "", "path to the combined messages file (defaults to combined_messages.csv in the configured root)")
	year := flag.Int("year", 0, "target year to analyze (defaults to configured target year)")
	topN := flag.Int("top", 0, "number of emojis in the top chart (defaults to configured value)")
	addr := flag.String("addr", "", "report server listen address (defaults to configured address)")
	noServe := flag.Bool("no-serve", false, "write the report HTML without serving it")
	xlsxOut := flag.String("xlsx", "", "also write statistics to an Excel workbook at this path")
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

	if *input == "" {
		*input = filepath.Join(cfg.Input.RootDir, cfg.Input.CombinedFile)
	}
	if *year != 0 {
		cfg.Analysis.TargetYear = *year
	}
	if *topN != 0 {
		cfg.Analysis.TopN = *topN
	}
	if *addr != "" {
		cfg.Report.Addr = *addr
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger := infrastructure.LoggerWithContext(ctx)
	logger.Info("Starting emoji analysis",
		slog.String("input", *input),
		slog.Int("target_year", cfg.Analysis.TargetYear),
		slog.Int("top_n", cfg.Analysis.TopN))

	fmt.Println("\nStarting emoji analysis...")

	analyzer := analysis.New(logger, emoji.NewReferenceSet(), analysis.Options{
		TimestampColumn: cfg.Analysis.TimestampColumn,
		TextColumn:      cfg.Analysis.TextColumn,
		DirectionColumn: cfg.Analysis.DirectionColumn,
		OutgoingLabel:   cfg.Analysis.OutgoingLabel,
		TargetYear:      cfg.Analysis.TargetYear,
		TopN:            cfg.Analysis.TopN,
	})

	result, err := analyzer.Run(*input)
	if err != nil {
		logger.Error("Analysis failed", slog.String("error", err.Error()))
		fmt.Printf("\nError during analysis: %s\n", err)
		fmt.Println("Please check the error message above and ensure the combined file is in the correct format.")
		os.Exit(1)
	}

	printStats(result.Stats)

	if *xlsxOut != "" {
		if err := exporter.WriteStatsWorkbook(*xlsxOut, result); err != nil {
			logger.Error("Failed to write statistics workbook",
				slog.String("path", *xlsxOut),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Statistics workbook written to %s\n", *xlsxOut)
	}

	builder := report.NewBuilder(cfg.Report.Title)
	if err := builder.WriteHTML(cfg.Report.OutputHTML, result); err != nil {
		logger.Error("Failed to write report HTML",
			slog.String("path", cfg.Report.OutputHTML),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Printf("Report written to %s\n", cfg.Report.OutputHTML)

	if *noServe {
		return
	}

	server, err := report.NewServer(logger, builder, result)
	if err != nil {
		logger.Error("Failed to build report server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx, cfg.Report.Addr, cfg.Report.OpenBrowser); err != nil {
		logger.Error("Report server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func printStats(stats analysis.Stats) {
	fmt.Println("\n=== Emoji Usage Statistics ===")
	fmt.Printf("Total emojis used: %s\n", analysis.FormatCount(stats.TotalEmojis))
	fmt.Printf("Unique emojis used: %s\n", analysis.FormatCount(stats.UniqueEmojis))
	fmt.Printf("Messages containing emojis: %s\n", analysis.FormatCount(stats.MessagesWithEmojis))
	fmt.Printf("Percentage of messages with emojis: %.1f%%\n", stats.PercentWithEmojis)
}
