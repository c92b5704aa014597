package combiner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"emojicli/internal/dataset"
	"emojicli/internal/exporter"
	"emojicli/internal/files"
)

// progressInterval controls how often a progress line is printed while
// processing source files.
const progressInterval = 100

// Combiner aggregates per-conversation message exports into one combined CSV,
// stamping every row with the conversation it came from.
type Combiner struct {
	logger           *slog.Logger
	writer           *exporter.CSVWriter
	provenanceColumn string

	// Progress receives human-readable progress lines. Defaults to stdout.
	Progress io.Writer
}

// Result summarizes one combiner run.
type Result struct {
	FilesFound    int
	FilesCombined int
	FilesSkipped  int
	TotalRows     int
	OutputPath    string
	Written       bool
}

// New creates a Combiner writing provenance into the named column.
func New(logger *slog.Logger, provenanceColumn string) *Combiner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Combiner{
		logger:           logger,
		writer:           exporter.NewCSVWriter(logger),
		provenanceColumn: provenanceColumn,
		Progress:         os.Stdout,
	}
}

// Run discovers all message exports under root, parses each one, and writes
// the combined artifact to outPath. Files that fail to parse are logged and
// skipped. If no file parses successfully, nothing is written.
func (c *Combiner) Run(root, outPath string) (*Result, error) {
	discovery := files.NewDiscovery(root)

	// The output artifact may already exist from a previous run; keep it out
	// of its own input set.
	found, err := discovery.FindMessageExports(".", outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to discover message exports: %w", err)
	}

	result := &Result{
		FilesFound: len(found),
		OutputPath: outPath,
	}

	c.logger.Info("Message exports found",
		slog.String("root", root),
		slog.Int("count", len(found)))

	var tables []*dataset.Table
	processed := 0
	for _, fi := range found {
		table, err := dataset.ReadFile(fi.Path)
		if err != nil {
			c.logger.Warn("Error processing file",
				slog.String("path", fi.Path),
				slog.String("error", err.Error()))
			fmt.Fprintf(c.Progress, "Error processing %s: %s\n", fi.Path, err)
			result.FilesSkipped++
			continue
		}

		table.SetColumn(c.provenanceColumn, fi.ParentDir)
		tables = append(tables, table)

		processed++
		if processed%progressInterval == 0 {
			fmt.Fprintf(c.Progress, "Processed %d/%d files...\n", processed, len(found))
		}
	}

	if len(tables) == 0 {
		c.logger.Info("No message exports processed successfully")
		fmt.Fprintln(c.Progress, "No message export files were found or processed successfully.")
		return result, nil
	}

	combined := dataset.Concat(tables)
	stream, err := c.writer.CreateStreamWriter(outPath, combined.Columns)
	if err != nil {
		return nil, fmt.Errorf("failed to create combined file: %w", err)
	}
	for i := 0; i < combined.Len(); i++ {
		if err := stream.WriteRecord(combined.Record(i)); err != nil {
			stream.Close()
			return nil, fmt.Errorf("failed to write combined row %d: %w", i, err)
		}
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize combined file: %w", err)
	}

	result.FilesCombined = len(tables)
	result.TotalRows = combined.Len()
	result.Written = true

	c.logger.Info("Combine completed",
		slog.Int("files_combined", result.FilesCombined),
		slog.Int("files_skipped", result.FilesSkipped),
		slog.Int("total_rows", result.TotalRows),
		slog.String("output_path", outPath))

	fmt.Fprintf(c.Progress, "\nSuccessfully combined %d files into %s\n", result.FilesCombined, filepath.Base(outPath))
	fmt.Fprintf(c.Progress, "Total rows in combined file: %d\n", result.TotalRows)

	return result, nil
}
