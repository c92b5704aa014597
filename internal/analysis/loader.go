package analysis

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"emojicli/internal/dataset"
	apperrors "emojicli/internal/errors"
)

// timestampLayouts lists the formats message exporters have been seen to use,
// tried in order.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 -0700",
	"1/2/2006 3:04:05 PM",
	"2006-01-02",
}

// Load reads the combined artifact, validates that the configured timestamp
// and text columns exist, and filters to outgoing messages from the target
// year. Rows whose timestamp cannot be parsed are excluded.
func (a *Analyzer) Load(path string) ([]Message, error) {
	// Peek at the header before committing to a full parse, so a schema
	// mismatch fails fast with the available columns listed.
	header, err := dataset.ReadHeader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	for _, required := range []string{a.opts.TimestampColumn, a.opts.TextColumn} {
		if !contains(header, required) {
			fmt.Fprintf(a.Progress, "Available columns: %s\n", strings.Join(header, ", "))
			return nil, apperrors.NewValidationError(required,
				fmt.Sprintf("column not found (available: %s)", strings.Join(header, ", ")))
		}
	}

	fmt.Fprintln(a.Progress, "Reading combined messages file...")
	table, err := dataset.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var messages []Message
	skippedTimestamps := 0
	for _, row := range table.Rows {
		ts, err := parseTimestamp(row[a.opts.TimestampColumn])
		if err != nil {
			skippedTimestamps++
			continue
		}
		if ts.Year() != a.opts.TargetYear {
			continue
		}
		if row[a.opts.DirectionColumn] != a.opts.OutgoingLabel {
			continue
		}
		messages = append(messages, Message{
			Timestamp: ts,
			Text:      row[a.opts.TextColumn],
		})
	}

	a.logger.Info("Loaded combined file",
		slog.String("path", path),
		slog.Int("total_rows", table.Len()),
		slog.Int("retained", len(messages)),
		slog.Int("unparseable_timestamps", skippedTimestamps),
		slog.Int("target_year", a.opts.TargetYear))

	return messages, nil
}

// parseTimestamp tries each known layout in order.
func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", value)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
