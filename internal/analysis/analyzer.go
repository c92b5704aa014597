package analysis

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"emojicli/internal/emoji"
)

// Options names the columns and filter values the analyzer works with.
type Options struct {
	TimestampColumn string
	TextColumn      string
	DirectionColumn string
	OutgoingLabel   string
	TargetYear      int
	TopN            int
}

// Message is one retained row of the combined artifact: an outgoing message
// from the target year, with the emojis found in its text after extraction.
type Message struct {
	Timestamp time.Time
	Text      string
	Emojis    []string
}

// Occurrence is one emoji found inside one message, with the temporal
// features the bucketed reports aggregate over.
type Occurrence struct {
	Timestamp time.Time
	Char      string
	Hour      int
	Weekday   string
	Month     string
}

// Analyzer runs the emoji analysis pipeline over a combined messages file.
type Analyzer struct {
	logger     *slog.Logger
	classifier emoji.Classifier
	opts       Options

	// Progress receives human-readable progress lines. Defaults to stdout.
	Progress io.Writer
}

// New creates an Analyzer with the given classifier and options.
func New(logger *slog.Logger, classifier emoji.Classifier, opts Options) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.TopN <= 0 {
		opts.TopN = 25
	}
	return &Analyzer{
		logger:     logger,
		classifier: classifier,
		opts:       opts,
		Progress:   os.Stdout,
	}
}

// Result bundles everything the analysis produces: headline statistics plus
// the data behind each report view.
type Result struct {
	Stats      Stats         `json:"stats"`
	TopEmojis  []FreqEntry   `json:"top_emojis"`
	Hourly     []BucketCount `json:"hourly"`
	Weekday    []BucketCount `json:"weekday"`
	Monthly    []BucketCount `json:"monthly"`
	Daily      []DailyCount  `json:"daily"`
	Categories []BucketCount `json:"categories"`
}

// Run executes the pipeline stages in order: load and filter, extract,
// expand, compute statistics, and assemble the report data.
func (a *Analyzer) Run(path string) (*Result, error) {
	messages, err := a.Load(path)
	if err != nil {
		a.logger.Error("Failed to load combined file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, err
	}
	fmt.Fprintf(a.Progress, "Found %s outgoing messages from %d\n", FormatCount(len(messages)), a.opts.TargetYear)

	fmt.Fprintln(a.Progress, "Extracting emojis from messages...")
	a.Extract(messages)

	occurrences := Expand(messages)
	fmt.Fprintf(a.Progress, "Found %s emoji uses\n", FormatCount(len(occurrences)))

	result := &Result{
		Stats:      ComputeStats(messages),
		TopEmojis:  TopEmojis(messages, a.opts.TopN),
		Hourly:     HourlyCounts(occurrences),
		Weekday:    WeekdayCounts(occurrences),
		Monthly:    MonthlyCounts(occurrences),
		Daily:      DailySeries(occurrences),
		Categories: CategoryCounts(occurrences, a.classifier),
	}

	a.logger.Info("Analysis completed",
		slog.Int("messages", len(messages)),
		slog.Int("emoji_uses", len(occurrences)),
		slog.Int("unique_emojis", result.Stats.UniqueEmojis))

	return result, nil
}
