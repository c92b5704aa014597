package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"emojicli/internal/analysis"
)

// Builder renders analysis results into an HTML page of charts.
type Builder struct {
	title string
}

// NewBuilder creates a chart builder. The title heads the top-emojis chart
// and the browser tab.
func NewBuilder(title string) *Builder {
	if title == "" {
		title = "Emoji Wrapped"
	}
	return &Builder{title: title}
}

// Page assembles all report views into one scrollable page: top emojis,
// hourly/weekday/monthly patterns, the daily series, and the category
// distribution.
func (b *Builder) Page(result *analysis.Result) *components.Page {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	page.AddCharts(
		b.topEmojisChart(result.TopEmojis),
		b.hourlyChart(result.Hourly),
		b.bucketChart("Weekday Usage", result.Weekday),
		b.bucketChart("Monthly Usage", result.Monthly),
		b.dailyChart(result.Daily),
		b.categoryChart(result.Categories),
	)
	return page
}

// Render writes the page HTML to w.
func (b *Builder) Render(w io.Writer, result *analysis.Result) error {
	if err := b.Page(result).Render(w); err != nil {
		return fmt.Errorf("failed to render report page: %w", err)
	}
	return nil
}

// WriteHTML renders the report to a file.
func (b *Builder) WriteHTML(path string, result *analysis.Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	return b.Render(f, result)
}

func (b *Builder) topEmojisChart(top []analysis.FreqEntry) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Top %d Most Used Emojis", len(top)),
			Subtitle: b.title,
		}),
	)

	labels := make([]string, 0, len(top))
	values := make([]opts.BarData, 0, len(top))
	for _, e := range top {
		labels = append(labels, e.Char)
		values = append(values, opts.BarData{Value: e.Count})
	}

	bar.SetXAxis(labels).AddSeries("Frequency", values)
	return bar
}

func (b *Builder) hourlyChart(buckets []analysis.BucketCount) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Hourly Usage"}),
	)

	labels := make([]string, 0, len(buckets))
	values := make([]opts.LineData, 0, len(buckets))
	for _, bucket := range buckets {
		labels = append(labels, bucket.Label)
		values = append(values, opts.LineData{Value: bucket.Count})
	}

	line.SetXAxis(labels).AddSeries("Emojis", values)
	return line
}

func (b *Builder) bucketChart(title string, buckets []analysis.BucketCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	labels := make([]string, 0, len(buckets))
	values := make([]opts.BarData, 0, len(buckets))
	for _, bucket := range buckets {
		labels = append(labels, bucket.Label)
		values = append(values, opts.BarData{Value: bucket.Count})
	}

	bar.SetXAxis(labels).AddSeries("Emojis", values)
	return bar
}

func (b *Builder) dailyChart(daily []analysis.DailyCount) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Emoji Usage Over Time"}),
	)

	labels := make([]string, 0, len(daily))
	values := make([]opts.LineData, 0, len(daily))
	for _, d := range daily {
		labels = append(labels, d.Date.Format("2006-01-02"))
		values = append(values, opts.LineData{Value: d.Count})
	}

	line.SetXAxis(labels).AddSeries("Emojis", values)
	return line
}

func (b *Builder) categoryChart(categories []analysis.BucketCount) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Distribution of Emoji Categories"}),
	)

	values := make([]opts.PieData, 0, len(categories))
	for _, c := range categories {
		values = append(values, opts.PieData{Name: c.Label, Value: c.Count})
	}

	pie.AddSeries("Categories", values)
	return pie
}
