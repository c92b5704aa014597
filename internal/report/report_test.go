package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emojicli/internal/analysis"
)

func sampleResult() *analysis.Result {
	return &analysis.Result{
		Stats: analysis.Stats{
			TotalEmojis:        4,
			UniqueEmojis:       3,
			MessagesWithEmojis: 2,
			TotalMessages:      3,
			PercentWithEmojis:  66.7,
		},
		TopEmojis: []analysis.FreqEntry{{Char: "🎉", Count: 2}, {Char: "😀", Count: 1}},
		Hourly:    analysis.HourlyCounts(nil),
		Weekday:   analysis.WeekdayCounts(nil),
		Monthly:   analysis.MonthlyCounts(nil),
		Daily: []analysis.DailyCount{
			{Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), Count: 3},
			{Date: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), Count: 1},
		},
		Categories: []analysis.BucketCount{{Label: "Smileys & Emotion", Count: 3}},
	}
}

func TestBuilder_Render(t *testing.T) {
	builder := NewBuilder("Test Report")

	var buf bytes.Buffer
	require.NoError(t, builder.Render(&buf, sampleResult()))

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Top 2 Most Used Emojis")
	assert.Contains(t, html, "Hourly Usage")
	assert.Contains(t, html, "Emoji Usage Over Time")
	assert.Contains(t, html, "Distribution of Emoji Categories")
}

func TestBuilder_WriteHTML(t *testing.T) {
	builder := NewBuilder("")
	path := filepath.Join(t.TempDir(), "reports", "emoji_report.html")

	require.NoError(t, builder.WriteHTML(path, sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := NewServer(nil, NewBuilder("Test"), sampleResult())
	require.NoError(t, err)
	return srv
}

func TestServer_Index(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "echarts")
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Stats(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 4, result.Stats.TotalEmojis)
	assert.Len(t, result.Hourly, 24)
	require.NotEmpty(t, result.TopEmojis)
	assert.Equal(t, "🎉", result.TopEmojis[0].Char)
}

func TestServer_NotFound(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
