package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "mixed text and emoji",
			text:     "Hi 👋 there 🎉🎉",
			expected: []string{"👋", "🎉", "🎉"},
		},
		{
			name:     "no emoji",
			text:     "just words",
			expected: nil,
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "emoji only",
			text:     "😀😀😀",
			expected: []string{"😀", "😀", "😀"},
		},
		{
			name:     "punctuation and digits ignored",
			text:     "call me at 555-0100!",
			expected: nil,
		},
	}

	a := newTestAnalyzer(defaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := []Message{{Text: tt.text}}
			a.Extract(messages)
			assert.Equal(t, tt.expected, messages[0].Emojis)
		})
	}
}

func TestExpand(t *testing.T) {
	// Wednesday, May 1 2024, 09:30
	ts := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	messages := []Message{
		{Timestamp: ts, Emojis: []string{"👋", "🎉", "🎉"}},
		{Timestamp: ts.Add(time.Hour), Emojis: nil},
	}

	occurrences := Expand(messages)
	require.Len(t, occurrences, 3)

	for _, o := range occurrences {
		assert.Equal(t, ts, o.Timestamp, "all records share the source row's timestamp")
		assert.Equal(t, 9, o.Hour)
		assert.Equal(t, "Wednesday", o.Weekday)
		assert.Equal(t, "May", o.Month)
	}
	assert.Equal(t, "👋", occurrences[0].Char)
	assert.Equal(t, "🎉", occurrences[1].Char)
	assert.Equal(t, "🎉", occurrences[2].Char)
}

func TestExpand_NoMessages(t *testing.T) {
	assert.Nil(t, Expand(nil))
}
