package analysis

import (
	"sort"
	"strconv"
	"time"

	"emojicli/internal/emoji"
)

// Stats holds the headline emoji usage numbers.
type Stats struct {
	TotalEmojis        int     `json:"total_emojis"`
	UniqueEmojis       int     `json:"unique_emojis"`
	MessagesWithEmojis int     `json:"messages_with_emojis"`
	TotalMessages      int     `json:"total_messages"`
	PercentWithEmojis  float64 `json:"percent_with_emojis"`
}

// FreqEntry is one emoji and its usage count.
type FreqEntry struct {
	Char  string `json:"emoji"`
	Count int    `json:"count"`
}

// BucketCount is a labeled aggregate, used for the hour/weekday/month and
// category views.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailyCount is the emoji total for one calendar day.
type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// ComputeStats calculates the headline statistics over the retained messages.
// With zero retained messages the percentage is reported as 0 rather than
// dividing by zero.
func ComputeStats(messages []Message) Stats {
	stats := Stats{TotalMessages: len(messages)}

	unique := make(map[string]bool)
	for _, m := range messages {
		stats.TotalEmojis += len(m.Emojis)
		if len(m.Emojis) > 0 {
			stats.MessagesWithEmojis++
		}
		for _, char := range m.Emojis {
			unique[char] = true
		}
	}
	stats.UniqueEmojis = len(unique)

	if stats.TotalMessages > 0 {
		stats.PercentWithEmojis = float64(stats.MessagesWithEmojis) / float64(stats.TotalMessages) * 100
	}

	return stats
}

// TopEmojis returns the n most frequent emojis across all messages. Ties
// break by first-seen order, so the result is deterministic for a given
// input order.
func TopEmojis(messages []Message, n int) []FreqEntry {
	index := make(map[string]int)
	var entries []FreqEntry

	for _, m := range messages {
		for _, char := range m.Emojis {
			if i, ok := index[char]; ok {
				entries[i].Count++
			} else {
				index[char] = len(entries)
				entries = append(entries, FreqEntry{Char: char, Count: 1})
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// HourlyCounts buckets occurrences by hour of day. All 24 hours are present,
// zero-filled.
func HourlyCounts(occurrences []Occurrence) []BucketCount {
	counts := make([]BucketCount, 24)
	for h := 0; h < 24; h++ {
		counts[h].Label = strconv.Itoa(h)
	}
	for _, o := range occurrences {
		counts[o.Hour].Count++
	}
	return counts
}

// weekdayOrder fixes the report order to start the week on Monday.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayCounts buckets occurrences by weekday, Monday through Sunday,
// zero-filled.
func WeekdayCounts(occurrences []Occurrence) []BucketCount {
	return fixedBuckets(weekdayOrder, occurrences, func(o Occurrence) string { return o.Weekday })
}

// monthOrder fixes the report order to calendar order.
var monthOrder = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthlyCounts buckets occurrences by month, January through December,
// zero-filled.
func MonthlyCounts(occurrences []Occurrence) []BucketCount {
	return fixedBuckets(monthOrder, occurrences, func(o Occurrence) string { return o.Month })
}

func fixedBuckets(order []string, occurrences []Occurrence, key func(Occurrence) string) []BucketCount {
	index := make(map[string]int, len(order))
	counts := make([]BucketCount, len(order))
	for i, label := range order {
		index[label] = i
		counts[i].Label = label
	}
	for _, o := range occurrences {
		if i, ok := index[key(o)]; ok {
			counts[i].Count++
		}
	}
	return counts
}

// DailySeries aggregates occurrences per calendar day across the full range
// present, with calendar gaps filled as zero. Returns nil for no occurrences.
func DailySeries(occurrences []Occurrence) []DailyCount {
	if len(occurrences) == 0 {
		return nil
	}

	// Buckets are keyed by each timestamp's own calendar day, pinned to UTC.
	// Exports can mix zoneless and zone-bearing timestamp formats; keys that
	// retained their source location would never match the iterated days.
	perDay := make(map[time.Time]int)
	var min, max time.Time
	for _, o := range occurrences {
		day := time.Date(o.Timestamp.Year(), o.Timestamp.Month(), o.Timestamp.Day(), 0, 0, 0, 0, time.UTC)
		perDay[day]++
		if min.IsZero() || day.Before(min) {
			min = day
		}
		if max.IsZero() || day.After(max) {
			max = day
		}
	}

	var series []DailyCount
	for day := min; !day.After(max); day = day.AddDate(0, 0, 1) {
		series = append(series, DailyCount{Date: day, Count: perDay[day]})
	}
	return series
}

// CategoryCounts aggregates occurrences by emoji category, most used first,
// ties broken by first-seen order. Characters the classifier does not know
// land in the Unknown category.
func CategoryCounts(occurrences []Occurrence, classifier emoji.Classifier) []BucketCount {
	index := make(map[string]int)
	var counts []BucketCount

	for _, o := range occurrences {
		category := emoji.UnknownCategory
		if runes := []rune(o.Char); len(runes) > 0 {
			category = classifier.Category(runes[0])
		}
		if i, ok := index[category]; ok {
			counts[i].Count++
		} else {
			index[category] = len(counts)
			counts = append(counts, BucketCount{Label: category, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// FormatCount renders an integer with thousands separators for the printed
// summaries.
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	start := 0
	if n < 0 {
		start = 1
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > start && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
