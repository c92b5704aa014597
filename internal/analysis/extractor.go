package analysis

// Extract scans each message's text for emoji characters and records the
// matches on the message. Empty text yields no matches. The scan is per
// character, matching how the reference set is keyed.
func (a *Analyzer) Extract(messages []Message) {
	for i := range messages {
		messages[i].Emojis = a.extractEmojis(messages[i].Text)
	}
}

func (a *Analyzer) extractEmojis(text string) []string {
	var matches []string
	for _, r := range text {
		if a.classifier.IsEmoji(r) {
			matches = append(matches, string(r))
		}
	}
	return matches
}

// Expand produces one Occurrence per (message, emoji) pair, carrying the
// message timestamp and its derived temporal features.
func Expand(messages []Message) []Occurrence {
	var occurrences []Occurrence
	for _, m := range messages {
		for _, char := range m.Emojis {
			occurrences = append(occurrences, Occurrence{
				Timestamp: m.Timestamp,
				Char:      char,
				Hour:      m.Timestamp.Hour(),
				Weekday:   m.Timestamp.Weekday().String(),
				Month:     m.Timestamp.Month().String(),
			})
		}
	}
	return occurrences
}
