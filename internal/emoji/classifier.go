package emoji

import (
	"github.com/forPelevin/gomoji"
)

// UnknownCategory is returned for characters outside the reference set.
const UnknownCategory = "Unknown"

// Classifier decides whether a character is an emoji and what category it
// belongs to. The analyzer depends on this interface rather than on the
// reference data directly, so the dataset can be swapped or stubbed in tests.
type Classifier interface {
	IsEmoji(r rune) bool
	Category(r rune) string
}

// ReferenceSet is a Classifier backed by the gomoji unicode emoji dataset.
type ReferenceSet struct{}

// NewReferenceSet creates the default classifier.
func NewReferenceSet() *ReferenceSet {
	return &ReferenceSet{}
}

// lookup resolves a single rune against the reference data. Many emoji are
// listed with a trailing variation selector (U+FE0F), so the bare rune is
// retried with it appended.
func (s *ReferenceSet) lookup(r rune) (gomoji.Emoji, bool) {
	if e, err := gomoji.GetInfo(string(r)); err == nil {
		return e, true
	}
	if e, err := gomoji.GetInfo(string(r) + "\uFE0F"); err == nil {
		return e, true
	}
	return gomoji.Emoji{}, false
}

// IsEmoji reports whether the rune is in the emoji reference set.
func (s *ReferenceSet) IsEmoji(r rune) bool {
	_, ok := s.lookup(r)
	return ok
}

// Category returns the unicode group of the rune, for example
// "Smileys & Emotion", or UnknownCategory if the rune is not an emoji.
func (s *ReferenceSet) Category(r rune) string {
	e, ok := s.lookup(r)
	if !ok {
		return UnknownCategory
	}
	if e.Group == "" {
		return UnknownCategory
	}
	return e.Group
}
