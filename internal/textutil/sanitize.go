package textutil

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Placeholder replaces every emoji and regional-indicator code point.
const Placeholder = '❚'

const (
	regionalIndicatorA = '\U0001F1E6'
	regionalIndicatorZ = '\U0001F1FF'
)

// IsRegionalIndicator reports whether r is one of the flag letters A-Z.
func IsRegionalIndicator(r rune) bool {
	return r >= regionalIndicatorA && r <= regionalIndicatorZ
}

// Sanitizer replaces emoji with Placeholder.
type Sanitizer struct {
	emoji EmojiSet
}

// NewSanitizer returns a sanitizer backed by set. A nil set behaves as NoEmoji.
func NewSanitizer(set EmojiSet) *Sanitizer {
	if set == nil {
		set = NoEmoji{}
	}
	return &Sanitizer{emoji: set}
}

// EmojiAvailable reports whether the sanitizer has emoji data.
func (s *Sanitizer) EmojiAvailable() bool { return s.emoji.Available() }

// Sanitize walks text by grapheme cluster and swaps each matching code point
// for Placeholder. Output has exactly as many code points as the input.
func (s *Sanitizer) Sanitize(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		for _, r := range g.Runes() {
			if s.replace(r) {
				b.WriteRune(Placeholder)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeAll sanitizes each entry of names.
func (s *Sanitizer) SanitizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = s.Sanitize(name)
	}
	return out
}

func (s *Sanitizer) replace(r rune) bool {
	if r == Placeholder {
		return false
	}
	return IsRegionalIndicator(r) || s.emoji.Contains(r)
}

// SanitizeName sanitizes text using the bundled emoji dataset.
func SanitizeName(text string) string {
	return NewSanitizer(DatasetEmoji()).Sanitize(text)
}
