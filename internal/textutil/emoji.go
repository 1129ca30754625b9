package textutil

import (
	"sync"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
)

const variationSelector16 = '\uFE0F'

// EmojiSet decides which single code points count as emoji.
type EmojiSet interface {
	Contains(r rune) bool
	// Available reports whether the set is backed by real emoji data.
	Available() bool
}

// NoEmoji is the set used when no emoji data is present.
type NoEmoji struct{}

func (NoEmoji) Contains(rune) bool { return false }
func (NoEmoji) Available() bool    { return false }

type runeSet map[rune]struct{}

func (s runeSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

func (s runeSet) Available() bool { return len(s) > 0 }

var (
	datasetOnce sync.Once
	datasetSet  runeSet
)

// DatasetEmoji returns the single code point emoji of the gomoji dataset.
// gomoji also lists pictographic symbols such as music signs and trigrams;
// only entries with the Unicode Emoji property are kept. It is built on
// first use.
func DatasetEmoji() EmojiSet {
	datasetOnce.Do(func() {
		datasetSet = buildRuneSet(gomoji.AllEmojis())
	})
	return datasetSet
}

func buildRuneSet(emojis []gomoji.Emoji) runeSet {
	set := make(runeSet, len(emojis))
	for _, e := range emojis {
		if r, ok := singleCodePoint(e.Character); ok && hasEmojiProperty(r) {
			set[r] = struct{}{}
		}
	}
	delete(set, Placeholder)
	return set
}

// singleCodePoint returns the code point of s when s is one code point,
// optionally followed by VS-16.
func singleCodePoint(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, false
	}
	switch rest := s[size:]; rest {
	case "", string(variationSelector16):
		return r, true
	default:
		return 0, false
	}
}
