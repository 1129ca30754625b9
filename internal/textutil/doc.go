// Package textutil cleans display names that carry complex Unicode.
//
// Emoji and regional-indicator code points are replaced one for one with a
// fixed placeholder so names render predictably in terminals and logs. The
// emoji dataset is injected through EmojiSet; regional indicators are always
// recognised, with or without a dataset.
package textutil
