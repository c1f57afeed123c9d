package counter

import (
	"log/slog"

	"github.com/chriscorrea/thaitok/tokenizer"
)

// WordCounter counts Thai words by running the newmm dictionary segmenter
// with whitespace tokens dropped.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of word tokens in the given text.
func (wc *WordCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	words, err := tokenizer.Word(text, tokenizer.WithoutWhitespace())
	if err != nil {
		// the default engine cannot fail; keep the Counter contract total
		slog.Debug("word segmentation failed", "error", err)
		return 0
	}

	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", len(words))
	return len(words)
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words (newmm)"
}
