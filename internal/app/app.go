// Package app contains the core pipeline for the thaitok CLI.
// It handles input gathering, segmentation, and output formatting
// separated from CLI concerns.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/chriscorrea/thaitok/dict"
	"github.com/chriscorrea/thaitok/internal/counter"
	"github.com/chriscorrea/thaitok/internal/extract"
	"github.com/chriscorrea/thaitok/internal/fetch"
	"github.com/chriscorrea/thaitok/internal/spinner"
	"github.com/chriscorrea/thaitok/tokenizer"

	"golang.org/x/text/unicode/norm"
)

// Mode selects the segmentation granularity.
type Mode int

const (
	Words Mode = iota
	Sentences
	Subwords
	Syllables
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Words:
		return "words"
	case Sentences:
		return "sentences"
	case Subwords:
		return "subwords"
	case Syllables:
		return "syllables"
	default:
		return "unknown"
	}
}

// Config holds all configuration options for a thaitok run.
type Config struct {
	Sources      []string // URLs, file paths, or "-" for stdin
	Text         string   // literal input text; takes precedence over Sources
	Selector     string   // CSS selector for HTML extraction
	HTML         bool     // treat sources as HTML and extract plain text
	Normalize    bool     // apply Unicode NFC before segmenting
	Engine       string   // engine name for the selected mode
	DictPath     string   // optional custom dictionary file (word mode)
	NoWhitespace bool     // drop whitespace tokens (word mode)
	Separator    string   // token separator for plain output
	JSON         bool     // emit a JSON array instead of joined tokens
	Quiet        bool     // suppress warnings on stderr
	Debug        bool
}

// Run gathers input per cfg, segments it at the given granularity, and
// returns the formatted output.
//
// ctx allows for cancellation of fetch operations.
func Run(ctx context.Context, mode Mode, cfg Config) (string, error) {
	text, err := gatherText(ctx, cfg)
	if err != nil {
		return "", err
	}

	tokens, err := segment(mode, text, cfg)
	if err != nil {
		return "", err
	}

	return formatTokens(tokens, cfg)
}

// Count gathers input per cfg and counts its units with the given method.
func Count(ctx context.Context, method counter.CountingMethod, cfg Config) (string, error) {
	text, err := gatherText(ctx, cfg)
	if err != nil {
		return "", err
	}

	c, err := counter.NewCounter(method)
	if err != nil {
		return "", fmt.Errorf("failed to initialize counter: %w", err)
	}

	n := c.Count(text)

	if cfg.JSON {
		data, err := json.Marshal(map[string]any{
			"count":  n,
			"method": method.String(),
		})
		if err != nil {
			return "", fmt.Errorf("failed to encode output: %w", err)
		}
		return string(data), nil
	}
	return strconv.Itoa(n), nil
}

// gatherText resolves cfg into the text to segment. Literal text wins;
// otherwise sources are read in order and joined with a blank line. A
// source that fails only warns, so one dead URL does not sink a batch,
// but an empty overall result is an error.
func gatherText(ctx context.Context, cfg Config) (string, error) {
	if cfg.Text != "" {
		return finishText(cfg.Text, cfg), nil
	}

	sources := cfg.Sources
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	var combined strings.Builder
	var lastErr error
	for _, source := range sources {
		content, err := readSource(ctx, source, cfg)
		if err != nil {
			lastErr = err
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to read source %q: %v\n", source, err)
			}
			continue
		}
		if combined.Len() > 0 {
			combined.WriteString("\n\n")
		}
		combined.WriteString(content)
	}

	if combined.Len() == 0 {
		if lastErr != nil {
			return "", fmt.Errorf("no content read from any source: %w", lastErr)
		}
		return "", nil
	}

	return finishText(combined.String(), cfg), nil
}

// readSource fetches one source and reduces it to plain text.
func readSource(ctx context.Context, source string, cfg Config) (string, error) {
	isURL := strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")

	// remote fetches can stall long enough to warrant feedback
	if isURL && !cfg.Quiet {
		sp := spinner.New(ctx, os.Stderr, "Fetching "+source)
		sp.Start()
		defer sp.Stop()
	}

	reader, err := fetch.Open(ctx, source)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	if cfg.HTML {
		var baseURL *url.URL
		if isURL {
			baseURL, _ = url.Parse(source)
		}
		return extract.ToText(reader, cfg.Selector, baseURL)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func finishText(text string, cfg Config) string {
	if cfg.Normalize {
		text = norm.NFC.String(text)
	}
	return text
}

// segment dispatches to the tokenizer package for the selected mode.
func segment(mode Mode, text string, cfg Config) ([]string, error) {
	switch mode {
	case Sentences:
		return tokenizer.Sent(text, tokenizer.WithEngine(cfg.Engine)), nil
	case Subwords:
		return tokenizer.Subword(text, tokenizer.WithEngine(cfg.Engine)), nil
	case Syllables:
		return tokenizer.Syllable(text)
	default:
		opts := []tokenizer.Option{tokenizer.WithEngine(cfg.Engine)}
		if cfg.DictPath != "" {
			trie, err := dict.Build(cfg.DictPath)
			if err != nil {
				return nil, err
			}
			opts = append(opts, tokenizer.WithDict(trie))
		}
		if cfg.NoWhitespace {
			opts = append(opts, tokenizer.WithoutWhitespace())
		}
		return tokenizer.Word(text, opts...)
	}
}

// formatTokens renders tokens as a separator-joined line or a JSON array.
func formatTokens(tokens []string, cfg Config) (string, error) {
	if cfg.JSON {
		if tokens == nil {
			tokens = []string{}
		}
		data, err := json.Marshal(tokens)
		if err != nil {
			return "", fmt.Errorf("failed to encode output: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(tokens, cfg.Separator), nil
}
