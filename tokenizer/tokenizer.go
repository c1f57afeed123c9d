// Package tokenizer segments Thai text into sentences, words, and
// subwords/syllables through a table of named segmentation engines backed
// by the immutable prefix dictionaries in package dict.
//
// The public surface consists of Word, Sent, Subword, and Syllable plus the
// stateful Tokenizer facade. Every entry point treats empty input as an
// empty result, never an error, and every word-level engine guarantees that
// with whitespace retained the concatenation of the returned tokens
// reproduces the input text exactly.
//
// Usage Example:
//
//	words, err := tokenizer.Word("โอเคบ่พวกเรารักภาษาบ้านเกิด")
//	words, err := tokenizer.Word(text, tokenizer.WithEngine("longest"))
//	sents := tokenizer.Sent("ฉันไปประชุม วันนี้")
package tokenizer

import (
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/chriscorrea/thaitok/dict"
	"github.com/chriscorrea/thaitok/tokenizer/longest"
	"github.com/chriscorrea/thaitok/tokenizer/multicut"
	"github.com/chriscorrea/thaitok/tokenizer/newmm"
	"github.com/chriscorrea/thaitok/tokenizer/tcc"
)

// Word engine names. Unrecognized names fall back to EngineNewMM.
const (
	EngineNewMM    = "newmm"
	EngineOneCut   = "onecut"
	EngineLongest  = "longest"
	EngineMM       = "mm"
	EngineMultiCut = "multi_cut"
	EngineDeepcut  = "deepcut"
	EngineULMFiT   = "ulmfit"
	EngineICU      = "icu"
)

// Sentence engine names.
const (
	EngineWhitespace        = "whitespace"
	EngineWhitespaceNewline = "whitespace+newline"
)

// Subword engine names. Unrecognized names fall back to EngineTCC.
const (
	EngineTCC  = "tcc"
	EngineETCC = "etcc"
)

// engine describes one word segmentation strategy: whether it honors a
// caller-supplied dictionary and how it turns text into tokens.
type engine struct {
	acceptsDict bool
	segment     func(text string, custom *dict.Trie) ([]string, error)
}

// wordEngines is the dispatch table, built eagerly so every entry is
// unit-testable. Collaborator engines that are not bundled (deepcut, icu)
// keep their entries and fail at call time with EngineUnavailableError.
var wordEngines = map[string]engine{
	EngineNewMM:    {acceptsDict: true, segment: segmentNewMM},
	EngineOneCut:   {acceptsDict: true, segment: segmentNewMM},
	EngineLongest:  {acceptsDict: true, segment: segmentLongest},
	EngineMM:       {acceptsDict: true, segment: segmentMultiCut},
	EngineMultiCut: {acceptsDict: true, segment: segmentMultiCut},
	EngineDeepcut:  {acceptsDict: true, segment: segmentDeepcut},
	EngineULMFiT:   {acceptsDict: false, segment: segmentULMFiT},
	EngineICU:      {acceptsDict: false, segment: segmentICU},
}

func segmentNewMM(text string, custom *dict.Trie) ([]string, error) {
	return newmm.Segment(text, resolveDict(custom)), nil
}

func segmentLongest(text string, custom *dict.Trie) ([]string, error) {
	return longest.Segment(text, resolveDict(custom)), nil
}

func segmentMultiCut(text string, custom *dict.Trie) ([]string, error) {
	return multicut.Segment(text, resolveDict(custom)), nil
}

// segmentULMFiT delegates to the same segmentation as newmm but always uses
// the frozen dictionary snapshot; any custom dictionary is ignored.
func segmentULMFiT(text string, _ *dict.Trie) ([]string, error) {
	return newmm.Segment(text, FrozenDict()), nil
}

// Collaborator hooks. The deepcut and icu engines wrap external segmenters
// that are not part of this module; a build that links one registers it
// here. The deepcut contract takes a raw vocabulary list rather than a
// trie, so a custom dictionary is converted before the call.
var (
	deepcutSegment func(text string, vocab []string) ([]string, error)
	icuSegment     func(text string) ([]string, error)
)

// RegisterDeepcut installs an external deepcut segmenter. A nil vocab means
// the segmenter should use its own internal vocabulary and model.
func RegisterDeepcut(fn func(text string, vocab []string) ([]string, error)) {
	deepcutSegment = fn
}

// RegisterICU installs an external ICU boundary-analysis segmenter.
func RegisterICU(fn func(text string) ([]string, error)) {
	icuSegment = fn
}

func segmentDeepcut(text string, custom *dict.Trie) ([]string, error) {
	if deepcutSegment == nil {
		return nil, &EngineUnavailableError{Engine: EngineDeepcut, Reason: "no deepcut segmenter registered"}
	}
	var vocab []string
	if custom != nil {
		vocab = custom.Words()
	}
	return deepcutSegment(text, vocab)
}

func segmentICU(text string, _ *dict.Trie) ([]string, error) {
	if icuSegment == nil {
		return nil, &EngineUnavailableError{Engine: EngineICU, Reason: "no ICU segmenter registered"}
	}
	return icuSegment(text)
}

func resolveDict(custom *dict.Trie) *dict.Trie {
	if custom != nil {
		return custom
	}
	return DefaultDict()
}

// options collects the per-call settings shared by the entry points.
type options struct {
	engine         string
	custom         *dict.Trie
	keepWhitespace bool
}

// Option configures a tokenization call.
type Option func(*options)

// WithEngine selects the segmentation engine by name.
func WithEngine(name string) Option {
	return func(o *options) { o.engine = name }
}

// WithDict supplies a custom dictionary trie. Engines that do not accept a
// custom dictionary ignore it.
func WithDict(t *dict.Trie) Option {
	return func(o *options) { o.custom = t }
}

// WithoutWhitespace drops whitespace tokens from word segmentation output:
// the ASCII space character is stripped from both ends of every token and
// tokens that become empty are removed. Tabs and newlines inside a token
// are never altered.
func WithoutWhitespace() Option {
	return func(o *options) { o.keepWhitespace = false }
}

// unknownEngineWarned limits the unknown-name deprecation warning to once
// per name per process.
var unknownEngineWarned sync.Map

// Word segments text into words. The default engine is newmm; see the
// Engine* constants for the alternatives. An unrecognized engine name
// behaves exactly as newmm. Empty text yields an empty result before any
// engine runs.
func Word(text string, opts ...Option) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	o := options{engine: EngineNewMM, keepWhitespace: true}
	for _, opt := range opts {
		opt(&o)
	}

	eng, ok := wordEngines[o.engine]
	if !ok {
		if _, warned := unknownEngineWarned.LoadOrStore(o.engine, true); !warned {
			slog.Warn("unknown word engine, falling back to default; this leniency may become an error",
				"engine", o.engine, "default", EngineNewMM)
		}
		eng = wordEngines[EngineNewMM]
	}

	segments, err := eng.segment(text, o.custom)
	if err != nil {
		return nil, err
	}
	if !o.keepWhitespace {
		segments = dropWhitespace(segments)
	}
	return segments, nil
}

// dropWhitespace strips ASCII spaces (only) from token ends and removes
// tokens that become empty.
func dropWhitespace(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, token := range segments {
		token = strings.Trim(token, " ")
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}

// spaceRuns matches runs of the ASCII space character for the plain
// whitespace sentence engine.
var spaceRuns = regexp.MustCompile(" +")

// Sent splits text into sentence-like segments. This is whitespace-driven,
// not linguistic: the whitespace engine splits on runs of ASCII spaces and
// preserves embedded newlines; the default (whitespace+newline) splits on
// any run of generic whitespace and drops empty segments.
func Sent(text string, opts ...Option) []string {
	if text == "" {
		return nil
	}
	o := options{engine: EngineWhitespaceNewline}
	for _, opt := range opts {
		opt(&o)
	}
	if o.engine == EngineWhitespace {
		return spaceRuns.Split(text, -1)
	}
	return strings.Fields(text)
}

// Subword splits text into inseparable Thai Character Clusters. The
// default engine is tcc; etcc applies the more aggressive enhanced rules.
// Concatenating the result reproduces the input exactly, with whitespace
// retained as its own units.
func Subword(text string, opts ...Option) []string {
	if text == "" {
		return nil
	}
	o := options{engine: EngineTCC}
	for _, opt := range opts {
		opt(&o)
	}
	if o.engine == EngineETCC {
		return tcc.EnhancedClusters(text)
	}
	return tcc.Clusters(text)
}

// Syllable segments text into syllables, whitespace retained. It first
// runs word segmentation (newmm, default word dictionary) over the full
// input, then re-segments every resulting token against the syllable
// dictionary. Because the second pass operates only within already-bounded
// words, syllable matches can never cross a word boundary; whitespace
// tokens match no syllable entry and pass through unchanged. Concatenating
// the output reproduces the input exactly.
func Syllable(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	words, err := Word(text)
	if err != nil {
		return nil, err
	}
	syllables := SyllableDict()
	var out []string
	for _, word := range words {
		subs, err := Word(word, WithDict(syllables))
		if err != nil {
			return nil, err
		}
		out = append(out, subs...)
	}
	return out, nil
}
