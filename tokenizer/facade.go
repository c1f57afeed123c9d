package tokenizer

import "github.com/chriscorrea/thaitok/dict"

// Tokenizer is a stateful convenience wrapper binding one dictionary and
// one engine name across repeated calls. The dictionary is resolved exactly
// once, at construction, and never again; only the engine name can change
// afterward, through SetEngine.
//
// A Tokenizer is safe for concurrent WordTokenize calls as long as no
// goroutine calls SetEngine concurrently.
type Tokenizer struct {
	trie   *dict.Trie
	engine string
}

// NewTokenizer creates a Tokenizer. customDict may be anything dict.Build
// accepts, or nil to bind the process-wide default dictionary. The engine
// defaults to newmm and can be overridden with WithEngine.
func NewTokenizer(customDict any, opts ...Option) (*Tokenizer, error) {
	o := options{engine: EngineNewMM}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tokenizer{engine: o.engine}
	if customDict == nil {
		t.trie = DefaultDict()
	} else {
		trie, err := dict.Build(customDict)
		if err != nil {
			return nil, err
		}
		t.trie = trie
	}
	return t, nil
}

// WordTokenize segments text using the bound dictionary and the current
// engine name.
func (t *Tokenizer) WordTokenize(text string) ([]string, error) {
	return Word(text, WithDict(t.trie), WithEngine(t.engine))
}

// SetEngine switches the word segmentation engine for subsequent calls.
// The bound dictionary is unaffected.
func (t *Tokenizer) SetEngine(name string) {
	t.engine = name
}
