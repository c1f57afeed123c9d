package tokenizer

import (
	"sync"

	"github.com/chriscorrea/thaitok/corpus"
	"github.com/chriscorrea/thaitok/dict"
)

// Process-wide dictionaries, built lazily on first use. sync.OnceValue keeps
// first construction safe against concurrent callers; the resulting tries
// are immutable and shared by reference from then on.
var (
	// DefaultDict returns the trie over the general Thai word vocabulary.
	DefaultDict = sync.OnceValue(func() *dict.Trie {
		return dict.New(corpus.Words())
	})

	// FrozenDict returns the trie over the versioned word-list snapshot
	// used by the ulmfit engine for reproducible segmentation.
	FrozenDict = sync.OnceValue(func() *dict.Trie {
		words, err := corpus.Get(corpus.FrozenWordsName)
		if err != nil {
			// the snapshot is compiled into the binary; a miss is a bug
			panic(err)
		}
		return dict.New(words)
	})

	// SyllableDict returns the trie over the Thai syllable vocabulary.
	SyllableDict = sync.OnceValue(func() *dict.Trie {
		return dict.New(corpus.Syllables())
	})
)
