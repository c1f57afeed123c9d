// Package corpus provides the embedded Thai vocabularies that seed the
// process-wide dictionaries: a general word list, a syllable list, and a
// frozen word-list snapshot kept for reproducible segmentation.
//
// The vocabularies are compiled into the binary with go:embed, so no runtime
// I/O or external data files are involved. Each accessor returns a fresh
// slice; callers may reorder or mutate the result freely.
package corpus

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed data/words_th.txt
var wordsFile string

//go:embed data/syllables_th.txt
var syllablesFile string

//go:embed data/words_th_frozen_201810.txt
var frozenFile string

// FrozenWordsName is the name of the versioned word-list snapshot. The
// snapshot never changes between releases, so segmentation against it is
// reproducible independent of updates to the general vocabulary.
const FrozenWordsName = "words_th_frozen_201810.txt"

// named corpora addressable through Get
var corpora = map[string]*string{
	"words_th.txt":     &wordsFile,
	"syllables_th.txt": &syllablesFile,
	FrozenWordsName:    &frozenFile,
}

// Words returns the general Thai word vocabulary.
func Words() []string {
	return splitLines(wordsFile)
}

// Syllables returns the Thai syllable vocabulary, distinct from the general
// word vocabulary and used to split already-bounded words into
// pronunciation units.
func Syllables() []string {
	return splitLines(syllablesFile)
}

// Get returns a named corpus, such as the frozen snapshot FrozenWordsName.
func Get(name string) ([]string, error) {
	data, ok := corpora[name]
	if !ok {
		return nil, fmt.Errorf("corpus: unknown corpus %q", name)
	}
	return splitLines(*data), nil
}

func splitLines(data string) []string {
	var out []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
