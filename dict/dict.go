// Package dict provides the immutable prefix dictionary used by the
// dictionary-based word segmentation engines.
//
// A Trie is built once from a vocabulary and never mutated afterward, so a
// single instance can be shared by reference across any number of concurrent
// callers without locking. Build accepts several source shapes (an existing
// Trie, a file path, a slice, a set-shaped map, or an iterator), mirroring the
// ways callers typically hold a vocabulary.
//
// Usage Example:
//
//	trie, err := dict.Build("/path/to/wordlist.txt")
//	trie, err := dict.Build([]string{"ไป", "กิน", "ข้าว"})
package dict

import (
	"fmt"
	"iter"
	"os"
	"sort"
	"strings"
)

// UnsupportedSourceError reports a dictionary source whose type Build does
// not know how to turn into a Trie.
type UnsupportedSourceError struct {
	Source any
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf(
		"dict: unsupported dictionary source type %T (want *Trie, path string, []string, map[string]struct{}, map[string]bool, or iter.Seq[string])",
		e.Source)
}

// node is a single trie node; children are keyed by rune.
type node struct {
	children map[rune]*node
	terminal bool
}

// Trie is an immutable prefix dictionary over a vocabulary of strings.
// The zero value is not usable; construct with Build or New.
type Trie struct {
	root *node
	size int
}

// Build creates a Trie from one of the supported source shapes:
//
//   - *Trie: returned unchanged (idempotent)
//   - string: treated as a file path, one vocabulary entry per line (UTF-8)
//   - []string: entries used directly
//   - map[string]struct{}: keys used as entries
//   - map[string]bool: keys with a true value used as entries
//   - iter.Seq[string]: yielded values used as entries
//
// A plain string is always a path, never a sequence of characters; the
// string case is therefore checked before any sequence handling. Duplicate
// entries collapse and ordering is irrelevant. Any other source type yields
// an *UnsupportedSourceError; a file that cannot be read propagates the
// underlying I/O error.
func Build(source any) (*Trie, error) {
	switch src := source.(type) {
	case *Trie:
		return src, nil
	case string:
		words, err := readWordFile(src)
		if err != nil {
			return nil, err
		}
		return New(words), nil
	case []string:
		return New(src), nil
	case map[string]struct{}:
		words := make([]string, 0, len(src))
		for w := range src {
			words = append(words, w)
		}
		return New(words), nil
	case map[string]bool:
		words := make([]string, 0, len(src))
		for w, ok := range src {
			if ok {
				words = append(words, w)
			}
		}
		return New(words), nil
	case iter.Seq[string]:
		var words []string
		for w := range src {
			words = append(words, w)
		}
		return New(words), nil
	default:
		return nil, &UnsupportedSourceError{Source: source}
	}
}

// New builds a Trie directly from a slice of vocabulary words.
// Empty strings are ignored and duplicates collapse.
func New(words []string) *Trie {
	t := &Trie{root: &node{}}
	for _, w := range words {
		t.insert(w)
	}
	return t
}

func (t *Trie) insert(word string) {
	if word == "" {
		return
	}
	n := t.root
	for _, r := range word {
		if n.children == nil {
			n.children = make(map[rune]*node)
		}
		child, ok := n.children[r]
		if !ok {
			child = &node{}
			n.children[r] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		t.size++
	}
}

// Contains reports whether word is in the vocabulary.
func (t *Trie) Contains(word string) bool {
	if word == "" {
		return false
	}
	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			return false
		}
		n = child
	}
	return n.terminal
}

// Len returns the number of distinct words in the vocabulary.
func (t *Trie) Len() int {
	return t.size
}

// PrefixMatches returns the rune-lengths, in ascending order, of every
// vocabulary word that is a prefix of rs. An empty result means no word in
// the dictionary starts at rs[0].
func (t *Trie) PrefixMatches(rs []rune) []int {
	var lens []int
	n := t.root
	for i, r := range rs {
		child, ok := n.children[r]
		if !ok {
			break
		}
		n = child
		if n.terminal {
			lens = append(lens, i+1)
		}
	}
	return lens
}

// Words returns the full vocabulary as a freshly allocated, sorted slice.
// This is the trie-to-plain-list conversion required by engines whose
// contract takes a raw vocabulary rather than a trie.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.size)
	var walk func(n *node, prefix []rune)
	walk = func(n *node, prefix []rune) {
		if n.terminal {
			words = append(words, string(prefix))
		}
		for r, child := range n.children {
			walk(child, append(prefix, r))
		}
	}
	walk(t.root, nil)
	sort.Strings(words)
	return words
}

// readWordFile reads a vocabulary file with one entry per line.
// Blank lines are skipped; a trailing \r from CRLF files is stripped.
func readWordFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dict: failed to read dictionary file %q: %w", path, err)
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}
