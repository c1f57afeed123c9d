// Package newmm implements dictionary-based maximum matching word
// segmentation constrained by Thai Character Cluster boundaries.
//
// At each position the longest dictionary word that ends on a cluster
// boundary is taken. Runs of text that no dictionary word covers are kept
// verbatim as single tokens, grouped by character class: a whitespace run,
// a run of non-Thai text, or a run of Thai clusters up to the next position
// where a dictionary word starts. Concatenating the output therefore always
// reproduces the input exactly.
package newmm

import (
	"unicode"

	"github.com/chriscorrea/thaitok/dict"
	"github.com/chriscorrea/thaitok/tokenizer/tcc"
)

// Segment splits text into words using d as the vocabulary.
func Segment(text string, d *dict.Trie) []string {
	rs := []rune(text)
	if len(rs) == 0 {
		return nil
	}
	bounds := tcc.Boundaries(rs)

	var out []string
	for p := 0; p < len(rs); {
		n := longestMatch(rs, p, d, bounds)
		if n == 0 {
			n = fallbackRun(rs, p, d, bounds)
		}
		out = append(out, string(rs[p:p+n]))
		p += n
	}
	return out
}

// longestMatch returns the rune length of the longest dictionary word
// starting at rs[p] whose end falls on a cluster boundary, or 0.
func longestMatch(rs []rune, p int, d *dict.Trie, bounds []bool) int {
	best := 0
	for _, l := range d.PrefixMatches(rs[p:]) {
		if bounds[p+l] {
			best = l // PrefixMatches is ascending, keep the last valid one
		}
	}
	return best
}

// fallbackRun returns the length of the unmatched run starting at rs[p].
func fallbackRun(rs []rune, p int, d *dict.Trie, bounds []bool) int {
	switch {
	case isSpace(rs[p]):
		n := p
		for n < len(rs) && isSpace(rs[n]) {
			n++
		}
		return n - p
	case !isThai(rs[p]):
		n := p
		for n < len(rs) && !isThai(rs[n]) && !isSpace(rs[n]) {
			n++
		}
		return n - p
	default:
		// Thai text with no dictionary coverage: advance whole clusters
		// until a dictionary word becomes available or the class changes.
		n := nextBoundary(bounds, p)
		for n < len(rs) {
			if isSpace(rs[n]) || !isThai(rs[n]) {
				break
			}
			if longestMatch(rs, n, d, bounds) > 0 {
				break
			}
			n = nextBoundary(bounds, n)
		}
		return n - p
	}
}

// nextBoundary returns the first boundary index strictly after p.
func nextBoundary(bounds []bool, p int) int {
	n := p + 1
	for n < len(bounds)-1 && !bounds[n] {
		n++
	}
	return n
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}
