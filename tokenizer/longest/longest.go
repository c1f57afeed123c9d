// Package longest implements greedy longest-matching word segmentation.
//
// Unlike the newmm engine it applies no character-cluster constraint: at
// each position the longest dictionary word wins outright. Unmatched runs
// are kept verbatim as single tokens grouped by character class, so
// concatenating the output reproduces the input exactly.
package longest

import (
	"unicode"

	"github.com/chriscorrea/thaitok/dict"
)

// Segment splits text into words using d as the vocabulary.
func Segment(text string, d *dict.Trie) []string {
	rs := []rune(text)
	if len(rs) == 0 {
		return nil
	}

	var out []string
	for p := 0; p < len(rs); {
		n := longestMatch(rs, p, d)
		if n == 0 {
			n = fallbackRun(rs, p, d)
		}
		out = append(out, string(rs[p:p+n]))
		p += n
	}
	return out
}

func longestMatch(rs []rune, p int, d *dict.Trie) int {
	lens := d.PrefixMatches(rs[p:])
	if len(lens) == 0 {
		return 0
	}
	return lens[len(lens)-1]
}

func fallbackRun(rs []rune, p int, d *dict.Trie) int {
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
		n := p + 1
		for n < len(rs) {
			if isSpace(rs[n]) || !isThai(rs[n]) || longestMatch(rs, n, d) > 0 {
				break
			}
			n++
		}
		return n - p
	}
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}
