// Package multicut implements graph-based word segmentation.
//
// Every dictionary word found in the text becomes an edge in a directed
// acyclic graph over rune positions; unmatched runs contribute fallback
// edges so the graph always reaches the end of the text. Dynamic
// programming then selects the path with the fewest tokens (maximal
// matching), preferring the longer first edge on ties. Concatenating the
// output reproduces the input exactly.
package multicut

import (
	"unicode"

	"github.com/chriscorrea/thaitok/dict"
)

// Segment splits text into words using d as the vocabulary.
func Segment(text string, d *dict.Trie) []string {
	rs := []rune(text)
	n := len(rs)
	if n == 0 {
		return nil
	}

	// edges[i] holds candidate token lengths starting at position i; the
	// fallback flag marks a run no dictionary word covers
	type edge struct {
		length   int
		fallback bool
	}
	edges := make([][]edge, n)
	for i := 0; i < n; i++ {
		for _, l := range d.PrefixMatches(rs[i:]) {
			edges[i] = append(edges[i], edge{length: l})
		}
		if len(edges[i]) == 0 {
			edges[i] = []edge{{length: fallbackRun(rs, i, d), fallback: true}}
		}
	}

	// cost[i] is the minimum number of tokens covering rs[i:]; ties prefer
	// fewer unknown (fallback) tokens, then the longer first edge
	const unreachable = 1 << 30
	cost := make([]int, n+1)
	unknown := make([]int, n+1)
	next := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		cost[i] = unreachable
		for _, e := range edges[i] {
			c := 1 + cost[i+e.length]
			u := unknown[i+e.length]
			if e.fallback {
				u++
			}
			better := c < cost[i] ||
				(c == cost[i] && u < unknown[i]) ||
				(c == cost[i] && u == unknown[i] && e.length > next[i])
			if better {
				cost[i] = c
				unknown[i] = u
				next[i] = e.length
			}
		}
	}

	var out []string
	for p := 0; p < n; p += next[p] {
		out = append(out, string(rs[p:p+next[p]]))
	}
	return out
}

// fallbackRun returns the length of the class-grouped run at rs[p], used
// where no dictionary word starts.
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
			if isSpace(rs[n]) || !isThai(rs[n]) || len(d.PrefixMatches(rs[n:])) > 0 {
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
