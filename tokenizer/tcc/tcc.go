// Package tcc segments Thai text into Thai Character Clusters (TCCs).
//
// A TCC is the smallest inseparable unit of Thai writing: a base character
// together with the dependent vowels and tone marks that attach to it
// (Theeramunkong et al. 2000). Splitting inside a cluster produces character
// sequences that cannot be spelled out, so cluster boundaries are the only
// legal cut points for the dictionary-based word segmentation engines.
//
// The cluster rules are expressed as a regular expression alternation over
// Thai character classes. One rule needs lookahead, which the standard
// library regexp cannot express, so the table is compiled with
// dlclark/regexp2.
package tcc

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Cluster rule templates, most specific first. In the templates, "c" is a
// Thai consonant [ก-ฮ] and "t" an optional tone mark [่-๋]. Alternation is
// first-match, so a rule must precede every rule it would shadow.
var ruleTemplates = []string{
	"เc็c",
	"เcctาะ",
	"เccีtยะ",
	"เccีtย(?=[เ-ไก-ฮ]|$)",
	"เcc็c",
	"เcิc์c",
	"เcิtc",
	"เcีtยะ?",
	"เcืtอะ?",
	"เctา?ะ?",
	"แc็c",
	"แcc์",
	"แctะ",
	"แcc็c",
	"แccc์",
	"โctะ",
	"[เ-ไ]ct",
	"cัtวะ",
	"c[ัื]tc[ุิะ]?",
	"c[ิุู]์",
	"c[ะ-ู]t",
	"c็",
	"ct[ะาำ]?",
}

var clusterPattern = compileRules(ruleTemplates)

func compileRules(templates []string) *regexp2.Regexp {
	expanded := make([]string, len(templates))
	for i, tmpl := range templates {
		r := strings.NewReplacer("c", "[ก-ฮ]", "t", "[่-๋]?")
		expanded[i] = r.Replace(tmpl)
	}
	return regexp2.MustCompile(`^(?:`+strings.Join(expanded, "|")+`)`, regexp2.None)
}

// Clusters splits text into Thai Character Clusters. Non-Thai runes,
// including whitespace, form one cluster each, so concatenating the result
// always reproduces the input exactly.
func Clusters(text string) []string {
	if text == "" {
		return nil
	}
	rs := []rune(text)
	out := make([]string, 0, len(rs))
	for p := 0; p < len(rs); {
		n := matchLen(rs[p:])
		out = append(out, string(rs[p:p+n]))
		p += n
	}
	return out
}

// Boundaries returns a slice of len(rs)+1 flags marking the legal cut
// points in rs: index i is true when a cluster boundary falls immediately
// before rs[i]. Positions 0 and len(rs) are always boundaries.
func Boundaries(rs []rune) []bool {
	bounds := make([]bool, len(rs)+1)
	bounds[0] = true
	for p := 0; p < len(rs); {
		p += matchLen(rs[p:])
		bounds[p] = true
	}
	return bounds
}

// matchLen returns the rune length of the cluster starting at rs[0].
// A position where no rule matches consumes exactly one rune.
func matchLen(rs []rune) int {
	m, err := clusterPattern.FindRunesMatch(rs)
	if err != nil || m == nil || m.Length == 0 {
		return 1
	}
	return m.Length
}
