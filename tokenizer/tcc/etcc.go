package tcc

import "unicode/utf8"

// finalConsonants are consonants that commonly close a Thai syllable.
// EnhancedClusters attaches a bare cluster made of one of these to the
// cluster before it.
var finalConsonants = map[rune]struct{}{
	'ง': {}, 'น': {}, 'ม': {}, 'ย': {}, 'ว': {},
	'ก': {}, 'ด': {}, 'บ': {},
}

// EnhancedClusters splits text into enhanced Thai Character Clusters
// (Inrut et al. 2001): the plain TCC segmentation with an extra pass that
// merges a trailing final consonant into the preceding cluster. The
// grouping is more aggressive than Clusters but keeps the same contract:
// concatenating the result reproduces the input exactly.
func EnhancedClusters(text string) []string {
	base := Clusters(text)
	if len(base) < 2 {
		return base
	}
	out := make([]string, 0, len(base))
	for _, cluster := range base {
		if len(out) > 0 && isFinalConsonant(cluster) && isMergeable(out[len(out)-1]) {
			out[len(out)-1] += cluster
			continue
		}
		out = append(out, cluster)
	}
	return out
}

// isFinalConsonant reports whether cluster is a single bare consonant that
// can close a syllable.
func isFinalConsonant(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	if size != len(cluster) {
		return false
	}
	_, ok := finalConsonants[r]
	return ok
}

// isMergeable reports whether a final consonant may attach to prev: prev
// must be a multi-rune Thai cluster, not a lone consonant or non-Thai text.
func isMergeable(prev string) bool {
	if utf8.RuneCountInString(prev) < 2 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(prev)
	return isThai(r)
}

func isThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}
