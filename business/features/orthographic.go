package features

import "strings"

// commonBigrams is a fixed set of frequent English/Romance letter pairs.
// Membership of a name's 2-character windows in this set is a cheap
// pronounceability proxy.
var commonBigrams = map[string]struct{}{}

func init() {
	for _, bg := range []string{
		"th", "he", "in", "er", "an", "re", "on", "at", "en", "nd",
		"ti", "es", "or", "te", "of", "ed", "is", "it", "al", "ar",
		"st", "to", "nt", "ng", "se", "ha", "as", "ou", "io", "le",
		"ve", "co", "me", "de", "hi", "ri", "ro", "ic", "ne", "ea",
		"ra", "ce", "li", "ch", "ll", "be", "ma", "si", "om", "ur",
		"el", "la", "na", "va", "ta", "lo", "no", "vi", "so", "ia",
	} {
		commonBigrams[bg] = struct{}{}
	}
}

// compoundWords flags candidate names built by gluing a plain English word
// onto a stem.
var compoundWords = []string{"head", "bag", "home", "shop", "lab", "hub", "box", "base"}

// suffixClassRules is ordered: the first matching suffix wins, compound is
// checked after all suffix rules.
var suffixClassRules = []struct {
	suffix string
	class  string
}{
	{"ova", "ova_type"},
	{"ella", "ella_type"},
	{"ina", "ina_type"},
	{"ora", "ora_type"},
	{"elo", "elo_type"},
	{"ari", "ari_type"},
}

type OrthographicFeatures struct {
	NameLength      int     `json:"name_length"`
	BigramFrequency float64 `json:"bigram_frequency"`
	SuffixClass     string  `json:"suffix_class"`
}

// Orthographic extracts the orthographic feature block for one name.
func Orthographic(name string) OrthographicFeatures {
	return OrthographicFeatures{
		NameLength:      len([]rune(name)),
		BigramFrequency: bigramFrequency(name),
		SuffixClass:     suffixClass(name),
	}
}

// bigramFrequency is the fraction of consecutive lowercased 2-character
// windows that belong to the common set. Names shorter than 2 characters
// score 0.0.
func bigramFrequency(name string) float64 {
	lower := []rune(strings.ToLower(name))
	if len(lower) < 2 {
		return 0.0
	}

	hits := 0
	windows := len(lower) - 1
	for i := 0; i < windows; i++ {
		if _, ok := commonBigrams[string(lower[i:i+2])]; ok {
			hits++
		}
	}
	return float64(hits) / float64(windows)
}

// suffixClass applies the ordered rule list; first match wins.
func suffixClass(name string) string {
	lower := strings.ToLower(name)

	for _, rule := range suffixClassRules {
		if strings.HasSuffix(lower, rule.suffix) {
			return rule.class
		}
	}
	for _, word := range compoundWords {
		if strings.Contains(lower, word) {
			return "compound"
		}
	}
	return "other"
}
