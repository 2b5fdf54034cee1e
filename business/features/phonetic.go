// Package features turns candidate name strings into the phonetic,
// orthographic, and intra-batch confusion signals consumed by the shadow
// scoring model. Everything here is a pure function of its input.
package features

import "strings"

// vowel set includes the accented vowels that show up in Italian-flavored
// candidates.
const vowels = "aeiouàèìòùáéíóú"

var italianSuffixes = []string{"ova", "ella", "ina", "ora", "eva", "elo", "ari", "eno"}

type PhoneticFeatures struct {
	SyllableCount    int     `json:"syllable_count"`
	VowelRatio       float64 `json:"vowel_ratio"`
	OnsetComplexity  int     `json:"onset_complexity"`
	HasItalianSuffix bool    `json:"has_italian_suffix"`
}

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || isVowel(r)
}

// Phonetic extracts the phonetic feature block for one name.
func Phonetic(name string) PhoneticFeatures {
	lower := []rune(strings.ToLower(name))

	return PhoneticFeatures{
		SyllableCount:    syllableCount(lower),
		VowelRatio:       vowelRatio(lower),
		OnsetComplexity:  onsetComplexity(lower),
		HasItalianSuffix: hasItalianSuffix(string(lower)),
	}
}

// syllableCount counts maximal runs of vowel characters, with a floor of 1.
func syllableCount(lower []rune) int {
	count := 0
	inRun := false
	for _, r := range lower {
		if isVowel(r) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

func vowelRatio(lower []rune) float64 {
	if len(lower) == 0 {
		return 0.0
	}
	n := 0
	for _, r := range lower {
		if isVowel(r) {
			n++
		}
	}
	return float64(n) / float64(len(lower))
}

// onsetComplexity counts consonants before the first vowel, stopping at the
// first vowel or non-alphabetic character.
func onsetComplexity(lower []rune) int {
	count := 0
	for _, r := range lower {
		if isVowel(r) || !isLetter(r) {
			break
		}
		count++
	}
	return count
}

func hasItalianSuffix(lower string) bool {
	for _, sfx := range italianSuffixes {
		if strings.HasSuffix(lower, sfx) {
			return true
		}
	}
	return false
}
