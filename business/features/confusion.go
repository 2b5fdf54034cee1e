package features

import "strings"

// accentFold maps the accented vowels onto their plain forms before coding.
var accentFold = strings.NewReplacer(
	"à", "a", "á", "a",
	"è", "e", "é", "e",
	"ì", "i", "í", "i",
	"ò", "o", "ó", "o",
	"ù", "u", "ú", "u",
)

// digraphs collapsed in coding order.
var digraphs = []struct{ from, to string }{
	{"ph", "f"},
	{"gh", "g"},
	{"ch", "k"},
	{"sh", "x"},
	{"th", "t"},
	{"ck", "k"},
	{"qu", "k"},
	{"gn", "n"},
}

// silentInitials drops the letter English speakers never pronounce.
var silentInitials = []struct{ from, to string }{
	{"kn", "n"},
	{"wr", "r"},
	{"ps", "s"},
	{"pn", "n"},
}

// consonant equivalence: voiced/voiceless and hard/soft pairs fold together.
var consonantFold = map[rune]rune{
	'b': 'p',
	'd': 't',
	'z': 's',
	'c': 'k',
	'q': 'k',
	'v': 'f',
	'g': 'j',
	'm': 'n',
}

const codeMaxLen = 6

// PhoneticCode reduces a name to a simplified sound key. Two names that
// reduce to the same key are treated as confusable when spoken.
func PhoneticCode(name string) string {
	s := accentFold.Replace(strings.ToLower(name))

	// keep letters only
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" {
		return ""
	}

	// 1. strip a trailing plural S
	if len(s) > 1 && strings.HasSuffix(s, "s") {
		s = s[:len(s)-1]
	}

	// 2. collapse known digraphs
	for _, d := range digraphs {
		s = strings.ReplaceAll(s, d.from, d.to)
	}

	// 3. drop silent initial letters
	for _, si := range silentInitials {
		if strings.HasPrefix(s, si.from) {
			s = si.to + s[len(si.from):]
			break
		}
	}

	// 4. fold an initial vowel cluster to a single marker
	runes := []rune(s)
	if len(runes) > 0 && isPlainVowel(runes[0]) {
		i := 0
		for i < len(runes) && isPlainVowel(runes[i]) {
			i++
		}
		runes = append([]rune{'a'}, runes[i:]...)
	}

	// 5. delete all other vowels
	out := runes[:0]
	for i, r := range runes {
		if i == 0 || !isPlainVowel(r) {
			out = append(out, r)
		}
	}
	runes = out

	// 6. collapse repeated consonants
	collapsed := runes[:0]
	var prev rune
	for i, r := range runes {
		if i == 0 || r != prev {
			collapsed = append(collapsed, r)
		}
		prev = r
	}
	runes = collapsed

	// 7. consonant equivalence map
	for i, r := range runes {
		if folded, ok := consonantFold[r]; ok {
			runes[i] = folded
		}
	}

	// 8. truncate
	if len(runes) > codeMaxLen {
		runes = runes[:codeMaxLen]
	}

	return string(runes)
}

func isPlainVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// BatchConfusionScores scores every name in a batch by how many other batch
// members reduce to the same phonetic code. 0 means unique-sounding.
func BatchConfusionScores(names []string) map[string]float64 {
	scores := map[string]float64{}
	if len(names) == 0 {
		return scores
	}

	codes := make([]string, len(names))
	codeCounts := map[string]int{}
	for i, name := range names {
		codes[i] = PhoneticCode(name)
		codeCounts[codes[i]]++
	}

	batchSize := float64(len(names))
	for i, name := range names {
		scores[name] = float64(codeCounts[codes[i]]-1) / batchSize
	}

	return scores
}
