package tokenizer

import "strings"

// isASCIIPunct reports whether r is one of the 32 ASCII punctuation
// characters: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}

// StripPunctuation removes every ASCII punctuation character from text.
// All other characters, including case and whitespace, are preserved.
func StripPunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isASCIIPunct(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Tokenize strips punctuation from text and splits the remainder on
// whitespace runs. Case is preserved; lowercasing is left to the map
// stage so the two normalization steps stay separable.
// Empty input yields an empty slice, and tokens are never empty.
func Tokenize(text string) []string {
	return strings.Fields(StripPunctuation(text))
}
