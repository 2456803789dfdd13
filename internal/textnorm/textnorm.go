// Package textnorm prepares item titles for keyword matching.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var trademarkReplacer = strings.NewReplacer("™", "", "®", "", "©", "", "℠", "")

// Normalize lowercases, drops diacritics and trademark symbols, and
// collapses every run of non-alphanumeric characters into a single space.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = trademarkReplacer.Replace(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		} else {
			space = true
		}
	}
	return b.String()
}

// Tokenize normalizes text, splits it on whitespace, and returns the token
// set including a naive singular variant of each token.
func Tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(Normalize(text)) {
		tokens[tok] = true
		tokens[Singularize(tok)] = true
	}
	return tokens
}

// Singularize applies naive English plural rules, first match wins. Tokens
// shorter than four runes pass through untouched so words like "gas" or
// "ies" are not mangled.
func Singularize(token string) string {
	if utf8.RuneCountInString(token) < 4 {
		return token
	}
	switch {
	case strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "es"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s"):
		return token[:len(token)-1]
	}
	return token
}
