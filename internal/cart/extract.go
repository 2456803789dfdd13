package cart

import (
	"regexp"
	"strings"
)

var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https://share-a-cart\.com/get/([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)^([A-Z0-9]+)$`),
}

// ExtractID pulls a cart identifier out of a share link or a bare token.
// The canonical form is uppercase. ok is false when the input matches
// neither shape.
func ExtractID(input string) (id string, ok bool) {
	input = strings.TrimSpace(input)
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(input); m != nil {
			return strings.ToUpper(m[1]), true
		}
	}
	return "", false
}
