// Package classify assigns cart items to grocery categories by scoring
// item titles against keyword and phrase tables.
package classify

import (
	"strings"

	"github.com/tangelo-apps/cartlist/internal/textnorm"
)

// Classifier maps an item title to a category id. Implementations must be
// pure: same title, same answer.
type Classifier interface {
	Classify(title string) string
}

const phraseWeight = 3

// KeywordClassifier scores titles against an ordered table of category
// definitions. Phrase hits count triple; ties fall back to phrase evidence,
// then to position in the display order.
type KeywordClassifier struct {
	defs         []CategoryDef
	displayIndex map[string]int
}

// NewKeywordClassifier builds a classifier from defs. displayOrder supplies
// the final tie-break; categories missing from it sort last.
func NewKeywordClassifier(defs []CategoryDef, displayOrder []string) *KeywordClassifier {
	idx := make(map[string]int, len(displayOrder))
	for i, id := range displayOrder {
		idx[id] = i
	}
	return &KeywordClassifier{defs: defs, displayIndex: idx}
}

// NewDefault returns a classifier over the built-in grocery tables.
func NewDefault() *KeywordClassifier {
	return NewKeywordClassifier(DefaultDefs(), DefaultCategoryOrder())
}

// Classify returns the best-scoring category id for title, or
// UncategorizedID when nothing scores above zero.
func (c *KeywordClassifier) Classify(title string) string {
	normalized := " " + textnorm.Normalize(title) + " "
	tokens := textnorm.Tokenize(title)

	bestID := UncategorizedID
	bestScore, bestPhrases := 0, 0

	for _, def := range c.defs {
		phrases := 0
		for _, p := range def.Phrases {
			if strings.Contains(normalized, " "+textnorm.Normalize(p)+" ") {
				phrases++
			}
		}
		score := phrases * phraseWeight
		for _, kw := range def.Keywords {
			if tokens[kw] || tokens[textnorm.Singularize(kw)] {
				score++
			}
		}
		if score == 0 {
			continue
		}
		if score > bestScore ||
			(score == bestScore && phrases > bestPhrases) ||
			(score == bestScore && phrases == bestPhrases && c.before(def.ID, bestID)) {
			bestID, bestScore, bestPhrases = def.ID, score, phrases
		}
	}
	return bestID
}

func (c *KeywordClassifier) before(a, b string) bool {
	return c.orderOf(a) < c.orderOf(b)
}

func (c *KeywordClassifier) orderOf(id string) int {
	if i, ok := c.displayIndex[id]; ok {
		return i
	}
	return len(c.displayIndex)
}
