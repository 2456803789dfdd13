package state

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/tangelo-apps/cartlist/internal/classify"
	"github.com/tangelo-apps/cartlist/internal/textnorm"
)

// CreateCategory adds a user category with a generated id and appends it to
// the display order.
func (s *CartState) CreateCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, fmt.Errorf("%w: empty category name", ErrInvalidInput)
	}
	c := Category{ID: uuid.NewString(), Name: name}
	s.Categories[c.ID] = c
	s.CategoryOrder = append(s.CategoryOrder, c.ID)
	s.ItemOrder[c.ID] = []string{}
	s.touch()
	return c, nil
}

// RenameCategory updates a category's display name. Unknown ids are a no-op.
func (s *CartState) RenameCategory(categoryID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty category name", ErrInvalidInput)
	}
	c, ok := s.Categories[categoryID]
	if !ok {
		return nil
	}
	c.Name = name
	s.Categories[categoryID] = c
	s.touch()
	return nil
}

// DeleteCategory removes a category after migrating its items, in their
// current relative order, to the end of the uncategorized list. Deleting
// the uncategorized bucket fails before any state changes.
func (s *CartState) DeleteCategory(categoryID string) error {
	if categoryID == classify.UncategorizedID {
		return fmt.Errorf("%w: %s", ErrProtectedCategory, categoryID)
	}
	if _, ok := s.Categories[categoryID]; !ok {
		return nil
	}
	for _, asin := range s.ItemOrder[categoryID] {
		s.ItemCategory[asin] = classify.UncategorizedID
		s.ItemOrder[classify.UncategorizedID] = append(s.ItemOrder[classify.UncategorizedID], asin)
	}
	delete(s.ItemOrder, categoryID)
	delete(s.Categories, categoryID)
	for i, cid := range s.CategoryOrder {
		if cid == categoryID {
			s.CategoryOrder = append(s.CategoryOrder[:i], s.CategoryOrder[i+1:]...)
			break
		}
	}
	s.touch()
	return nil
}

// MoveCategory swaps a category with its neighbor in the display order.
// Boundary moves and unknown ids are no-ops.
func (s *CartState) MoveCategory(categoryID string, dir Direction) {
	for i, cid := range s.CategoryOrder {
		if cid != categoryID {
			continue
		}
		j := i - 1
		if dir == DirDown {
			j = i + 1
		}
		if j < 0 || j >= len(s.CategoryOrder) {
			return
		}
		s.CategoryOrder[i], s.CategoryOrder[j] = s.CategoryOrder[j], s.CategoryOrder[i]
		s.touch()
		return
	}
}

// ClosestName finds an existing category whose name matches the given one
// up to normalization and a single edit. Used to avoid minting
// near-duplicate user categories.
func (s *CartState) ClosestName(name string) (Category, bool) {
	want := textnorm.Normalize(name)
	if want == "" {
		return Category{}, false
	}
	for _, cid := range s.CategoryOrder {
		c := s.Categories[cid]
		if levenshtein.ComputeDistance(want, textnorm.Normalize(c.Name)) <= 1 {
			return c, true
		}
	}
	return Category{}, false
}
