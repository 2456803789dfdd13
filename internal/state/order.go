package state

import (
	"fmt"

	"github.com/tangelo-apps/cartlist/internal/cart"
	"github.com/tangelo-apps/cartlist/internal/classify"
)

// AddItem appends a user-created item to the cart under categoryID,
// seeding its checked and quantity entries. Unknown categories fall back to
// uncategorized. Non-positive quantities are rejected.
func (s *CartState) AddItem(categoryID string, item cart.Item) error {
	if item.Quantity < 1 {
		return fmt.Errorf("%w: quantity %d", ErrInvalidInput, item.Quantity)
	}
	if item.ASIN == "" || item.Title == "" {
		return fmt.Errorf("%w: item needs id and title", ErrInvalidInput)
	}
	if _, exists := s.Item(item.ASIN); exists {
		return fmt.Errorf("%w: duplicate item %s", ErrInvalidInput, item.ASIN)
	}
	if _, ok := s.Categories[categoryID]; !ok {
		categoryID = classify.UncategorizedID
	}
	item.UserAdded = true
	s.Cart.Items = append(s.Cart.Items, item)
	s.ItemCategory[item.ASIN] = categoryID
	s.ItemOrder[categoryID] = append(s.ItemOrder[categoryID], item.ASIN)
	s.CheckedItems[item.ASIN] = false
	s.UpdatedQuantities[item.ASIN] = item.Quantity
	s.touch()
	return nil
}

// MoveItem swaps an item with its neighbor inside its category list.
// Boundary moves and unknown items are no-ops.
func (s *CartState) MoveItem(itemID, categoryID string, dir Direction) {
	list := s.ItemOrder[categoryID]
	for i, asin := range list {
		if asin != itemID {
			continue
		}
		j := i - 1
		if dir == DirDown {
			j = i + 1
		}
		if j < 0 || j >= len(list) {
			return
		}
		list[i], list[j] = list[j], list[i]
		s.touch()
		return
	}
}

// ChangeCategory reassigns an item from one category's list to the end of
// another's. Same-category moves are no-ops; unknown destinations fall back
// to uncategorized.
func (s *CartState) ChangeCategory(itemID, fromID, toID string) {
	if _, ok := s.Categories[toID]; !ok {
		toID = classify.UncategorizedID
	}
	if fromID == toID {
		return
	}
	list := s.ItemOrder[fromID]
	found := false
	for i, asin := range list {
		if asin == itemID {
			s.ItemOrder[fromID] = append(list[:i], list[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}
	s.ItemOrder[toID] = append(s.ItemOrder[toID], itemID)
	s.ItemCategory[itemID] = toID
	s.touch()
}

// SetChecked marks an item checked or unchecked.
func (s *CartState) SetChecked(itemID string, checked bool) {
	if _, ok := s.Item(itemID); !ok {
		return
	}
	s.CheckedItems[itemID] = checked
	s.touch()
}

// SetQuantity overrides an item's quantity. Callers gate this on edit mode;
// the method itself only rejects negative values.
func (s *CartState) SetQuantity(itemID string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("%w: quantity %d", ErrInvalidInput, qty)
	}
	if _, ok := s.Item(itemID); !ok {
		return nil
	}
	s.UpdatedQuantities[itemID] = qty
	s.touch()
	return nil
}
