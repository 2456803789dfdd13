// Package state holds the persisted view-state layered on a fetched cart:
// categorization, checked marks, quantity edits, ordering and display mode.
// Everything here is a plain transformation over the CartState value; no
// storage or transport leaks in.
package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/tangelo-apps/cartlist/internal/cart"
	"github.com/tangelo-apps/cartlist/internal/classify"
)

var (
	// ErrProtectedCategory rejects deletion of the uncategorized bucket.
	ErrProtectedCategory = errors.New("category is protected")
	// ErrInvalidInput rejects empty names and non-positive quantities.
	ErrInvalidInput = errors.New("invalid input")
)

// Category is a named grouping bucket for items.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompletedView selects how checked items are displayed.
type CompletedView string

const (
	ViewAll      CompletedView = "all"
	ViewHide     CompletedView = "hide"
	ViewCollapse CompletedView = "collapse"
)

// Direction moves an item or category relative to its neighbor.
type Direction string

const (
	DirUp   Direction = "up"
	DirDown Direction = "down"
)

// CartState is the persisted root for one cart id.
type CartState struct {
	Cart              *cart.Cart          `json:"cart"`
	CheckedItems      map[string]bool     `json:"checkedItems"`
	UpdatedQuantities map[string]int      `json:"updatedQuantities"`
	Categories        map[string]Category `json:"categories"`
	CategoryOrder     []string            `json:"categoryOrder"`
	ItemCategory      map[string]string   `json:"itemCategory"`
	ItemOrder         map[string][]string `json:"itemOrder"`
	EditMode          bool                `json:"editMode"`
	CompletedView     CompletedView       `json:"completedView"`
	LastUpdated       int64               `json:"lastUpdated"`
}

// NewFromCart builds a fresh state for a fetched cart: every item is
// classified, per-category order follows the cart's own item order, and all
// user-editable fields start at their defaults.
func NewFromCart(c *cart.Cart, cls classify.Classifier) *CartState {
	s := &CartState{
		Cart:              c,
		CheckedItems:      make(map[string]bool, len(c.Items)),
		UpdatedQuantities: make(map[string]int, len(c.Items)),
		Categories:        make(map[string]Category),
		CategoryOrder:     classify.DefaultCategoryOrder(),
		ItemCategory:      make(map[string]string, len(c.Items)),
		ItemOrder:         make(map[string][]string),
		CompletedView:     ViewAll,
		LastUpdated:       time.Now().UnixMilli(),
	}
	for id, name := range classify.DefaultCategories() {
		s.Categories[id] = Category{ID: id, Name: name}
	}
	for _, cid := range s.CategoryOrder {
		s.ItemOrder[cid] = []string{}
	}
	for _, it := range c.Items {
		s.CheckedItems[it.ASIN] = false
		s.UpdatedQuantities[it.ASIN] = it.Quantity
		cid := cls.Classify(it.Title)
		if _, ok := s.Categories[cid]; !ok {
			cid = classify.UncategorizedID
		}
		s.ItemCategory[it.ASIN] = cid
		s.ItemOrder[cid] = append(s.ItemOrder[cid], it.ASIN)
	}
	return s
}

func (s *CartState) touch() {
	s.LastUpdated = time.Now().UnixMilli()
}

// Item returns the cart item for an asin.
func (s *CartState) Item(asin string) (cart.Item, bool) {
	for _, it := range s.Cart.Items {
		if it.ASIN == asin {
			return it, true
		}
	}
	return cart.Item{}, false
}

// Quantity returns the effective quantity for an item: the user edit if one
// exists, the item's original quantity otherwise.
func (s *CartState) Quantity(asin string) int {
	if q, ok := s.UpdatedQuantities[asin]; ok {
		return q
	}
	if it, ok := s.Item(asin); ok {
		return it.Quantity
	}
	return 0
}

// Validate checks the structural invariants. A stored state failing
// validation is discarded rather than repaired.
func (s *CartState) Validate() error {
	if s.Cart == nil {
		return fmt.Errorf("state has no cart")
	}
	if _, ok := s.Categories[classify.UncategorizedID]; !ok {
		return fmt.Errorf("missing %s category", classify.UncategorizedID)
	}
	switch s.CompletedView {
	case ViewAll, ViewHide, ViewCollapse:
	default:
		return fmt.Errorf("unknown completedView %q", s.CompletedView)
	}
	if len(s.CategoryOrder) != len(s.Categories) {
		return fmt.Errorf("categoryOrder has %d entries for %d categories", len(s.CategoryOrder), len(s.Categories))
	}
	seenCat := make(map[string]bool, len(s.CategoryOrder))
	for _, cid := range s.CategoryOrder {
		if _, ok := s.Categories[cid]; !ok {
			return fmt.Errorf("categoryOrder references unknown category %s", cid)
		}
		if seenCat[cid] {
			return fmt.Errorf("categoryOrder repeats %s", cid)
		}
		seenCat[cid] = true
	}

	ids := s.Cart.ItemIDs()
	if len(s.ItemCategory) != len(ids) {
		return fmt.Errorf("itemCategory has %d entries for %d items", len(s.ItemCategory), len(ids))
	}
	for asin, cid := range s.ItemCategory {
		if !ids[asin] {
			return fmt.Errorf("itemCategory references unknown item %s", asin)
		}
		if _, ok := s.Categories[cid]; !ok {
			return fmt.Errorf("item %s maps to unknown category %s", asin, cid)
		}
	}

	seenItem := make(map[string]bool, len(ids))
	for cid, list := range s.ItemOrder {
		if _, ok := s.Categories[cid]; !ok {
			return fmt.Errorf("itemOrder has list for unknown category %s", cid)
		}
		for _, asin := range list {
			if seenItem[asin] {
				return fmt.Errorf("item %s ordered twice", asin)
			}
			seenItem[asin] = true
			if s.ItemCategory[asin] != cid {
				return fmt.Errorf("item %s ordered under %s but mapped to %s", asin, cid, s.ItemCategory[asin])
			}
		}
	}
	if len(seenItem) != len(s.ItemCategory) {
		return fmt.Errorf("itemOrder covers %d items, itemCategory %d", len(seenItem), len(s.ItemCategory))
	}
	return nil
}
