package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangelo-apps/cartlist/internal/cart"
	"github.com/tangelo-apps/cartlist/internal/classify"
)

func item(asin, title string, qty int) cart.Item {
	return cart.Item{ASIN: asin, Title: title, Quantity: qty, Price: "1.00"}
}

func testCart(items ...cart.Item) *cart.Cart {
	return &cart.Cart{ID: "T4GEU", Items: items, CartCCYS: "$"}
}

func groceries() *cart.Cart {
	return testCart(
		item("A", "Organic Fresh Bananas", 1),
		item("B", "Fairlife Whole Milk", 2),
		item("C", "Tofurky Deli Slices", 1),
		item("D", "Mystery Gadget", 1),
	)
}

func newState(t *testing.T, c *cart.Cart) *CartState {
	t.Helper()
	s := NewFromCart(c, classify.NewDefault())
	require.NoError(t, s.Validate())
	return s
}

func TestNewFromCartSeeds(t *testing.T) {
	t.Parallel()

	s := newState(t, groceries())

	require.Equal(t, "produce", s.ItemCategory["A"])
	require.Equal(t, "dairy", s.ItemCategory["B"])
	require.Equal(t, "deli", s.ItemCategory["C"])
	require.Equal(t, classify.UncategorizedID, s.ItemCategory["D"])

	require.False(t, s.CheckedItems["A"])
	require.Equal(t, 2, s.UpdatedQuantities["B"])
	require.False(t, s.EditMode)
	require.Equal(t, ViewAll, s.CompletedView)
	require.Equal(t, classify.DefaultCategoryOrder(), s.CategoryOrder)
}

func TestNewFromCartPreservesCartOrderWithinBuckets(t *testing.T) {
	t.Parallel()

	s := newState(t, testCart(
		item("A", "Bananas", 1),
		item("B", "Milk", 1),
		item("C", "Apples", 1),
		item("D", "Tomatoes", 1),
	))
	require.Equal(t, []string{"A", "C", "D"}, s.ItemOrder["produce"])
	require.Equal(t, []string{"B"}, s.ItemOrder["dairy"])
}

func TestQuantityFallsBackToOriginal(t *testing.T) {
	t.Parallel()

	s := newState(t, groceries())
	require.Equal(t, 2, s.Quantity("B"))
	delete(s.UpdatedQuantities, "B")
	require.Equal(t, 2, s.Quantity("B"))
	require.Equal(t, 0, s.Quantity("nope"))
}

func TestValidateCatchesBrokenInvariants(t *testing.T) {
	t.Parallel()

	breakers := map[string]func(*CartState){
		"missing uncategorized": func(s *CartState) {
			delete(s.Categories, classify.UncategorizedID)
			s.CategoryOrder = s.CategoryOrder[:len(s.CategoryOrder)-1]
		},
		"order not a permutation": func(s *CartState) {
			s.CategoryOrder[0] = s.CategoryOrder[1]
		},
		"item in two lists": func(s *CartState) {
			s.ItemOrder["dairy"] = append(s.ItemOrder["dairy"], "A")
		},
		"unmapped item": func(s *CartState) {
			delete(s.ItemCategory, "A")
		},
		"mapping to unknown category": func(s *CartState) {
			s.ItemCategory["A"] = "ghost"
		},
		"bogus completed view": func(s *CartState) {
			s.CompletedView = "sideways"
		},
	}
	for name, brk := range breakers {
		s := newState(t, groceries())
		brk(s)
		require.Error(t, s.Validate(), name)
	}
}
