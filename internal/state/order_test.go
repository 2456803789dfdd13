package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangelo-apps/cartlist/internal/classify"
)

func TestAddItem(t *testing.T) {
	t.Parallel()

	s := newState(t, groceries())
	it := item("U1", "Birthday Candles", 3)
	require.NoError(t, s.AddItem("household", it))

	require.Equal(t, "household", s.ItemCategory["U1"])
	require.Equal(t, []string{"U1"}, s.ItemOrder["household"])
	require.False(t, s.CheckedItems["U1"])
	require.Equal(t, 3, s.UpdatedQuantities["U1"])
	require.NoError(t, s.Validate())
}

func TestAddItemRejectsBadInput(t *testing.T) {
	t.Parallel()

	s := newState(t, groceries())
	require.ErrorIs(t, s.AddItem("household", item("U1", "Candles", 0)), ErrInvalidInput)
	require.ErrorIs(t, s.AddItem("household", item("U1", "Candles", -2)), ErrInvalidInput)
	require.ErrorIs(t, s.AddItem("household", item("", "Candles", 1)), ErrInvalidInput)
	require.ErrorIs(t, s.AddItem("household", item("A", "Duplicate", 1)), ErrInvalidInput)
	require.NoError(t, s.Validate())
}

func TestAddItemUnknownCategoryFallsBack(t *testing.T) {
	t.Parallel()

	s := newState(t, groceries())
	require.NoError(t, s.AddItem("ghost", item("U1", "Thing", 1)))
	require.Equal(t, classify.UncategorizedID, s.ItemCategory["U1"])
	require.NoError(t, s.Validate())
}

func TestMoveItem(t *testing.T) {
	t.Parallel()

	s := newState(t, testCart(
		item("A", "Bananas", 1),
		item("B", "Apples", 1),
		item("C", "Tomatoes", 1),
	))
	require.Equal(t, []string{"A", "B", "C"}, s.ItemOrder["produce"])

	// already first: no-op
	s.MoveItem("A", "produce", DirUp)
	require.Equal(t, []string{"A", "B", "C"}, s.ItemOrder["produce"])

	s.MoveItem("C", "produce", DirUp)
	require.Equal(t, []string{"A", "C", "B"}, s.ItemOrder["produce"])

	// already last: no-op
	s.MoveItem("B", "produce", DirDown)
	require.Equal(t, []string{"A", "C", "B"}, s.ItemOrder["produce"])

	// wrong category: no-op
	s.MoveItem("A", "dairy", DirDown)
	require.Equal(t, []string{"A", "C", "B"}, s.ItemOrder["produce"])

	require.NoError(t, s.Validate())
}

func TestChangeCategory(t *testing.T) {
	t.Parallel()

	s := newState(t, groceries())
	s.ChangeCategory("A", "produce", "pantry")
	require.Equal(t, "pantry", s.ItemCategory["A"])
	require.NotContains(t, s.ItemOrder["produce"], "A")
	require.Equal(t, "A", s.ItemOrder["pantry"][len(s.ItemOrder["pantry"])-1])
	require.NoError(t, s.Validate())

	// same category: no-op
	before := s.LastUpdated
	s.ChangeCategory("A", "pantry", "pantry")
	require.Equal(t, before, s.LastUpdated)

	// unknown destination falls back to uncategorized
	s.ChangeCategory("A", "pantry", "ghost")
	require.Equal(t, classify.UncategorizedID, s.ItemCategory["A"])
	require.NoError(t, s.Validate())
}

func TestSetCheckedAndQuantity(t *testing.T) {
	t.Parallel()

	s := newState(t, groceries())
	s.SetChecked("A", true)
	require.True(t, s.CheckedItems["A"])
	s.SetChecked("A", false)
	require.False(t, s.CheckedItems["A"])

	// unknown items are ignored
	s.SetChecked("nope", true)
	require.NotContains(t, s.CheckedItems, "nope")

	require.NoError(t, s.SetQuantity("A", 0))
	require.Equal(t, 0, s.UpdatedQuantities["A"])
	require.NoError(t, s.SetQuantity("A", 7))
	require.Equal(t, 7, s.UpdatedQuantities["A"])
	require.ErrorIs(t, s.SetQuantity("A", -1), ErrInvalidInput)
	require.NoError(t, s.Validate())
}
