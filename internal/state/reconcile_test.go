package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangelo-apps/cartlist/internal/classify"
)

func TestReconcileFreshBuild(t *testing.T) {
	t.Parallel()

	fresh := groceries()
	s := Reconcile(fresh, nil, nil, classify.NewDefault())
	require.NoError(t, s.Validate())
	require.Equal(t, "produce", s.ItemCategory["A"])
	require.False(t, s.CheckedItems["A"])
}

func TestReconcilePreservesEdits(t *testing.T) {
	t.Parallel()

	cls := classify.NewDefault()
	prior := newState(t, groceries())
	prior.SetChecked("A", true)
	require.NoError(t, prior.SetQuantity("A", 5))

	s := Reconcile(groceries(), prior, nil, cls)
	require.NoError(t, s.Validate())
	require.True(t, s.CheckedItems["A"])
	require.Equal(t, 5, s.UpdatedQuantities["A"])
}

func TestReconcilePrunesVanishedItems(t *testing.T) {
	t.Parallel()

	cls := classify.NewDefault()
	prior := newState(t, groceries())
	prior.SetChecked("B", true)

	fresh := testCart(
		item("A", "Organic Fresh Bananas", 1),
		item("E", "New Sourdough Bread", 1),
	)
	s := Reconcile(fresh, prior, nil, cls)
	require.NoError(t, s.Validate())
	require.NotContains(t, s.CheckedItems, "B")
	require.NotContains(t, s.UpdatedQuantities, "B")
	require.Equal(t, "bakery", s.ItemCategory["E"])
}

func TestReconcileRebuildsMembership(t *testing.T) {
	t.Parallel()

	cls := classify.NewDefault()
	prior := newState(t, groceries())
	// the user had dragged the bananas to pantry; a reconcile reruns
	// classification, so that placement does not survive
	prior.ChangeCategory("A", "produce", "pantry")

	s := Reconcile(groceries(), prior, nil, cls)
	require.Equal(t, "produce", s.ItemCategory["A"])
}

func TestReconcileKeepsUserCategoriesAndPrefs(t *testing.T) {
	t.Parallel()

	cls := classify.NewDefault()
	prior := newState(t, groceries())
	custom, err := prior.CreateCategory("Party")
	require.NoError(t, err)
	prior.EditMode = true
	prior.CompletedView = ViewHide

	s := Reconcile(groceries(), prior, nil, cls)
	require.NoError(t, s.Validate())
	require.Contains(t, s.Categories, custom.ID)
	require.Contains(t, s.CategoryOrder, custom.ID)
	require.True(t, s.EditMode)
	require.Equal(t, ViewHide, s.CompletedView)
}

func TestReconcileFallsBackWhenCategoryDeleted(t *testing.T) {
	t.Parallel()

	cls := classify.NewDefault()
	prior := newState(t, groceries())
	require.NoError(t, prior.DeleteCategory("produce"))

	s := Reconcile(groceries(), prior, nil, cls)
	require.NoError(t, s.Validate())
	// bananas classify to produce, which no longer exists
	require.Equal(t, classify.UncategorizedID, s.ItemCategory["A"])
}

func TestReconcileKeepsUserAddedItems(t *testing.T) {
	t.Parallel()

	cls := classify.NewDefault()
	prior := newState(t, groceries())
	require.NoError(t, prior.AddItem("household", item("U1", "Birthday Candles", 3)))
	prior.SetChecked("U1", true)

	// the vendor feed never knows about locally added items
	s := Reconcile(groceries(), prior, nil, cls)
	require.NoError(t, s.Validate())
	require.Equal(t, "household", s.ItemCategory["U1"])
	require.Contains(t, s.ItemOrder["household"], "U1")
	require.True(t, s.CheckedItems["U1"])
	require.Equal(t, 3, s.UpdatedQuantities["U1"])
	got, ok := s.Item("U1")
	require.True(t, ok)
	require.True(t, got.UserAdded)
}

func TestReconcileUserAddedItemSurvivesCategoryDeletion(t *testing.T) {
	t.Parallel()

	cls := classify.NewDefault()
	prior := newState(t, groceries())
	custom, err := prior.CreateCategory("Party")
	require.NoError(t, err)
	require.NoError(t, prior.AddItem(custom.ID, item("U2", "Streamers", 1)))
	require.NoError(t, prior.DeleteCategory(custom.ID))

	s := Reconcile(groceries(), prior, nil, cls)
	require.NoError(t, s.Validate())
	require.Equal(t, classify.UncategorizedID, s.ItemCategory["U2"])
}

func TestReconcileAppliesRecoveredChecksOnlyWithoutPrior(t *testing.T) {
	t.Parallel()

	cls := classify.NewDefault()
	recovered := map[string]bool{"A": true, "GONE": true}

	s := Reconcile(groceries(), nil, recovered, cls)
	require.True(t, s.CheckedItems["A"])
	require.NotContains(t, s.CheckedItems, "GONE")

	prior := newState(t, groceries())
	s = Reconcile(groceries(), prior, recovered, cls)
	require.False(t, s.CheckedItems["A"])
}
