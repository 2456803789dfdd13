package state

import (
	"github.com/tangelo-apps/cartlist/internal/cart"
	"github.com/tangelo-apps/cartlist/internal/classify"
)

// Reconcile merges a freshly fetched cart with whatever survives from a
// prior state for the same cart id.
//
// Item membership and ordering are always rebuilt from classification,
// since item content may have changed between fetches. From a prior state
// the user's category set, display preferences, per-item edits and
// locally added items carry over; checked marks and quantity overrides are
// kept verbatim for items still present and pruned for vendor items that
// vanished. User-added items are never in the vendor cart, so they keep
// the category the user placed them in.
//
// recovered is the out-of-band checked-items backup written when a state
// was invalidated or cleared; it applies only when no prior state exists
// and the caller consumes it exactly once.
func Reconcile(fresh *cart.Cart, prior *CartState, recovered map[string]bool, cls classify.Classifier) *CartState {
	next := NewFromCart(fresh, cls)

	if prior == nil {
		for asin, checked := range recovered {
			if _, ok := next.CheckedItems[asin]; ok {
				next.CheckedItems[asin] = checked
			}
		}
		return next
	}

	// Carry the user's category definitions and display preferences,
	// then redo classification against that category set.
	next.Categories = make(map[string]Category, len(prior.Categories))
	for cid, c := range prior.Categories {
		next.Categories[cid] = c
	}
	next.CategoryOrder = append([]string(nil), prior.CategoryOrder...)
	next.EditMode = prior.EditMode
	next.CompletedView = prior.CompletedView

	next.ItemCategory = make(map[string]string, len(fresh.Items))
	next.ItemOrder = make(map[string][]string, len(next.Categories))
	for cid := range next.Categories {
		next.ItemOrder[cid] = []string{}
	}
	for _, it := range fresh.Items {
		cid := cls.Classify(it.Title)
		if _, ok := next.Categories[cid]; !ok {
			cid = classify.UncategorizedID
		}
		next.ItemCategory[it.ASIN] = cid
		next.ItemOrder[cid] = append(next.ItemOrder[cid], it.ASIN)
	}

	for _, it := range prior.Cart.Items {
		if !it.UserAdded {
			continue
		}
		if _, ok := next.ItemCategory[it.ASIN]; ok {
			continue
		}
		cid := prior.ItemCategory[it.ASIN]
		if _, ok := next.Categories[cid]; !ok {
			cid = classify.UncategorizedID
		}
		next.Cart.Items = append(next.Cart.Items, it)
		next.ItemCategory[it.ASIN] = cid
		next.ItemOrder[cid] = append(next.ItemOrder[cid], it.ASIN)
		next.CheckedItems[it.ASIN] = false
		next.UpdatedQuantities[it.ASIN] = it.Quantity
	}

	for asin := range next.CheckedItems {
		if checked, ok := prior.CheckedItems[asin]; ok {
			next.CheckedItems[asin] = checked
		}
		if qty, ok := prior.UpdatedQuantities[asin]; ok {
			next.UpdatedQuantities[asin] = qty
		}
	}
	return next
}
