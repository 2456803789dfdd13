package state

// Section is one category's slice of the display list. Under ViewHide,
// checked items move from Items to Completed; under ViewAll and
// ViewCollapse, Items carries the full list in stored order and the
// renderer decides how checked entries appear.
type Section struct {
	Category  Category
	Items     []string
	Completed []string
}

// Sections produces the per-category display lists for the current view.
// Empty categories are suppressed unless edit mode is on, so users can add
// items to empty ones.
func (s *CartState) Sections() []Section {
	out := make([]Section, 0, len(s.CategoryOrder))
	for _, cid := range s.CategoryOrder {
		list := s.ItemOrder[cid]
		if len(list) == 0 && !s.EditMode {
			continue
		}
		sec := Section{Category: s.Categories[cid]}
		if s.CompletedView == ViewHide {
			for _, asin := range list {
				if s.CheckedItems[asin] {
					sec.Completed = append(sec.Completed, asin)
				} else {
					sec.Items = append(sec.Items, asin)
				}
			}
		} else {
			sec.Items = append(sec.Items, list...)
		}
		out = append(out, sec)
	}
	return out
}
