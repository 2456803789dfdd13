package classify

// UncategorizedID is the protected fallback bucket. It always exists and
// never carries keywords of its own.
const UncategorizedID = "uncategorized"

// CategoryDef is one row of the matching table. Keywords are single tokens
// matched against the tokenized title; Phrases are multi-word strings
// matched as whole substrings of the normalized title.
type CategoryDef struct {
	ID       string
	Name     string
	Keywords []string
	Phrases  []string
}

// DefaultDefs returns the built-in grocery matching table. Slice order is
// the scan order, not the display order.
func DefaultDefs() []CategoryDef {
	return []CategoryDef{
		{
			ID:   "produce",
			Name: "Produce",
			Keywords: []string{
				"fresh", "organic", "produce", "fruit", "vegetable", "greens",
				"lettuce", "tomato", "onion", "apple", "banana", "berries",
				"avocado", "zucchini", "carrots", "cucumber", "pepper",
				"pineapple", "mango",
			},
		},
		{
			ID:   "dairy",
			Name: "Dairy & Eggs",
			Keywords: []string{
				"milk", "cheese", "yogurt", "butter", "cream", "eggs", "dairy",
				"fairlife", "oatly",
			},
		},
		{
			ID:       "meat",
			Name:     "Meat & Seafood",
			Keywords: []string{"beef", "chicken", "pork", "fish", "seafood", "meat"},
			Phrases:  []string{"ground beef"},
		},
		{
			ID:       "bakery",
			Name:     "Bakery",
			Keywords: []string{"bread", "bagel", "muffin", "pastry", "bakery"},
			Phrases:  []string{"killer bread"},
		},
		{
			ID:   "pantry",
			Name: "Pantry",
			Keywords: []string{
				"sauce", "pasta", "rice", "canned", "soup", "spice", "oil",
				"vinegar", "flour", "sugar", "cereal", "oats",
			},
		},
		{
			ID:       "frozen",
			Name:     "Frozen",
			Keywords: []string{"frozen", "pizza"},
			Phrases:  []string{"ice cream"},
		},
		{
			ID:   "beverages",
			Name: "Beverages",
			Keywords: []string{
				"soda", "juice", "water", "tea", "coffee", "beverage", "oatmilk",
			},
		},
		{
			ID:   "snacks",
			Name: "Snacks",
			Keywords: []string{
				"chips", "crackers", "cookies", "pretzels", "popcorn", "nuts",
				"snack", "ritz",
			},
			Phrases: []string{"rold gold"},
		},
		{
			ID:       "deli",
			Name:     "Deli",
			Keywords: []string{"deli", "sliced", "tofurky", "salami", "ham", "turkey"},
			Phrases:  []string{"deli slices"},
		},
		{
			ID:       "household",
			Name:     "Household",
			Keywords: []string{"cleaner", "soap", "shampoo", "household"},
			Phrases:  []string{"paper towels", "toilet paper"},
		},
	}
}

// DefaultCategoryOrder is the canonical display order, uncategorized last.
func DefaultCategoryOrder() []string {
	return []string{
		"produce", "dairy", "meat", "bakery", "pantry", "frozen",
		"beverages", "snacks", "deli", "household", UncategorizedID,
	}
}

// DefaultCategories returns id -> display name for the built-in table plus
// the uncategorized bucket.
func DefaultCategories() map[string]string {
	out := map[string]string{UncategorizedID: "Uncategorized"}
	for _, def := range DefaultDefs() {
		out[def.ID] = def.Name
	}
	return out
}
