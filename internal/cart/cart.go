// Package cart holds the share-a-cart wire model and the fetch boundary.
package cart

import "encoding/json"

// Item is one line of a fetched cart. The asin is the item's identity
// within a cart; titles repeat.
type Item struct {
	ASIN             string          `json:"asin"`
	Quantity         int             `json:"quantity"`
	Price            string          `json:"price"`
	Image            string          `json:"image"`
	Title            string          `json:"title"`
	SKU              string          `json:"sku"`
	PriceCCY         string          `json:"priceccy"`
	CurrencySymbol   string          `json:"ccyS"`
	URL              string          `json:"url"`
	OriginalURL      string          `json:"originalUrl"`
	SavingsBool      string          `json:"savingsBool"`
	Savings          json.RawMessage `json:"savings"`
	SavingsPrice     string          `json:"savingsPrice"`
	NewVendorItemURL string          `json:"newVendorItemURL"`

	// UserAdded marks items created locally rather than fetched from the
	// vendor. It only ever appears in persisted state, never on the wire.
	UserAdded bool `json:"userAdded,omitempty"`
}

// VendorCart is the matched/original vendor sub-document. Item structure
// varies by vendor, so items stay raw.
type VendorCart struct {
	MatchTo                 string            `json:"matchTo"`
	MatchToDisplayName      string            `json:"matchToDisplayName"`
	Items                   []json.RawMessage `json:"items"`
	SplitPriceDiff          string            `json:"splitPriceDiff,omitempty"`
	SplitItemsTotalPrice    string            `json:"splitItemsTotalPrice,omitempty"`
	SplitOriginalTotalPrice string            `json:"splitOriginalTotalPrice,omitempty"`
	CartCCY                 string            `json:"cartCCY"`
	CartCCYS                string            `json:"cartCCYS"`
}

// Cart is a fetched snapshot of a shared vendor cart.
type Cart struct {
	ID                    string     `json:"id"`
	Items                 []Item     `json:"items"`
	Store                 string     `json:"store"`
	Referrer              string     `json:"referrer"`
	Title                 string     `json:"title"`
	Timestamp             int64      `json:"timestamp"`
	Dest                  string     `json:"dest"`
	Vendor                string     `json:"vendor"`
	AP                    string     `json:"ap"`
	CCY                   string     `json:"ccy"`
	Locale                string     `json:"locale"`
	CartCCY               string     `json:"cartCCY"`
	CartCCYS              string     `json:"cartCCYS"`
	CartTotalPrice        string     `json:"cartTotalPrice"`
	CartTotalQty          int        `json:"cartTotalQty"`
	MissingCount          int        `json:"missingCount"`
	VendorDisplayName     string     `json:"vendorDisplayName"`
	DisplaySourceSite     string     `json:"displaySourceSite"`
	MatchedVendorCart     VendorCart `json:"matchedVendorCart"`
	OriginalVendorCart    VendorCart `json:"originalVendorCart"`
	ComparisonPriceDiff   string     `json:"comparisonPriceDiff"`
	CheaperCartTotalPrice string     `json:"cheaperCartTotalPrice"`
	ShowSplit             bool       `json:"showSplit"`
}

// ItemIDs returns the set of asins in the cart.
func (c *Cart) ItemIDs() map[string]bool {
	ids := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		ids[it.ASIN] = true
	}
	return ids
}
