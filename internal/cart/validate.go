package cart

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Validate decodes raw JSON into a Cart. Lenient mode mirrors the vendor's
// loose schema: unknown fields are ignored and only missing or mistyped
// required fields fail. Strict mode additionally rejects unknown fields.
func Validate(raw []byte, strict bool) (*Cart, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if strict {
		dec.DisallowUnknownFields()
	}
	var c Cart
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	if c.ID == "" {
		return nil, fmt.Errorf("%w: missing cart id", ErrSchemaInvalid)
	}
	if c.Items == nil {
		return nil, fmt.Errorf("%w: missing items", ErrSchemaInvalid)
	}
	seen := make(map[string]bool, len(c.Items))
	for i, it := range c.Items {
		if it.ASIN == "" {
			return nil, fmt.Errorf("%w: item %d missing asin", ErrSchemaInvalid, i)
		}
		if seen[it.ASIN] {
			return nil, fmt.Errorf("%w: duplicate asin %s", ErrSchemaInvalid, it.ASIN)
		}
		seen[it.ASIN] = true
		if it.Quantity < 0 {
			return nil, fmt.Errorf("%w: item %s negative quantity", ErrSchemaInvalid, it.ASIN)
		}
	}
	return &c, nil
}
