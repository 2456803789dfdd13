package cart

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultAPIBase is the share-a-cart read endpoint; the cart id is appended
// as the final path segment.
const DefaultAPIBase = "https://share-a-cart.com/api/get/r/cart"

// Fetcher retrieves a cart snapshot by id.
type Fetcher interface {
	Fetch(ctx context.Context, cartID string) (*Cart, error)
}

// Client fetches carts over HTTP. It performs no retries; failures map onto
// ErrNotFound, ErrNetwork, ErrMalformed or ErrSchemaInvalid and propagate
// unchanged.
type Client struct {
	base   string
	strict bool
	http   *http.Client
}

// NewClient builds a Client. base falls back to DefaultAPIBase; httpc falls
// back to http.DefaultClient.
func NewClient(base string, strict bool, httpc *http.Client) *Client {
	if base == "" {
		base = DefaultAPIBase
	}
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{base: base, strict: strict, http: httpc}
}

func (c *Client) Fetch(ctx context.Context, cartID string) (*Cart, error) {
	url := c.base + "/" + cartID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, cartID)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	cart, err := Validate(body, c.strict)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return cart, nil
}
