package store

import "strings"

const (
	stateSuffix   = "-state"
	checkedSuffix = "-checked"
	cachePrefix   = "cart-cache-"
)

// StateKey is the full serialized CartState for a cart id.
func StateKey(cartID string) string { return cartID + stateSuffix }

// CheckedKey is the minimal checked-items recovery snapshot, written
// alongside every full-state save.
func CheckedKey(cartID string) string { return cartID + checkedSuffix }

// CacheKey is the raw fetched cart cache, expiring independently of the
// state blob.
func CacheKey(cartID string) string { return cachePrefix + cartID }

// StateCartID reports whether key is a state blob and for which cart.
func StateCartID(key string) (string, bool) {
	if strings.HasPrefix(key, cachePrefix) || !strings.HasSuffix(key, stateSuffix) {
		return "", false
	}
	return strings.TrimSuffix(key, stateSuffix), true
}
