// Package service wires the pure state transitions to fetching and storage.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tangelo-apps/cartlist/internal/cart"
	"github.com/tangelo-apps/cartlist/internal/classify"
	"github.com/tangelo-apps/cartlist/internal/metrics"
	"github.com/tangelo-apps/cartlist/internal/state"
	"github.com/tangelo-apps/cartlist/internal/store"
)

// Carts loads, reconciles and persists cart states. Storage failures are
// logged and degrade to "no prior state"; fetch failures propagate to the
// caller unchanged.
type Carts struct {
	Blobs      store.Blobs
	Fetcher    cart.Fetcher
	Classifier classify.Classifier

	// StateTTL forces a re-fetch when a stored state is older; zero means a
	// stored state never goes stale on its own.
	StateTTL time.Duration
	// CacheTTL bounds the raw-cart cache used before hitting the network.
	CacheTTL time.Duration

	Met *metrics.Collector
	Log *zap.Logger
}

// checkedSnapshot is the minimal recovery blob written alongside every
// full-state save and consumed once when a state has to be rebuilt.
type checkedSnapshot struct {
	CheckedItems map[string]bool `json:"checkedItems"`
	LastUpdated  int64           `json:"lastUpdated"`
}

// cachedCart wraps a raw fetched cart with its fetch time.
type cachedCart struct {
	Cart      *cart.Cart `json:"cart"`
	FetchedAt int64      `json:"fetchedAt"`
}

func (s *Carts) logger() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

// Load returns the state for a cart id, fetching and reconciling only when
// no usable stored state exists (or the stored one is past StateTTL).
func (s *Carts) Load(ctx context.Context, cartID string) (*state.CartState, error) {
	prior := s.loadStored(ctx, cartID)
	if prior != nil && !s.stale(prior) {
		return prior, nil
	}

	fresh, err := s.fetchCached(ctx, cartID)
	if err != nil {
		return nil, err
	}

	var recovered map[string]bool
	if prior == nil {
		recovered = s.consumeRecovery(ctx, cartID)
	}
	next := state.Reconcile(fresh, prior, recovered, s.Classifier)
	if err := s.Save(ctx, cartID, next); err != nil {
		s.logger().Warn("saving cart state failed", zap.String("cart", cartID), zap.Error(err))
	}
	return next, nil
}

// Refresh re-fetches the cart over the network regardless of TTLs,
// reconciling against whatever is stored so user edits survive.
func (s *Carts) Refresh(ctx context.Context, cartID string) (*state.CartState, error) {
	fresh, err := s.fetchRemote(ctx, cartID)
	if err != nil {
		return nil, err
	}
	prior := s.loadStored(ctx, cartID)
	var recovered map[string]bool
	if prior == nil {
		recovered = s.consumeRecovery(ctx, cartID)
	}
	next := state.Reconcile(fresh, prior, recovered, s.Classifier)
	if err := s.Save(ctx, cartID, next); err != nil {
		s.logger().Warn("saving cart state failed", zap.String("cart", cartID), zap.Error(err))
	}
	return next, nil
}

// Mutate loads the stored state, applies fn and persists the result. It
// never fetches; the state must already exist.
func (s *Carts) Mutate(ctx context.Context, cartID string, fn func(*state.CartState) error) (*state.CartState, error) {
	st := s.loadStored(ctx, cartID)
	if st == nil {
		return nil, fmt.Errorf("no state for cart %s", cartID)
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, cartID, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Save writes the full state and the checked-items recovery snapshot.
func (s *Carts) Save(ctx context.Context, cartID string, st *state.CartState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if err := s.Blobs.Set(ctx, store.StateKey(cartID), raw); err != nil {
		return err
	}
	snap, err := json.Marshal(checkedSnapshot{CheckedItems: st.CheckedItems, LastUpdated: st.LastUpdated})
	if err != nil {
		return err
	}
	return s.Blobs.Set(ctx, store.CheckedKey(cartID), snap)
}

// Clear drops the persisted state for a cart. The checked snapshot is left
// behind so a later load recovers the check marks.
func (s *Carts) Clear(ctx context.Context, cartID string) error {
	if err := s.Blobs.Delete(ctx, store.StateKey(cartID)); err != nil {
		return err
	}
	return s.Blobs.Delete(ctx, store.CacheKey(cartID))
}

func (s *Carts) stale(st *state.CartState) bool {
	if s.StateTTL <= 0 {
		return false
	}
	age := time.Since(time.UnixMilli(st.LastUpdated))
	return age > s.StateTTL
}

// loadStored returns the stored state or nil. Unreadable or invariant-
// breaking blobs are discarded; the checked snapshot stays behind as the
// recovery path.
func (s *Carts) loadStored(ctx context.Context, cartID string) *state.CartState {
	raw, err := s.Blobs.Get(ctx, store.StateKey(cartID))
	if err != nil {
		s.logger().Warn("reading cart state failed", zap.String("cart", cartID), zap.Error(err))
		return nil
	}
	if raw == nil {
		return nil
	}
	var st state.CartState
	if err := json.Unmarshal(raw, &st); err != nil {
		s.logger().Warn("stored cart state unreadable, discarding", zap.String("cart", cartID), zap.Error(err))
		_ = s.Blobs.Delete(ctx, store.StateKey(cartID))
		return nil
	}
	if err := st.Validate(); err != nil {
		s.logger().Warn("stored cart state invalid, discarding", zap.String("cart", cartID), zap.Error(err))
		_ = s.Blobs.Delete(ctx, store.StateKey(cartID))
		return nil
	}
	return &st
}

// consumeRecovery reads and deletes the checked-items snapshot.
func (s *Carts) consumeRecovery(ctx context.Context, cartID string) map[string]bool {
	raw, err := s.Blobs.Get(ctx, store.CheckedKey(cartID))
	if err != nil || raw == nil {
		return nil
	}
	var snap checkedSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		_ = s.Blobs.Delete(ctx, store.CheckedKey(cartID))
		return nil
	}
	_ = s.Blobs.Delete(ctx, store.CheckedKey(cartID))
	return snap.CheckedItems
}

// fetchCached serves from the raw-cart cache when fresh enough, falling
// back to the network.
func (s *Carts) fetchCached(ctx context.Context, cartID string) (*cart.Cart, error) {
	if raw, err := s.Blobs.Get(ctx, store.CacheKey(cartID)); err == nil && raw != nil {
		var c cachedCart
		if err := json.Unmarshal(raw, &c); err == nil && c.Cart != nil {
			age := time.Since(time.UnixMilli(c.FetchedAt))
			if s.CacheTTL > 0 && age <= s.CacheTTL {
				return c.Cart, nil
			}
		}
	}
	return s.fetchRemote(ctx, cartID)
}

func (s *Carts) fetchRemote(ctx context.Context, cartID string) (*cart.Cart, error) {
	fresh, err := s.Fetcher.Fetch(ctx, cartID)
	if s.Met != nil {
		s.Met.ObserveFetch(err)
	}
	if err != nil {
		return nil, err
	}
	if raw, merr := json.Marshal(cachedCart{Cart: fresh, FetchedAt: time.Now().UnixMilli()}); merr == nil {
		if serr := s.Blobs.Set(ctx, store.CacheKey(cartID), raw); serr != nil {
			s.logger().Warn("caching cart failed", zap.String("cart", cartID), zap.Error(serr))
		}
	}
	return fresh, nil
}
