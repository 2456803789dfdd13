// Package metrics exposes prometheus gauges recomputed from storage on
// each scrape, plus event counters fed by the services.
package metrics

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tangelo-apps/cartlist/internal/cart"
	"github.com/tangelo-apps/cartlist/internal/state"
	"github.com/tangelo-apps/cartlist/internal/store"
)

type Collector struct {
	blobs store.Blobs

	cartsTracked    prometheus.Gauge
	itemsTracked    prometheus.Gauge
	checkedItems    prometheus.Gauge
	itemsByCategory *prometheus.GaugeVec

	fetchesTotal *prometheus.CounterVec
}

func New(blobs store.Blobs) *Collector {
	c := &Collector{blobs: blobs}

	c.cartsTracked = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cartlist",
		Name:      "carts_tracked",
		Help:      "Number of carts with persisted state",
	})
	c.itemsTracked = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cartlist",
		Name:      "items_tracked",
		Help:      "Total items across all persisted carts",
	})
	c.checkedItems = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cartlist",
		Name:      "items_checked",
		Help:      "Checked items across all persisted carts",
	})
	c.itemsByCategory = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cartlist",
		Name:      "items_by_category",
		Help:      "Items per category name across all persisted carts",
	}, []string{"category"})
	c.fetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cartlist",
		Name:      "fetches_total",
		Help:      "Remote cart fetches by outcome",
	}, []string{"result"})

	return c
}

func (c *Collector) Register(reg prometheus.Registerer) {
	reg.MustRegister(
		c.cartsTracked,
		c.itemsTracked,
		c.checkedItems,
		c.itemsByCategory,
		c.fetchesTotal,
	)
}

// ObserveFetch records one remote fetch outcome.
func (c *Collector) ObserveFetch(err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, cart.ErrNotFound):
		result = "not_found"
	case errors.Is(err, cart.ErrMalformed), errors.Is(err, cart.ErrSchemaInvalid):
		result = "malformed"
	default:
		result = "network"
	}
	c.fetchesTotal.WithLabelValues(result).Inc()
}

// Refresh recomputes gauges from storage (call on each scrape).
func (c *Collector) Refresh(ctx context.Context) error {
	keys, err := c.blobs.Keys(ctx)
	if err != nil {
		return err
	}

	c.itemsByCategory.Reset()
	var carts, items, checked int
	for _, key := range keys {
		if _, ok := store.StateCartID(key); !ok {
			continue
		}
		raw, err := c.blobs.Get(ctx, key)
		if err != nil || raw == nil {
			continue
		}
		var st state.CartState
		if err := json.Unmarshal(raw, &st); err != nil {
			continue
		}
		carts++
		items += len(st.ItemCategory)
		for _, on := range st.CheckedItems {
			if on {
				checked++
			}
		}
		for _, cid := range st.ItemCategory {
			c.itemsByCategory.WithLabelValues(st.Categories[cid].Name).Inc()
		}
	}
	c.cartsTracked.Set(float64(carts))
	c.itemsTracked.Set(float64(items))
	c.checkedItems.Set(float64(checked))
	return nil
}
