// Package app serves the local checklist portal.
package app

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tangelo-apps/cartlist/internal/classify"
	"github.com/tangelo-apps/cartlist/internal/metrics"
	"github.com/tangelo-apps/cartlist/internal/service"
	"github.com/tangelo-apps/cartlist/internal/state"
	"github.com/tangelo-apps/cartlist/internal/web"
)

type App struct {
	Svc  *service.Carts
	Tmpl *web.Templates
	Met  *metrics.Collector
	Log  *zap.Logger
}

type Config struct {
	Addr string
}

func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	// pages
	r.Get("/", a.handleInput)
	r.Post("/load", a.handleLoad)
	r.Get("/cart/{id}", a.handleCart)

	// cart lifecycle
	r.Post("/cart/{id}/refresh", a.handleRefresh)
	r.Post("/cart/{id}/clear", a.handleClear)
	r.Post("/cart/{id}/view", a.handleSetView)
	r.Post("/cart/{id}/editmode", a.handleToggleEditMode)

	// items
	r.Post("/cart/{id}/items", a.handleAddItem)
	r.Post("/cart/{id}/items/{asin}/check", a.handleCheck)
	r.Post("/cart/{id}/items/{asin}/quantity", a.handleQuantity)
	r.Post("/cart/{id}/items/{asin}/move", a.handleMoveItem)
	r.Post("/cart/{id}/items/{asin}/category", a.handleChangeCategory)

	// categories
	r.Post("/cart/{id}/categories", a.handleCreateCategory)
	r.Post("/cart/{id}/categories/{cid}/rename", a.handleRenameCategory)
	r.Post("/cart/{id}/categories/{cid}/delete", a.handleDeleteCategory)
	r.Post("/cart/{id}/categories/{cid}/move", a.handleMoveCategory)

	// metrics (refresh on scrape)
	r.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		_ = a.Met.Refresh(r.Context())
		promhttp.Handler().ServeHTTP(w, r)
	})
	return r
}

// view models consumed by the templates

type itemView struct {
	CartID        string
	ASIN          string
	Title         string
	Price         string
	Image         string
	URL           string
	Currency      string
	CategoryID    string
	Quantity      int
	Checked       bool
	Thin          bool
	EditMode      bool
	AllCategories []state.Category
}

type sectionView struct {
	ID        string
	Name      string
	Protected bool
	Items     []itemView
	Completed []itemView
}

type cartView struct {
	CartID        string
	Title         string
	Vendor        string
	Currency      string
	TotalPrice    string
	SelectedTotal string
	ItemCount     int
	CheckedCount  int
	EditMode      bool
	CompletedView string
	Sections      []sectionView
}

func (a *App) buildView(cartID string, st *state.CartState) cartView {
	cats := make([]state.Category, 0, len(st.CategoryOrder))
	for _, cid := range st.CategoryOrder {
		cats = append(cats, st.Categories[cid])
	}

	v := cartView{
		CartID:        cartID,
		Title:         st.Cart.Title,
		Vendor:        st.Cart.VendorDisplayName,
		Currency:      st.Cart.CartCCYS,
		TotalPrice:    st.Cart.CartTotalPrice,
		ItemCount:     len(st.Cart.Items),
		EditMode:      st.EditMode,
		CompletedView: string(st.CompletedView),
	}

	var selected float64
	for _, it := range st.Cart.Items {
		if !st.CheckedItems[it.ASIN] {
			continue
		}
		v.CheckedCount++
		price, _ := strconv.ParseFloat(it.Price, 64)
		selected += price * float64(st.Quantity(it.ASIN))
	}
	v.SelectedTotal = strconv.FormatFloat(selected, 'f', 2, 64)

	item := func(asin, cid string) itemView {
		it, _ := st.Item(asin)
		return itemView{
			CartID:        cartID,
			ASIN:          asin,
			Title:         it.Title,
			Price:         it.Price,
			Image:         it.Image,
			URL:           it.URL,
			Currency:      st.Cart.CartCCYS,
			CategoryID:    cid,
			Quantity:      st.Quantity(asin),
			Checked:       st.CheckedItems[asin],
			Thin:          st.CompletedView == state.ViewCollapse && st.CheckedItems[asin],
			EditMode:      st.EditMode,
			AllCategories: cats,
		}
	}

	for _, sec := range st.Sections() {
		sv := sectionView{
			ID:        sec.Category.ID,
			Name:      sec.Category.Name,
			Protected: sec.Category.ID == classify.UncategorizedID,
		}
		for _, asin := range sec.Items {
			sv.Items = append(sv.Items, item(asin, sec.Category.ID))
		}
		for _, asin := range sec.Completed {
			sv.Completed = append(sv.Completed, item(asin, sec.Category.ID))
		}
		v.Sections = append(v.Sections, sv)
	}
	return v
}

func Run(ctx context.Context, svc *service.Carts, tmpl *web.Templates, met *metrics.Collector, log *zap.Logger, cfg Config) error {
	a := &App{Svc: svc, Tmpl: tmpl, Met: met, Log: log}
	srv := &http.Server{Addr: cfg.Addr, Handler: a.Router()}

	go func() {
		<-ctx.Done()
		cctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(cctx)
	}()

	return srv.ListenAndServe()
}
