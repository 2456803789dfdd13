package app

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tangelo-apps/cartlist/internal/cart"
	"github.com/tangelo-apps/cartlist/internal/state"
)

var errEditModeOff = errors.New("edit mode is off")

func (a *App) handleInput(w http.ResponseWriter, r *http.Request) {
	a.Tmpl.Render(w, "input", map[string]any{"Message": ""})
}

func (a *App) handleLoad(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	id, ok := cart.ExtractID(r.FormValue("url"))
	if !ok {
		a.Tmpl.Render(w, "input", map[string]any{"Message": "could not find a cart ID in that link"})
		return
	}
	http.Redirect(w, r, "/cart/"+id, http.StatusSeeOther)
}

func (a *App) handleCart(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(chi.URLParam(r, "id"))
	st, err := a.Svc.Load(r.Context(), id)
	if err != nil {
		a.renderLoadError(w, id, err)
		return
	}
	a.Tmpl.Render(w, "cart", a.buildView(id, st))
}

func (a *App) handleRefresh(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(chi.URLParam(r, "id"))
	if _, err := a.Svc.Refresh(r.Context(), id); err != nil {
		a.renderLoadError(w, id, err)
		return
	}
	a.redirectToCart(w, r, id)
}

func (a *App) handleClear(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(chi.URLParam(r, "id"))
	if err := a.Svc.Clear(r.Context(), id); err != nil {
		a.Log.Warn("clearing cart failed", zap.String("cart", id), zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *App) handleSetView(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	view := state.CompletedView(r.FormValue("view"))
	switch view {
	case state.ViewAll, state.ViewHide, state.ViewCollapse:
	default:
		http.Error(w, "unknown view", http.StatusBadRequest)
		return
	}
	a.mutate(w, r, func(st *state.CartState) error {
		st.CompletedView = view
		return nil
	})
}

func (a *App) handleToggleEditMode(w http.ResponseWriter, r *http.Request) {
	a.mutate(w, r, func(st *state.CartState) error {
		st.EditMode = !st.EditMode
		return nil
	})
}

func (a *App) handleCheck(w http.ResponseWriter, r *http.Request) {
	asin := chi.URLParam(r, "asin")
	_ = r.ParseForm()
	checked := r.FormValue("checked") == "true"
	a.mutate(w, r, func(st *state.CartState) error {
		st.SetChecked(asin, checked)
		return nil
	})
}

// Quantity edits are accepted only while the cart is in edit mode; the
// state layer itself does not enforce that.
func (a *App) handleQuantity(w http.ResponseWriter, r *http.Request) {
	asin := chi.URLParam(r, "asin")
	_ = r.ParseForm()
	qty, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		http.Error(w, "quantity must be an integer", http.StatusBadRequest)
		return
	}
	a.mutate(w, r, func(st *state.CartState) error {
		if !st.EditMode {
			return errEditModeOff
		}
		return st.SetQuantity(asin, qty)
	})
}

func (a *App) handleMoveItem(w http.ResponseWriter, r *http.Request) {
	asin := chi.URLParam(r, "asin")
	_ = r.ParseForm()
	categoryID := r.FormValue("category")
	dir := state.Direction(r.FormValue("direction"))
	a.mutate(w, r, func(st *state.CartState) error {
		st.MoveItem(asin, categoryID, dir)
		return nil
	})
}

func (a *App) handleChangeCategory(w http.ResponseWriter, r *http.Request) {
	asin := chi.URLParam(r, "asin")
	_ = r.ParseForm()
	from, to := r.FormValue("from"), r.FormValue("to")
	a.mutate(w, r, func(st *state.CartState) error {
		if !st.EditMode {
			return errEditModeOff
		}
		st.ChangeCategory(asin, from, to)
		return nil
	})
}

func (a *App) handleAddItem(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	qty, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		http.Error(w, "quantity must be an integer", http.StatusBadRequest)
		return
	}
	item := cart.Item{
		ASIN:     uuid.NewString(),
		Title:    strings.TrimSpace(r.FormValue("title")),
		Price:    strings.TrimSpace(r.FormValue("price")),
		Quantity: qty,
	}
	categoryID := r.FormValue("category")
	a.mutate(w, r, func(st *state.CartState) error {
		if !st.EditMode {
			return errEditModeOff
		}
		return st.AddItem(categoryID, item)
	})
}

func (a *App) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	name := r.FormValue("name")
	a.mutate(w, r, func(st *state.CartState) error {
		// reuse a near-duplicate instead of minting another bucket
		if _, ok := st.ClosestName(name); ok {
			return nil
		}
		_, err := st.CreateCategory(name)
		return err
	})
}

func (a *App) handleRenameCategory(w http.ResponseWriter, r *http.Request) {
	cid := chi.URLParam(r, "cid")
	_ = r.ParseForm()
	name := r.FormValue("name")
	a.mutate(w, r, func(st *state.CartState) error {
		return st.RenameCategory(cid, name)
	})
}

func (a *App) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	cid := chi.URLParam(r, "cid")
	a.mutate(w, r, func(st *state.CartState) error {
		return st.DeleteCategory(cid)
	})
}

func (a *App) handleMoveCategory(w http.ResponseWriter, r *http.Request) {
	cid := chi.URLParam(r, "cid")
	_ = r.ParseForm()
	dir := state.Direction(r.FormValue("direction"))
	a.mutate(w, r, func(st *state.CartState) error {
		st.MoveCategory(cid, dir)
		return nil
	})
}

// mutate applies fn to the stored state for the cart in the URL and
// redirects back to the cart page.
func (a *App) mutate(w http.ResponseWriter, r *http.Request, fn func(*state.CartState) error) {
	id := strings.ToUpper(chi.URLParam(r, "id"))
	_, err := a.Svc.Mutate(r.Context(), id, fn)
	switch {
	case err == nil:
		a.redirectToCart(w, r, id)
	case errors.Is(err, errEditModeOff):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, state.ErrProtectedCategory):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, state.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusNotFound)
	}
}

func (a *App) redirectToCart(w http.ResponseWriter, r *http.Request, id string) {
	http.Redirect(w, r, "/cart/"+id, http.StatusSeeOther)
}

func (a *App) renderLoadError(w http.ResponseWriter, id string, err error) {
	a.Log.Warn("loading cart failed", zap.String("cart", id), zap.Error(err))
	msg := "Failed to load shopping cart. Please try again."
	status := http.StatusBadGateway
	if errors.Is(err, cart.ErrNotFound) {
		msg = "Cart " + id + " was not found. It may have expired."
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	a.Tmpl.Render(w, "input", map[string]any{"Message": msg})
}
