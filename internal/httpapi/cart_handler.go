package httpapi

import (
	"fmt"
	"net/http"

	cartapp "github.com/dwikikusuma/shoping-mobile/internal/cart/app"
	cart "github.com/dwikikusuma/shoping-mobile/internal/cart/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/pricing"
	"github.com/dwikikusuma/shoping-mobile/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
	Variant   string `json:"variant"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type selectionDTO struct {
	ProductID string `json:"productId"`
	Selected  bool   `json:"selected"`
}

func renderCart(s *session.Session) cartDTO {
	s.Selection.Prune(s.Cart.Lines())

	lines := s.Cart.Lines()
	out := make([]lineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, toLineDTO(l, s.Selection.IsSelected(l.ProductID)))
	}

	selected := s.Selection.SelectedLines(lines)
	return cartDTO{
		Lines:      out,
		BadgeCount: s.Cart.TotalQuantity(),
		Selected:   s.Selection.IDs(),
		Preview:    toBreakdownDTO(pricing.Compute(cart.PricingLines(selected), decimal.Zero)),
	}
}

// GetCart renders the cart screen. reset=true is the mount signal: the view
// starts with nothing selected, as a newly opened cart screen does.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	reset := r.URL.Query().Get("reset") == "true"

	var view cartDTO
	ok := h.do(w, r, func(s *session.Session) error {
		if reset {
			s.Selection.Reset()
		}
		view = renderCart(s)
		return nil
	})
	if ok {
		respondJSON(w, http.StatusOK, view)
	}
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	var line cart.Line
	ok := h.do(w, r, func(s *session.Session) error {
		line = s.Cart.AddItem(p, cartapp.WithVariant(req.Variant))
		return nil
	})
	if ok {
		respondJSON(w, http.StatusCreated, toLineDTO(line, false))
	}
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}
	productID := chi.URLParam(r, "productId")

	var (
		line     cart.Line
		selected bool
	)
	ok := h.do(w, r, func(s *session.Session) error {
		var found bool
		line, found = s.Cart.UpdateQuantity(productID, req.Quantity)
		if !found {
			return fmt.Errorf("%w: %s", errLineNotFound, productID)
		}
		selected = s.Selection.IsSelected(productID)
		return nil
	})
	if ok {
		respondJSON(w, http.StatusOK, toLineDTO(line, selected))
	}
}

// IncrementItem and DecrementItem back the +/- controls. Decrement stops at 1.
func (h *Handler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	h.stepQuantity(w, r, (*cartapp.Service).Increment)
}

func (h *Handler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	h.stepQuantity(w, r, (*cartapp.Service).Decrement)
}

func (h *Handler) stepQuantity(w http.ResponseWriter, r *http.Request, step func(*cartapp.Service, string) (cart.Line, bool)) {
	productID := chi.URLParam(r, "productId")

	var (
		line     cart.Line
		selected bool
	)
	ok := h.do(w, r, func(s *session.Session) error {
		var found bool
		line, found = step(s.Cart, productID)
		if !found {
			return fmt.Errorf("%w: %s", errLineNotFound, productID)
		}
		selected = s.Selection.IsSelected(productID)
		return nil
	})
	if ok {
		respondJSON(w, http.StatusOK, toLineDTO(line, selected))
	}
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	ok := h.do(w, r, func(s *session.Session) error {
		s.Cart.RemoveItem(productID)
		s.Selection.Deselect(productID)
		return nil
	})
	if ok {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var selected bool
	ok := h.do(w, r, func(s *session.Session) error {
		if _, found := s.Cart.Line(productID); !found {
			return fmt.Errorf("%w: %s", errLineNotFound, productID)
		}
		selected = s.Selection.Toggle(productID)
		return nil
	})
	if ok {
		respondJSON(w, http.StatusOK, selectionDTO{ProductID: productID, Selected: selected})
	}
}
