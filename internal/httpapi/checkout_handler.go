package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	checkoutapp "github.com/dwikikusuma/shoping-mobile/internal/checkout/app"
	checkout "github.com/dwikikusuma/shoping-mobile/internal/checkout/domain"
	order "github.com/dwikikusuma/shoping-mobile/internal/order/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/session"
)

type selectDeliveryRequest struct {
	Tier string `json:"tier"`
}

// BeginCheckout freezes the selected cart lines into a new checkout.
func (h *Handler) BeginCheckout(w http.ResponseWriter, r *http.Request) {
	var view checkoutDTO
	ok := h.do(w, r, func(s *session.Session) error {
		s.BeginCheckout()
		cs, params, err := s.Checkout()
		if err != nil {
			return err
		}
		view = toCheckoutDTO(cs, params)
		return nil
	})
	if ok {
		respondJSON(w, http.StatusCreated, view)
	}
}

func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	var view checkoutDTO
	ok := h.do(w, r, func(s *session.Session) error {
		cs, params, err := s.Checkout()
		if err != nil {
			return err
		}
		view = toCheckoutDTO(cs, params)
		return nil
	})
	if ok {
		respondJSON(w, http.StatusOK, view)
	}
}

func (h *Handler) SelectDelivery(w http.ResponseWriter, r *http.Request) {
	var req selectDeliveryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}
	tier, err := checkout.ParseTier(req.Tier)
	if err != nil {
		respondError(w, h.log, fmt.Errorf("%w: %v", checkoutapp.ErrUnknownDeliveryTier, err))
		return
	}

	var view checkoutDTO
	ok := h.do(w, r, func(s *session.Session) error {
		if err := s.SelectDelivery(tier); err != nil {
			return err
		}
		cs, params, err := s.Checkout()
		if err != nil {
			return err
		}
		view = toCheckoutDTO(cs, params)
		return nil
	})
	if ok {
		respondJSON(w, http.StatusOK, view)
	}
}

func (h *Handler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	var params checkout.PaymentParams
	ok := h.do(w, r, func(s *session.Session) error {
		var err error
		params, err = s.SubmitCheckout()
		return err
	})
	if ok {
		respondJSON(w, http.StatusOK, toPaymentParamsDTO(params))
	}
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	var params checkout.PaymentParams
	ok := h.do(w, r, func(s *session.Session) error {
		var err error
		params, err = s.PendingPayment()
		return err
	})
	if ok {
		respondJSON(w, http.StatusOK, toPaymentParamsDTO(params))
	}
}

func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	var receipt order.Order
	ok := h.do(w, r, func(s *session.Session) error {
		var err error
		receipt, err = s.Pay(r.Context())
		return err
	})
	if !ok {
		return
	}

	h.log.Info("order paid",
		slog.String("session_id", sessionID(r)),
		slog.String("invoice", receipt.InvoiceNumber),
		slog.String("tier", receipt.DeliveryTier),
		slog.Any("total", receipt.Total),
	)
	respondJSON(w, http.StatusCreated, toOrderDTO(receipt))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var orders []order.Order
	ok := h.do(w, r, func(s *session.Session) error {
		var err error
		orders, err = s.Orders.ListOrders(r.Context())
		return err
	})
	if !ok {
		return
	}

	out := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}
	respondJSON(w, http.StatusOK, out)
}
