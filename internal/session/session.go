// Package session holds the state one storefront client carries across
// screens: its cart, selection, recent searches and the checkout in flight.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	cartapp "github.com/dwikikusuma/shoping-mobile/internal/cart/app"
	"github.com/dwikikusuma/shoping-mobile/internal/cart/infra/memory"
	checkoutapp "github.com/dwikikusuma/shoping-mobile/internal/checkout/app"
	checkout "github.com/dwikikusuma/shoping-mobile/internal/checkout/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/shoping-mobile/internal/order/app"
	order "github.com/dwikikusuma/shoping-mobile/internal/order/domain"
	ordermemory "github.com/dwikikusuma/shoping-mobile/internal/order/infra/memory"
	search "github.com/dwikikusuma/shoping-mobile/internal/search/domain"
	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("session not found")
	ErrNoCheckout = errors.New("no checkout in progress")
	ErrNoPayment  = errors.New("no submitted checkout to pay")
)

type Options struct {
	RecentLimit        int
	ClearCartOnPayment bool
}

// Session is not safe for concurrent use. Registry.Do serializes access.
type Session struct {
	id string

	Cart      *cartapp.Service
	Selection *cartapp.Selection
	Recent    *search.RecentSearches
	Orders    *orderapp.Service

	checkout *checkoutapp.Service
	current  *checkoutapp.Session
	params   checkout.CheckoutParams
	payment  *checkout.PaymentParams

	clearCartOnPayment bool

	mu sync.Mutex

	// guarded by Registry.mu
	lastSeen time.Time
}

func New(opts Options) *Session {
	cart := cartapp.NewService(memory.NewLineRepo())
	selection := cartapp.NewSelection()

	return &Session{
		id:                 uuid.NewString(),
		Cart:               cart,
		Selection:          selection,
		Recent:             search.NewRecentSearches(opts.RecentLimit),
		Orders:             orderapp.NewService(ordermemory.NewOrderRepo()),
		checkout:           checkoutapp.NewService(adapter.NewCartSelectionReader(cart, selection)),
		clearCartOnPayment: opts.ClearCartOnPayment,
	}
}

func (s *Session) ID() string {
	return s.id
}

// BeginCheckout snapshots the selected lines and opens a new checkout,
// dropping any earlier one along with its pending payment.
func (s *Session) BeginCheckout() checkout.CheckoutParams {
	s.Selection.Prune(s.Cart.Lines())

	params, cs := s.checkout.Begin()
	s.params = params
	s.current = cs
	s.payment = nil
	return params.Clone()
}

// Checkout returns the checkout in progress and the bundle it started from.
func (s *Session) Checkout() (*checkoutapp.Session, checkout.CheckoutParams, error) {
	if s.current == nil {
		return nil, checkout.CheckoutParams{}, ErrNoCheckout
	}
	return s.current, s.params.Clone(), nil
}

func (s *Session) SelectDelivery(tier checkout.DeliveryTier) error {
	if s.current == nil {
		return ErrNoCheckout
	}
	return s.current.SelectDelivery(tier)
}

func (s *Session) SubmitCheckout() (checkout.PaymentParams, error) {
	if s.current == nil {
		return checkout.PaymentParams{}, ErrNoCheckout
	}

	p, err := s.current.Submit()
	if err != nil {
		return checkout.PaymentParams{}, err
	}
	s.payment = &p
	return p.Clone(), nil
}

// PendingPayment returns the bundle waiting on the payment screen.
func (s *Session) PendingPayment() (checkout.PaymentParams, error) {
	if s.payment == nil {
		return checkout.PaymentParams{}, ErrNoPayment
	}
	return s.payment.Clone(), nil
}

// Pay settles the submitted checkout. The cart is left alone unless the
// session was created with ClearCartOnPayment.
func (s *Session) Pay(ctx context.Context) (order.Order, error) {
	if s.payment == nil {
		return order.Order{}, ErrNoPayment
	}

	o, err := s.Orders.Pay(ctx, *s.payment)
	if err != nil {
		return order.Order{}, fmt.Errorf("pay: %w", err)
	}

	s.payment = nil
	if s.clearCartOnPayment {
		s.Cart.ClearCart()
		s.Selection.Reset()
	}
	return o, nil
}
