package app

import (
	"errors"
	"fmt"

	"github.com/dwikikusuma/shoping-mobile/internal/checkout/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MsgMissingDeliveryOption is shown inline on the checkout screen.
const MsgMissingDeliveryOption = "Please select a delivery option."

var (
	ErrMissingDeliveryOption = errors.New("missing delivery option")
	ErrUnknownDeliveryTier   = errors.New("unknown delivery tier")
	ErrSessionSubmitted      = errors.New("checkout session already submitted")
)

// CartReader yields the cart lines the user selected for checkout.
type CartReader interface {
	SelectedItems() []domain.Item
}

type Service struct {
	Cart CartReader
}

func NewService(cart CartReader) *Service {
	return &Service{Cart: cart}
}

// Begin freezes the current selection and opens a fresh checkout session.
func (s *Service) Begin() (domain.CheckoutParams, *Session) {
	params := Snapshot(s.Cart.SelectedItems())
	return params.Clone(), NewSession(params)
}

// Snapshot builds the cart -> checkout bundle from the selected items.
func Snapshot(items []domain.Item) domain.CheckoutParams {
	items = domain.CloneItems(items)
	return domain.CheckoutParams{
		CartItems: items,
		Total:     pricing.Subtotal(PricingLines(items)),
	}
}

func PricingLines(items []domain.Item) []pricing.Line {
	out := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		out = append(out, pricing.Line{Price: it.Price, Quantity: it.Quantity})
	}
	return out
}

type State int

const (
	StateSelecting State = iota
	StateDeliveryChosen
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateDeliveryChosen:
		return "delivery_chosen"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Session is one checkout attempt. It owns a private copy of the items, so
// nothing done here reaches back into the cart.
type Session struct {
	id    string
	items []domain.Item
	tier  domain.DeliveryTier
	state State
}

func NewSession(params domain.CheckoutParams) *Session {
	return &Session{
		id:    uuid.NewString(),
		items: domain.CloneItems(params.CartItems),
		state: StateSelecting,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Tier() domain.DeliveryTier {
	return s.tier
}

func (s *Session) Items() []domain.Item {
	return domain.CloneItems(s.items)
}

func (s *Session) CourierPrice() decimal.Decimal {
	return s.tier.CourierPrice()
}

// SelectDelivery picks a tier, replacing any earlier choice.
func (s *Session) SelectDelivery(tier domain.DeliveryTier) error {
	if s.state == StateSubmitted {
		return ErrSessionSubmitted
	}
	if _, ok := tier.Option(); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDeliveryTier, tier)
	}
	s.tier = tier
	s.state = StateDeliveryChosen
	return nil
}

// Quote prices the session with the current courier price.
func (s *Session) Quote() pricing.Breakdown {
	return pricing.Compute(PricingLines(s.items), s.CourierPrice())
}

// Submit freezes the totals and produces the payment bundle. It fails with
// ErrMissingDeliveryOption until a tier is chosen and the session cannot be
// submitted twice.
func (s *Session) Submit() (domain.PaymentParams, error) {
	switch s.state {
	case StateSubmitted:
		return domain.PaymentParams{}, ErrSessionSubmitted
	case StateSelecting:
		return domain.PaymentParams{}, ErrMissingDeliveryOption
	}

	q := s.Quote()
	s.state = StateSubmitted
	return domain.PaymentParams{
		CartItems:      domain.CloneItems(s.items),
		Tier:           s.tier,
		TotalPrice:     q.Total,
		CourierPrice:   q.CourierPrice,
		MarketplaceFee: q.MarketplaceFee,
	}, nil
}
