package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Item is a frozen copy of a cart line handed from one screen to the next.
type Item struct {
	ProductID string
	Name      string
	Image     string
	Variant   string
	Price     decimal.Decimal
	Quantity  int
}

func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func CloneItems(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// CheckoutParams is what the cart screen forwards to checkout.
type CheckoutParams struct {
	CartItems []Item
	Total     decimal.Decimal
}

func (p CheckoutParams) Clone() CheckoutParams {
	return CheckoutParams{CartItems: CloneItems(p.CartItems), Total: p.Total}
}

// PaymentParams is what checkout forwards to payment. TotalPrice is the
// grand total including fee and courier.
type PaymentParams struct {
	CartItems      []Item
	Tier           DeliveryTier
	TotalPrice     decimal.Decimal
	CourierPrice   decimal.Decimal
	MarketplaceFee decimal.Decimal
}

func (p PaymentParams) Clone() PaymentParams {
	p.CartItems = CloneItems(p.CartItems)
	return p
}

type DeliveryTier string

const (
	TierNone    DeliveryTier = ""
	TierExpress DeliveryTier = "Express"
	TierRegular DeliveryTier = "Regular"
	TierCargo   DeliveryTier = "Cargo"
)

type DeliveryOption struct {
	Tier  DeliveryTier
	Price decimal.Decimal
	ETA   string
}

var deliveryOptions = []DeliveryOption{
	{Tier: TierExpress, Price: decimal.RequireFromString("14.99"), ETA: "1-3 days delivery"},
	{Tier: TierRegular, Price: decimal.RequireFromString("7.99"), ETA: "2-4 days delivery"},
	{Tier: TierCargo, Price: decimal.RequireFromString("2.99"), ETA: "7-14 days delivery"},
}

// DeliveryOptions lists the tiers in display order.
func DeliveryOptions() []DeliveryOption {
	out := make([]DeliveryOption, len(deliveryOptions))
	copy(out, deliveryOptions)
	return out
}

func (t DeliveryTier) Option() (DeliveryOption, bool) {
	for _, o := range deliveryOptions {
		if o.Tier == t {
			return o, true
		}
	}
	return DeliveryOption{}, false
}

// CourierPrice is the flat price of the tier, zero when no tier is set.
func (t DeliveryTier) CourierPrice() decimal.Decimal {
	if o, ok := t.Option(); ok {
		return o.Price
	}
	return decimal.Zero
}

// ParseTier matches a tier name case-insensitively.
func ParseTier(s string) (DeliveryTier, error) {
	s = strings.TrimSpace(s)
	for _, o := range deliveryOptions {
		if strings.EqualFold(string(o.Tier), s) {
			return o.Tier, nil
		}
	}
	return TierNone, fmt.Errorf("unknown delivery tier %q", s)
}
