package app

import (
	"context"
	"errors"
	"fmt"

	checkoutapp "github.com/dwikikusuma/shoping-mobile/internal/checkout/app"
	checkout "github.com/dwikikusuma/shoping-mobile/internal/checkout/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/order/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/pricing"
)

var (
	ErrInvalidOrder   = errors.New("invalid order")
	ErrTotalsMismatch = errors.New("forwarded totals do not match items")
	ErrNotFound       = errors.New("order not found")
)

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// Pay simulates the payment of a checkout bundle. The totals are recomputed
// from the items and must match what checkout forwarded.
func (s *Service) Pay(ctx context.Context, params checkout.PaymentParams) (domain.Order, error) {
	if params.CourierPrice.IsNegative() {
		return domain.Order{}, fmt.Errorf("%w: courier price cannot be negative, got %s", ErrInvalidOrder, params.CourierPrice)
	}

	items := make([]domain.OrderItem, 0, len(params.CartItems))
	for i, it := range params.CartItems {
		if it.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidOrder, i, it.Quantity)
		}
		if it.Price.IsNegative() {
			return domain.Order{}, fmt.Errorf("%w: item %d: unit price cannot be negative, got %s", ErrInvalidOrder, i, it.Price)
		}

		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Variant:   it.Variant,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		})
	}

	b := pricing.Compute(checkoutapp.PricingLines(params.CartItems), params.CourierPrice)
	forwarded := pricing.Breakdown{
		Subtotal:       b.Subtotal,
		MarketplaceFee: params.MarketplaceFee,
		CourierPrice:   params.CourierPrice,
		Total:          params.TotalPrice,
	}
	if !b.Equal(forwarded) {
		return domain.Order{}, fmt.Errorf("%w: fee %s/%s, courier %s/%s, total %s/%s", ErrTotalsMismatch,
			b.MarketplaceFee, params.MarketplaceFee, b.CourierPrice, params.CourierPrice, b.Total, params.TotalPrice)
	}

	order := domain.Order{
		Status:         domain.StatusPaid,
		DeliveryTier:   string(params.Tier),
		Subtotal:       b.Subtotal,
		MarketplaceFee: b.MarketplaceFee,
		CourierPrice:   b.CourierPrice,
		Total:          b.Total,
		Items:          items,
	}

	return s.repo.Create(ctx, order)
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}
