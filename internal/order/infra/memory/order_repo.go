package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dwikikusuma/shoping-mobile/internal/order/app"
	"github.com/dwikikusuma/shoping-mobile/internal/order/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepo keeps receipts for one client session. Access is serialized by
// the session, so there is no locking here.
type OrderRepo struct {
	orders []domain.Order
	now    func() time.Time
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{now: time.Now}
}

func (r *OrderRepo) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	for i, item := range order.Items {
		if !item.LineTotal.Equal(item.UnitPrice.Mul(decimalQty(item.Quantity))) {
			return domain.Order{}, fmt.Errorf("item %d: line total mismatch", i)
		}
	}

	id := uuid.New()
	created := r.now().UTC()

	order.ID = id.String()
	order.InvoiceNumber = fmt.Sprintf("INV-%s-%s", created.Format("20060102"), strings.ToUpper(id.String()[:8]))
	order.CreatedAt = created
	order.Items = append([]domain.OrderItem(nil), order.Items...)

	r.orders = append(r.orders, order)
	return order, nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, app.ErrNotFound
}

// List returns orders newest first.
func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, r.orders[i])
	}
	return out, nil
}

func decimalQty(q int) decimal.Decimal {
	return decimal.NewFromInt(int64(q))
}
