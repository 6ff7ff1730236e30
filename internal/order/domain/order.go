package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusPaid = "PAID"

// Order is the receipt of a simulated payment.
type Order struct {
	ID             string
	InvoiceNumber  string
	Status         string
	DeliveryTier   string
	Subtotal       decimal.Decimal
	MarketplaceFee decimal.Decimal
	CourierPrice   decimal.Decimal
	Total          decimal.Decimal
	Items          []OrderItem
	CreatedAt      time.Time
}

type OrderItem struct {
	ProductID string
	Name      string
	Variant   string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}
