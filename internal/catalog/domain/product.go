package domain

import (
	"github.com/dwikikusuma/shoping-mobile/internal/pricing"
	"github.com/shopspring/decimal"
)

const CategoryAll = "All"

type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Image       string
	Description string
	Category    string
}

func (p Product) PriceLabel() string {
	return pricing.Format(p.Price)
}
