package domain

import (
	"github.com/dwikikusuma/shoping-mobile/internal/pricing"
	"github.com/shopspring/decimal"
)

const DefaultVariant = "Default"

// Line is one product in the cart. Price is the catalog price at the time the
// product was first added.
type Line struct {
	ProductID string
	Name      string
	Image     string
	Price     decimal.Decimal
	Quantity  int
	Variant   string
}

func (l Line) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) PricingLine() pricing.Line {
	return pricing.Line{Price: l.Price, Quantity: l.Quantity}
}

func PricingLines(lines []Line) []pricing.Line {
	out := make([]pricing.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.PricingLine())
	}
	return out
}
