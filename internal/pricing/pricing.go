// Package pricing computes cart, checkout and payment totals. Every screen
// goes through Compute so the same selected lines and courier price always
// produce the same numbers.
package pricing

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CurrencySymbol = "$"
	scale          = 2
)

var (
	ErrMalformedPrice = errors.New("malformed price")

	feeRate      = decimal.New(1, -2) // 1%
	pricePattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// Line is the part of a cart line the engine cares about.
type Line struct {
	Price    decimal.Decimal
	Quantity int
}

type Breakdown struct {
	ItemCount      int
	Subtotal       decimal.Decimal
	MarketplaceFee decimal.Decimal
	CourierPrice   decimal.Decimal
	Total          decimal.Decimal
}

// ParsePrice turns a catalog price such as "$12.50" into a decimal. Space
// around the value is ignored but none may follow the currency symbol.
func ParsePrice(s string) (decimal.Decimal, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), CurrencySymbol)
	if !pricePattern.MatchString(raw) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedPrice, s)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrMalformedPrice, s, err)
	}
	return d, nil
}

// MustParsePrice is ParsePrice for literals known to be valid.
func MustParsePrice(s string) decimal.Decimal {
	d, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Format renders d as "$25.00".
func Format(d decimal.Decimal) string {
	return CurrencySymbol + d.StringFixed(scale)
}

// Subtotal sums price*quantity over lines and rounds once at the end.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return round(sum)
}

func MarketplaceFee(subtotal decimal.Decimal) decimal.Decimal {
	return round(subtotal.Mul(feeRate))
}

func Total(subtotal, marketplaceFee, courierPrice decimal.Decimal) decimal.Decimal {
	return round(subtotal.Add(marketplaceFee).Add(courierPrice))
}

// Compute prices the given lines. Callers pass only the selected lines.
func Compute(lines []Line, courierPrice decimal.Decimal) Breakdown {
	subtotal := Subtotal(lines)
	fee := MarketplaceFee(subtotal)

	count := 0
	for _, l := range lines {
		count += l.Quantity
	}

	return Breakdown{
		ItemCount:      count,
		Subtotal:       subtotal,
		MarketplaceFee: fee,
		CourierPrice:   round(courierPrice),
		Total:          Total(subtotal, fee, courierPrice),
	}
}

// Equal reports whether two breakdowns carry the same amounts.
func (b Breakdown) Equal(o Breakdown) bool {
	return b.Subtotal.Equal(o.Subtotal) &&
		b.MarketplaceFee.Equal(o.MarketplaceFee) &&
		b.CourierPrice.Equal(o.CourierPrice) &&
		b.Total.Equal(o.Total)
}

// decimal.Round rounds half away from zero, which is half-up for the
// non-negative amounts handled here.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(scale)
}
