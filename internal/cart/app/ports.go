package app

import "github.com/dwikikusuma/shoping-mobile/internal/cart/domain"

// LineRepo holds cart lines keyed by product id, in insertion order.
type LineRepo interface {
	Get(productID string) (domain.Line, bool)
	Put(line domain.Line)
	Delete(productID string) bool
	List() []domain.Line
	Clear()
}
