package adapter

import (
	cartapp "github.com/dwikikusuma/shoping-mobile/internal/cart/app"
	checkout "github.com/dwikikusuma/shoping-mobile/internal/checkout/domain"
)

// CartSelectionReader exposes the selected cart lines to checkout as plain
// value items.
type CartSelectionReader struct {
	cart      *cartapp.Service
	selection *cartapp.Selection
}

func NewCartSelectionReader(cart *cartapp.Service, selection *cartapp.Selection) *CartSelectionReader {
	return &CartSelectionReader{cart: cart, selection: selection}
}

func (r *CartSelectionReader) SelectedItems() []checkout.Item {
	lines := r.selection.SelectedLines(r.cart.Lines())

	items := make([]checkout.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, checkout.Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			Variant:   l.Variant,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
	}
	return items
}
