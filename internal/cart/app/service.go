package app

import (
	"math"
	"strings"

	"github.com/dwikikusuma/shoping-mobile/internal/cart/domain"
	catalog "github.com/dwikikusuma/shoping-mobile/internal/catalog/domain"
)

// Service is the cart store: the single source of truth for what is in one
// client's cart. It is mutated only through AddItem, RemoveItem and
// UpdateQuantity (plus ClearCart when the clear-on-payment policy is on).
type Service struct {
	repo LineRepo
}

func NewService(repo LineRepo) *Service {
	return &Service{
		repo: repo,
	}
}

type AddOption func(*addOptions)

type addOptions struct {
	variant string
}

// WithVariant records the selected variant (e.g. a color) on the line.
func WithVariant(v string) AddOption {
	return func(o *addOptions) {
		o.variant = strings.TrimSpace(v)
	}
}

// AddItem inserts a line with quantity 1 or bumps the quantity of the existing
// line for the product. The price snapshot of an existing line is kept; a
// non-empty variant replaces the previous one.
func (s *Service) AddItem(p catalog.Product, opts ...AddOption) domain.Line {
	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}

	line, ok := s.repo.Get(p.ID)
	if ok {
		line.Quantity++
		if o.variant != "" {
			line.Variant = o.variant
		}
		s.repo.Put(line)
		return line
	}

	variant := o.variant
	if variant == "" {
		variant = domain.DefaultVariant
	}
	line = domain.Line{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  1,
		Variant:   variant,
	}
	s.repo.Put(line)
	return line
}

// RemoveItem deletes the line for productID. Removing an absent line is a no-op.
func (s *Service) RemoveItem(productID string) bool {
	return s.repo.Delete(productID)
}

// UpdateQuantity sets the line quantity, clamping anything below 1 to 1.
// It reports false when the product is not in the cart.
func (s *Service) UpdateQuantity(productID string, quantity int) (domain.Line, bool) {
	line, ok := s.repo.Get(productID)
	if !ok {
		return domain.Line{}, false
	}
	if quantity < 1 {
		quantity = 1
	}
	line.Quantity = quantity
	s.repo.Put(line)
	return line, true
}

// Increment adds one to the line quantity. It leaves a line at math.MaxInt as is.
func (s *Service) Increment(productID string) (domain.Line, bool) {
	line, ok := s.repo.Get(productID)
	if !ok {
		return domain.Line{}, false
	}
	if line.Quantity == math.MaxInt {
		return line, true
	}
	return s.UpdateQuantity(productID, line.Quantity+1)
}

func (s *Service) Decrement(productID string) (domain.Line, bool) {
	line, ok := s.repo.Get(productID)
	if !ok {
		return domain.Line{}, false
	}
	return s.UpdateQuantity(productID, line.Quantity-1)
}

func (s *Service) ClearCart() {
	s.repo.Clear()
}

func (s *Service) Line(productID string) (domain.Line, bool) {
	return s.repo.Get(productID)
}

// Lines returns copies of the cart lines in the order they were added.
func (s *Service) Lines() []domain.Line {
	return s.repo.List()
}

// TotalQuantity is the badge count: the sum of all line quantities.
func (s *Service) TotalQuantity() int {
	n := 0
	for _, l := range s.repo.List() {
		n += l.Quantity
	}
	return n
}
