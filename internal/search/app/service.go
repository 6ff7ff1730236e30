package app

import (
	"context"
	"fmt"
	"strings"

	catalog "github.com/dwikikusuma/shoping-mobile/internal/catalog/domain"
)

type Service struct {
	products ProductLister
}

func NewService(products ProductLister) *Service {
	return &Service{products: products}
}

// Filter returns the products whose name contains query, ignoring case, in
// catalog order. An empty query matches nothing so the screen can show
// recent searches instead.
func (s *Service) Filter(ctx context.Context, query string) ([]catalog.Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []catalog.Product{}, nil
	}

	all, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]catalog.Product, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out, nil
}
