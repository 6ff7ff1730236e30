package app

import (
	"context"

	catalog "github.com/dwikikusuma/shoping-mobile/internal/catalog/domain"
)

// ProductLister is the slice of the catalog that search needs.
type ProductLister interface {
	List(ctx context.Context) ([]catalog.Product, error)
}
