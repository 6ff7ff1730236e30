// Package static serves the catalog from a JSON product list loaded once at
// startup. Entries are validated on load so a bad price never reaches the
// cart.
package static

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dwikikusuma/shoping-mobile/internal/catalog/app"
	"github.com/dwikikusuma/shoping-mobile/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/pricing"
)

//go:embed products.json
var embeddedProducts []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type productRecord struct {
	ID          productID `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
}

// productID accepts both "7" and 7.
type productID string

func (id *productID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = productID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %s", b)
	}
	*id = productID(n.String())
	return nil
}

type ProductRepo struct {
	products []domain.Product
	byID     map[string]int
}

func NewProductRepo(products []domain.Product) *ProductRepo {
	r := &ProductRepo{
		products: products,
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		r.byID[p.ID] = i
	}
	return r
}

// LoadEmbedded returns a repo over the catalog compiled into the binary.
func LoadEmbedded() (*ProductRepo, error) {
	return Load(bytes.NewReader(embeddedProducts))
}

func LoadFile(path string) (*ProductRepo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (*ProductRepo, error) {
	var records []productRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	products := make([]domain.Product, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		p, err := toDomain(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidCatalog, i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: entry %d: duplicate id %q", ErrInvalidCatalog, i, p.ID)
		}
		seen[p.ID] = struct{}{}
		products = append(products, p)
	}

	return NewProductRepo(products), nil
}

func toDomain(rec productRecord) (domain.Product, error) {
	id := strings.TrimSpace(string(rec.ID))
	if id == "" {
		return domain.Product{}, errors.New("missing id")
	}
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return domain.Product{}, fmt.Errorf("product %s: missing name", id)
	}
	price, err := pricing.ParsePrice(rec.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, err)
	}

	return domain.Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Image:       rec.Image,
		Description: rec.Description,
		Category:    strings.TrimSpace(rec.Category),
	}, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[i], nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
