package app_test

import (
	"context"
	"errors"
	"testing"

	catalog "github.com/dwikikusuma/shoping-mobile/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/catalog/infra/static"
	"github.com/dwikikusuma/shoping-mobile/internal/search/app"
)

type failingLister struct{}

func (failingLister) List(ctx context.Context) ([]catalog.Product, error) {
	return nil, errors.New("boom")
}

func names(ps []catalog.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	repo, err := static.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	svc := app.NewService(repo)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query", "", []string{}},
		{"blank query", "   ", []string{}},
		{"prefix matches shirt and shoes", "sh", []string{"Classic Cotton Shirt", "Running Shoes"}},
		{"case insensitive", "SHOES", []string{"Running Shoes"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Filter(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("filter: %v", err)
			}
			gotNames := names(got)
			if len(gotNames) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, gotNames)
			}
			for i := range tt.want {
				if gotNames[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, gotNames)
				}
			}
		})
	}
}

func TestFilterListError(t *testing.T) {
	svc := app.NewService(failingLister{})
	if _, err := svc.Filter(context.Background(), "sh"); err == nil {
		t.Fatalf("expected error")
	}
}
