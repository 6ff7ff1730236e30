package app_test

import (
	"math"
	"testing"

	"github.com/dwikikusuma/shoping-mobile/internal/cart/app"
	"github.com/dwikikusuma/shoping-mobile/internal/cart/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/cart/infra/memory"
	catalog "github.com/dwikikusuma/shoping-mobile/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	shirt = catalog.Product{ID: "1", Name: "Shirt", Image: "img1", Price: pricing.MustParsePrice("$10.00")}
	shoes = catalog.Product{ID: "2", Name: "Shoes", Image: "img2", Price: pricing.MustParsePrice("$5.00")}
)

func newTestService(t *testing.T) *app.Service {
	t.Helper()
	return app.NewService(memory.NewLineRepo())
}

func TestAddItem(t *testing.T) {
	t.Run("first add creates a line with quantity 1", func(t *testing.T) {
		svc := newTestService(t)

		line := svc.AddItem(shirt)

		assert.Equal(t, 1, line.Quantity)
		assert.Equal(t, domain.DefaultVariant, line.Variant)
		assert.True(t, line.Price.Equal(shirt.Price))
		assert.Len(t, svc.Lines(), 1)
	})

	t.Run("repeat add increments instead of duplicating", func(t *testing.T) {
		svc := newTestService(t)

		svc.AddItem(shirt)
		svc.AddItem(shirt)

		lines := svc.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("many adds keep one line per product", func(t *testing.T) {
		svc := newTestService(t)
		seq := []catalog.Product{shirt, shoes, shirt, shirt, shoes, shirt}
		for _, p := range seq {
			svc.AddItem(p)
		}

		lines := svc.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "1", lines[0].ProductID)
		assert.Equal(t, 4, lines[0].Quantity)
		assert.Equal(t, 2, lines[1].Quantity)
		assert.Equal(t, len(seq), svc.TotalQuantity())
	})

	t.Run("price is snapshotted at first add", func(t *testing.T) {
		svc := newTestService(t)
		svc.AddItem(shirt)

		repriced := shirt
		repriced.Price = pricing.MustParsePrice("$99.00")
		line := svc.AddItem(repriced)

		assert.True(t, line.Price.Equal(shirt.Price))
		assert.Equal(t, 2, line.Quantity)
	})

	t.Run("variant last writer wins", func(t *testing.T) {
		svc := newTestService(t)
		svc.AddItem(shirt, app.WithVariant("#f3c4c4"))
		line := svc.AddItem(shirt, app.WithVariant("#2f2e2e"))
		assert.Equal(t, "#2f2e2e", line.Variant)

		line = svc.AddItem(shirt)
		assert.Equal(t, "#2f2e2e", line.Variant)
		assert.Equal(t, 3, line.Quantity)
		assert.Len(t, svc.Lines(), 1)
	})
}

func TestRemoveItem(t *testing.T) {
	svc := newTestService(t)
	svc.AddItem(shirt)
	svc.AddItem(shoes)

	assert.True(t, svc.RemoveItem("1"))
	assert.False(t, svc.RemoveItem("1"))
	assert.False(t, svc.RemoveItem("missing"))

	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "2", lines[0].ProductID)
	assert.Equal(t, 1, svc.TotalQuantity())
}

func TestUpdateQuantity(t *testing.T) {
	svc := newTestService(t)
	svc.AddItem(shirt)

	t.Run("sets quantity", func(t *testing.T) {
		line, ok := svc.UpdateQuantity("1", 5)
		require.True(t, ok)
		assert.Equal(t, 5, line.Quantity)
	})

	t.Run("one is kept", func(t *testing.T) {
		line, ok := svc.UpdateQuantity("1", 1)
		require.True(t, ok)
		assert.Equal(t, 1, line.Quantity)
	})

	t.Run("zero is clamped to one", func(t *testing.T) {
		line, ok := svc.UpdateQuantity("1", 0)
		require.True(t, ok)
		assert.Equal(t, 1, line.Quantity)
		got, _ := svc.Line("1")
		assert.Equal(t, 1, got.Quantity)
	})

	t.Run("negative is clamped to one", func(t *testing.T) {
		line, _ := svc.UpdateQuantity("1", -3)
		assert.Equal(t, 1, line.Quantity)
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		_, ok := svc.UpdateQuantity("missing", 3)
		assert.False(t, ok)
		assert.Len(t, svc.Lines(), 1)
	})
}

func TestIncrementDecrement(t *testing.T) {
	svc := newTestService(t)
	svc.AddItem(shirt)

	line, ok := svc.Increment("1")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)

	line, _ = svc.Decrement("1")
	assert.Equal(t, 1, line.Quantity)

	line, _ = svc.Decrement("1")
	assert.Equal(t, 1, line.Quantity, "decrement stops at 1")

	_, ok = svc.Decrement("missing")
	assert.False(t, ok)
	_, ok = svc.Increment("missing")
	assert.False(t, ok)
}

func TestIncrementAtMaxQuantity(t *testing.T) {
	svc := newTestService(t)
	svc.AddItem(shirt)

	_, ok := svc.UpdateQuantity("1", math.MaxInt)
	require.True(t, ok)

	line, ok := svc.Increment("1")
	require.True(t, ok)
	assert.Equal(t, math.MaxInt, line.Quantity)

	line, _ = svc.Decrement("1")
	assert.Equal(t, math.MaxInt-1, line.Quantity)
}

func TestTotalQuantityAndClear(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, 0, svc.TotalQuantity())

	svc.AddItem(shirt)
	svc.AddItem(shirt)
	svc.AddItem(shoes)
	assert.Equal(t, 3, svc.TotalQuantity())

	svc.UpdateQuantity("2", 4)
	assert.Equal(t, 6, svc.TotalQuantity())

	svc.ClearCart()
	assert.Equal(t, 0, svc.TotalQuantity())
	assert.Empty(t, svc.Lines())
}

func TestLinesAreCopies(t *testing.T) {
	svc := newTestService(t)
	svc.AddItem(shirt)

	lines := svc.Lines()
	lines[0].Quantity = 42

	got, _ := svc.Line("1")
	assert.Equal(t, 1, got.Quantity)
}
