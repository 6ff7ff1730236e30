package app

import (
	"testing"

	"github.com/dwikikusuma/shoping-mobile/internal/checkout/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCart struct {
	items []domain.Item
}

func (f *fakeCart) SelectedItems() []domain.Item {
	return f.items
}

func testItems() []domain.Item {
	return []domain.Item{
		{ProductID: "1", Name: "Shirt", Price: decimal.RequireFromString("10.00"), Quantity: 2},
		{ProductID: "2", Name: "Shoes", Price: decimal.RequireFromString("5.00"), Quantity: 1},
	}
}

func TestBegin(t *testing.T) {
	cart := &fakeCart{items: testItems()}
	svc := NewService(cart)

	params, session := svc.Begin()

	assert.Equal(t, "25.00", params.Total.StringFixed(2))
	assert.Len(t, params.CartItems, 2)
	assert.NotEmpty(t, session.ID())
	assert.Equal(t, StateSelecting, session.State())
	assert.Equal(t, domain.TierNone, session.Tier())

	t.Run("snapshot is detached from the cart", func(t *testing.T) {
		cart.items[0].Quantity = 99
		params.CartItems[1].Quantity = 50

		items := session.Items()
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 1, items[1].Quantity)
	})

	t.Run("fresh session each time", func(t *testing.T) {
		_, other := svc.Begin()
		assert.NotEqual(t, session.ID(), other.ID())
	})
}

func TestSelectDelivery(t *testing.T) {
	s := NewSession(Snapshot(testItems()))

	require.NoError(t, s.SelectDelivery(domain.TierExpress))
	assert.Equal(t, StateDeliveryChosen, s.State())
	assert.Equal(t, "14.99", s.CourierPrice().StringFixed(2))

	require.NoError(t, s.SelectDelivery(domain.TierCargo))
	assert.Equal(t, domain.TierCargo, s.Tier(), "last selection wins")
	assert.Equal(t, "2.99", s.CourierPrice().StringFixed(2))

	err := s.SelectDelivery(domain.DeliveryTier("Drone"))
	assert.ErrorIs(t, err, ErrUnknownDeliveryTier)
	assert.Equal(t, domain.TierCargo, s.Tier())
}

func TestQuote(t *testing.T) {
	s := NewSession(Snapshot(testItems()))

	q := s.Quote()
	assert.Equal(t, "25.00", q.Subtotal.StringFixed(2))
	assert.Equal(t, "0.25", q.MarketplaceFee.StringFixed(2))
	assert.True(t, q.CourierPrice.IsZero())

	require.NoError(t, s.SelectDelivery(domain.TierRegular))
	assert.Equal(t, "33.24", s.Quote().Total.StringFixed(2))

	require.NoError(t, s.SelectDelivery(domain.TierCargo))
	assert.Equal(t, "28.24", s.Quote().Total.StringFixed(2))
}

func TestSubmit(t *testing.T) {
	t.Run("missing delivery option", func(t *testing.T) {
		s := NewSession(Snapshot(testItems()))

		params, err := s.Submit()
		assert.ErrorIs(t, err, ErrMissingDeliveryOption)
		assert.Empty(t, params.CartItems)
		assert.Equal(t, StateSelecting, s.State())

		// recoverable by making a selection
		require.NoError(t, s.SelectDelivery(domain.TierRegular))
		_, err = s.Submit()
		assert.NoError(t, err)
	})

	t.Run("regular delivery", func(t *testing.T) {
		s := NewSession(Snapshot(testItems()))
		require.NoError(t, s.SelectDelivery(domain.TierRegular))

		params, err := s.Submit()
		require.NoError(t, err)
		assert.Equal(t, StateSubmitted, s.State())
		assert.Equal(t, domain.TierRegular, params.Tier)
		assert.Equal(t, "33.24", params.TotalPrice.StringFixed(2))
		assert.Equal(t, "7.99", params.CourierPrice.StringFixed(2))
		assert.Equal(t, "0.25", params.MarketplaceFee.StringFixed(2))
		assert.Len(t, params.CartItems, 2)
	})

	t.Run("session is not reusable", func(t *testing.T) {
		s := NewSession(Snapshot(testItems()))
		require.NoError(t, s.SelectDelivery(domain.TierExpress))
		_, err := s.Submit()
		require.NoError(t, err)

		_, err = s.Submit()
		assert.ErrorIs(t, err, ErrSessionSubmitted)
		assert.ErrorIs(t, s.SelectDelivery(domain.TierCargo), ErrSessionSubmitted)
	})

	t.Run("payment bundle is a copy", func(t *testing.T) {
		s := NewSession(Snapshot(testItems()))
		require.NoError(t, s.SelectDelivery(domain.TierExpress))
		params, err := s.Submit()
		require.NoError(t, err)

		params.CartItems[0].Quantity = 10
		assert.Equal(t, 2, s.Items()[0].Quantity)
	})
}

func TestEmptySelectionPricesToZero(t *testing.T) {
	s := NewSession(Snapshot(nil))
	require.NoError(t, s.SelectDelivery(domain.TierCargo))

	params, err := s.Submit()
	require.NoError(t, err)
	assert.Empty(t, params.CartItems)
	assert.True(t, params.MarketplaceFee.IsZero())
	assert.Equal(t, "2.99", params.TotalPrice.StringFixed(2))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "selecting", StateSelecting.String())
	assert.Equal(t, "delivery_chosen", StateDeliveryChosen.String())
	assert.Equal(t, "submitted", StateSubmitted.String())
	assert.Equal(t, "unknown", State(9).String())
}
