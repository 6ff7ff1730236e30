package memory

import (
	"testing"

	"github.com/dwikikusuma/shoping-mobile/internal/cart/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineRepo(t *testing.T) {
	r := NewLineRepo()

	r.Put(domain.Line{ProductID: "a", Quantity: 1})
	r.Put(domain.Line{ProductID: "b", Quantity: 1})
	r.Put(domain.Line{ProductID: "c", Quantity: 1})

	t.Run("replace keeps position", func(t *testing.T) {
		r.Put(domain.Line{ProductID: "a", Quantity: 7})
		lines := r.List()
		require.Len(t, lines, 3)
		assert.Equal(t, "a", lines[0].ProductID)
		assert.Equal(t, 7, lines[0].Quantity)
	})

	t.Run("delete", func(t *testing.T) {
		assert.True(t, r.Delete("b"))
		assert.False(t, r.Delete("b"))
		_, ok := r.Get("b")
		assert.False(t, ok)

		ids := []string{}
		for _, l := range r.List() {
			ids = append(ids, l.ProductID)
		}
		assert.Equal(t, []string{"a", "c"}, ids)
	})

	t.Run("re-added line goes to the end", func(t *testing.T) {
		r.Put(domain.Line{ProductID: "b", Quantity: 1})
		lines := r.List()
		assert.Equal(t, "b", lines[len(lines)-1].ProductID)
	})

	t.Run("clear", func(t *testing.T) {
		r.Clear()
		assert.Empty(t, r.List())
		_, ok := r.Get("a")
		assert.False(t, ok)
	})
}
