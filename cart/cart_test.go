package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sumOf(s State) (total float64, count int) {
	for _, it := range s.Items {
		total += it.Price * float64(it.Quantity)
		count += it.Quantity
	}
	return
}

func TestAddNewItem(t *testing.T) {
	s := Add(Empty(), Item{ID: 1, Title: "The Quran Translation", Price: 45, StockQuantity: 5}, 2)

	assert.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assert.Equal(t, 90.0, s.Total)
	assert.Equal(t, 2, s.ItemCount)
}

func TestAddExistingItemIncrements(t *testing.T) {
	s := Add(Empty(), Item{ID: 1, Price: 10, StockQuantity: 5}, 2)
	s = Add(s, Item{ID: 1, Price: 10, StockQuantity: 5}, 1)

	assert.Len(t, s.Items, 1, "re-adding must not create a duplicate entry")
	assert.Equal(t, 3, s.Items[0].Quantity)
	assert.Equal(t, 30.0, s.Total)
}

func TestAddClampsToStock(t *testing.T) {
	s := Add(Empty(), Item{ID: 1, Price: 10, StockQuantity: 3}, 7)

	assert.Equal(t, 3, s.Items[0].Quantity)

	s = Add(s, Item{ID: 1, Price: 10, StockQuantity: 3}, 1)
	assert.Equal(t, 3, s.Items[0].Quantity, "increment past stock silently clamps")
}

func TestSetQuantity(t *testing.T) {
	s := Add(Empty(), Item{ID: 1, Price: 10, StockQuantity: 5}, 2)

	s = SetQuantity(s, 1, 4)
	assert.Equal(t, 4, s.Items[0].Quantity)
	assert.Equal(t, 40.0, s.Total)

	s = SetQuantity(s, 1, 10)
	assert.Equal(t, 5, s.Items[0].Quantity, "clamped to stock")

	s = SetQuantity(s, 99, 3)
	assert.Equal(t, 5, s.Items[0].Quantity, "absent id is a no-op")
}

func TestSetQuantityBelowOneRemoves(t *testing.T) {
	base := Add(Empty(), Item{ID: 1, Price: 10, StockQuantity: 5}, 2)

	for _, q := range []int{0, -1} {
		s := SetQuantity(base, 1, q)
		assert.Empty(t, s.Items)
		assert.Equal(t, 0.0, s.Total)
		assert.Equal(t, 0, s.ItemCount)
	}
}

func TestRemove(t *testing.T) {
	s := Add(Empty(), Item{ID: 1, Price: 10, StockQuantity: 5}, 1)
	s = Add(s, Item{ID: 2, Price: 20, StockQuantity: 5}, 1)

	s = Remove(s, 1)
	assert.Len(t, s.Items, 1)
	assert.Equal(t, uint(2), s.Items[0].ID)

	s = Remove(s, 42) // absent id is a no-op
	assert.Len(t, s.Items, 1)
}

// The scenario from the storefront's cart flow: add, re-add, over-set, remove.
func TestCartScenario(t *testing.T) {
	a := Item{ID: 1, Title: "A", Price: 10, StockQuantity: 5}

	s := Add(Empty(), a, 2)
	assert.Equal(t, 20.0, s.Total)
	assert.Equal(t, 2, s.ItemCount)

	s = Add(s, a, 1)
	assert.Equal(t, 3, s.Items[0].Quantity)
	assert.Equal(t, 30.0, s.Total)

	s = SetQuantity(s, 1, 10)
	assert.Equal(t, 5, s.Items[0].Quantity)
	assert.Equal(t, 50.0, s.Total)

	s = Remove(s, 1)
	assert.Empty(t, s.Items)
	assert.Equal(t, 0.0, s.Total)
}

// Totals are derived, never stale, for any mutation sequence.
func TestDerivedTotalsStayConsistent(t *testing.T) {
	s := Empty()
	ops := []func(State) State{
		func(s State) State { return Add(s, Item{ID: 1, Price: 9.5, StockQuantity: 4}, 3) },
		func(s State) State { return Add(s, Item{ID: 2, Price: 30, StockQuantity: 2}, 5) },
		func(s State) State { return SetQuantity(s, 1, 1) },
		func(s State) State { return Add(s, Item{ID: 3, Price: 12, StockQuantity: 0}, 2) },
		func(s State) State { return Remove(s, 2) },
		func(s State) State { return SetQuantity(s, 3, 0) },
	}
	for i, op := range ops {
		s = op(s)
		total, count := sumOf(s)
		assert.Equal(t, total, s.Total, "op %d", i)
		assert.Equal(t, count, s.ItemCount, "op %d", i)

		seen := map[uint]bool{}
		for _, it := range s.Items {
			assert.False(t, seen[it.ID], "op %d: duplicate id %d", i, it.ID)
			seen[it.ID] = true
			if it.StockQuantity > 0 {
				assert.GreaterOrEqual(t, it.Quantity, 1, "op %d", i)
				assert.LessOrEqual(t, it.Quantity, it.StockQuantity, "op %d", i)
			}
		}
	}
}
