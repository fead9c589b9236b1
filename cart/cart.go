// Package cart holds the storefront's cart state container: a pure reducer
// over an ordered item list, wrapped by a Store that persists every mutation
// through a single serialization boundary.
package cart

// Item is one cart line. StockQuantity is the upper bound for Quantity at
// the time the product was added.
type Item struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	TitleAR       string  `json:"title_ar,omitempty"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      string  `json:"image_url,omitempty"`
}

// State is the cart. Total and ItemCount are derived from Items on every
// mutation and are never trusted from a stored copy.
type State struct {
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// Empty returns the zero cart.
func Empty() State {
	return State{Items: []Item{}}
}

// clampQuantity bounds q to [1, stock]. A non-positive stock means the stock
// bound is unknown and only the lower bound applies.
func clampQuantity(q, stock int) int {
	if q < 1 {
		q = 1
	}
	if stock > 0 && q > stock {
		q = stock
	}
	return q
}

func recompute(s State) State {
	s.Total = 0
	s.ItemCount = 0
	for _, it := range s.Items {
		s.Total += it.Price * float64(it.Quantity)
		s.ItemCount += it.Quantity
	}
	return s
}

// Add merges item into s: an existing ID has its quantity incremented by
// qty, a new ID is appended. Quantities exceeding stock are clamped, not
// rejected.
func Add(s State, item Item, qty int) State {
	if qty < 1 {
		qty = 1
	}
	items := make([]Item, len(s.Items))
	copy(items, s.Items)

	found := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity = clampQuantity(items[i].Quantity+qty, items[i].StockQuantity)
			found = true
			break
		}
	}
	if !found {
		item.Quantity = clampQuantity(qty, item.StockQuantity)
		items = append(items, item)
	}
	s.Items = items
	return recompute(s)
}

// SetQuantity sets the quantity of the item with the given ID, clamped to
// [1, stock]. A quantity below 1 removes the item. An absent ID is a no-op.
func SetQuantity(s State, id uint, qty int) State {
	if qty < 1 {
		return Remove(s, id)
	}
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = clampQuantity(qty, items[i].StockQuantity)
			break
		}
	}
	s.Items = items
	return recompute(s)
}

// Remove deletes the item with the given ID if present.
func Remove(s State, id uint) State {
	items := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	s.Items = items
	return recompute(s)
}
