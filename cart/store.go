package cart

import "encoding/json"

// Storage is the durable backing for cart state, one serialized blob per
// session key.
type Storage interface {
	Load(sessionID string) ([]byte, bool, error)
	Save(sessionID string, data []byte) error
	Delete(sessionID string) error
}

// Store applies reducer operations to a session's cart and persists the
// result of every mutation. Loading tolerates missing or malformed stored
// data by falling back to the empty cart.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Get returns the session's current cart. Malformed stored data is
// discarded, not surfaced as an error.
func (st *Store) Get(sessionID string) (State, error) {
	data, ok, err := st.storage.Load(sessionID)
	if err != nil {
		return Empty(), err
	}
	if !ok {
		return Empty(), nil
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return Empty(), nil
	}
	if s.Items == nil {
		s.Items = []Item{}
	}
	// Stored totals are never trusted.
	return recompute(s), nil
}

func (st *Store) mutate(sessionID string, apply func(State) State) (State, error) {
	s, err := st.Get(sessionID)
	if err != nil {
		return s, err
	}
	s = apply(s)
	data, err := json.Marshal(s)
	if err != nil {
		return s, err
	}
	if err := st.storage.Save(sessionID, data); err != nil {
		return s, err
	}
	return s, nil
}

func (st *Store) Add(sessionID string, item Item, qty int) (State, error) {
	return st.mutate(sessionID, func(s State) State { return Add(s, item, qty) })
}

func (st *Store) SetQuantity(sessionID string, id uint, qty int) (State, error) {
	return st.mutate(sessionID, func(s State) State { return SetQuantity(s, id, qty) })
}

func (st *Store) Remove(sessionID string, id uint) (State, error) {
	return st.mutate(sessionID, func(s State) State { return Remove(s, id) })
}

// Clear resets the session's cart and drops its stored row.
func (st *Store) Clear(sessionID string) (State, error) {
	if err := st.storage.Delete(sessionID); err != nil {
		return Empty(), err
	}
	return Empty(), nil
}
