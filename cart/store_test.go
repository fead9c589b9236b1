package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	rows map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{rows: map[string][]byte{}}
}

func (m *memStorage) Load(sessionID string) ([]byte, bool, error) {
	data, ok := m.rows[sessionID]
	return data, ok, nil
}

func (m *memStorage) Save(sessionID string, data []byte) error {
	m.rows[sessionID] = data
	return nil
}

func (m *memStorage) Delete(sessionID string) error {
	delete(m.rows, sessionID)
	return nil
}

func TestStorePersistsEveryMutation(t *testing.T) {
	mem := newMemStorage()
	st := NewStore(mem)

	_, err := st.Add("s1", Item{ID: 1, Price: 10, StockQuantity: 5}, 2)
	require.NoError(t, err)

	var stored State
	require.NoError(t, json.Unmarshal(mem.rows["s1"], &stored))
	assert.Equal(t, 2, stored.ItemCount)

	_, err = st.SetQuantity("s1", 1, 4)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(mem.rows["s1"], &stored))
	assert.Equal(t, 4, stored.Items[0].Quantity)
}

func TestStoreRestoresAcrossInstances(t *testing.T) {
	mem := newMemStorage()

	_, err := NewStore(mem).Add("s1", Item{ID: 1, Price: 10, StockQuantity: 5}, 3)
	require.NoError(t, err)

	// A fresh store over the same storage sees the same cart.
	s, err := NewStore(mem).Get("s1")
	require.NoError(t, err)
	assert.Equal(t, 3, s.ItemCount)
	assert.Equal(t, 30.0, s.Total)
}

func TestStoreDiscardsMalformedData(t *testing.T) {
	mem := newMemStorage()
	mem.rows["s1"] = []byte("{not json")

	s, err := NewStore(mem).Get("s1")
	require.NoError(t, err, "malformed stored data is not an error")
	assert.Empty(t, s.Items)
	assert.Equal(t, 0.0, s.Total)
}

func TestStoreIgnoresStaleStoredTotals(t *testing.T) {
	mem := newMemStorage()
	mem.rows["s1"] = []byte(`{"items":[{"id":1,"price":10,"quantity":2,"stock_quantity":5}],"total":999,"item_count":7}`)

	s, err := NewStore(mem).Get("s1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, s.Total)
	assert.Equal(t, 2, s.ItemCount)
}

func TestStoreClear(t *testing.T) {
	mem := newMemStorage()
	st := NewStore(mem)

	_, err := st.Add("s1", Item{ID: 1, Price: 10, StockQuantity: 5}, 1)
	require.NoError(t, err)

	s, err := st.Clear("s1")
	require.NoError(t, err)
	assert.Empty(t, s.Items)
	assert.Equal(t, 0, s.ItemCount)

	_, ok := mem.rows["s1"]
	assert.False(t, ok, "clear drops the stored row")
}

func TestStoreMissingSessionIsEmpty(t *testing.T) {
	s, err := NewStore(newMemStorage()).Get("nope")
	require.NoError(t, err)
	assert.Empty(t, s.Items)
}
