package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/internal/state"
)

func dosa() models.FoodItem {
	return models.FoodItem{ID: 1, Name: "Masala Dosa", Price: 60}
}

func thali() models.FoodItem {
	return models.FoodItem{ID: 2, Name: "Veg Thali", Price: 120}
}

func TestAddMergesByID(t *testing.T) {
	s := NewStore(state.NewMemory())

	s.Add(dosa())
	s.Add(dosa())
	s.Add(thali())

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 3, s.Count())
	assert.InDelta(t, 240.0, s.Total(), 0.001)
}

func TestSetQuantity(t *testing.T) {
	s := NewStore(state.NewMemory())
	s.Add(dosa())

	s.SetQuantity(1, 5)
	assert.Equal(t, 5, s.Count())

	// Zero removes the line, as does a negative quantity.
	s.SetQuantity(1, 0)
	assert.Empty(t, s.Lines())

	s.Add(dosa())
	s.SetQuantity(1, -2)
	assert.Empty(t, s.Lines())

	// Unknown id is a no-op.
	s.SetQuantity(99, 3)
	assert.Empty(t, s.Lines())
}

func TestRemoveAndClear(t *testing.T) {
	s := NewStore(state.NewMemory())
	s.Add(dosa())
	s.Add(thali())

	s.Remove(1)
	require.Len(t, s.Lines(), 1)
	assert.Equal(t, int64(2), s.Lines()[0].ID)

	s.Clear()
	assert.Empty(t, s.Lines())
	assert.Zero(t, s.Total())
}

func TestCartSurvivesRestart(t *testing.T) {
	repo := state.NewMemory()

	first := NewStore(repo)
	first.Add(dosa())
	first.Add(dosa())

	second := NewStore(repo)
	require.Len(t, second.Lines(), 1)
	assert.Equal(t, 2, second.Lines()[0].Quantity)
	assert.InDelta(t, 120.0, second.Total(), 0.001)
}

func TestCorruptStateStartsEmpty(t *testing.T) {
	repo := state.NewMemory()
	require.NoError(t, repo.Save(Key, []byte("{not json")))

	s := NewStore(repo)
	assert.Empty(t, s.Lines())
}

func TestOrderItemsPayload(t *testing.T) {
	s := NewStore(state.NewMemory())
	s.Add(dosa())
	s.Add(thali())
	s.SetQuantity(2, 3)

	items := s.OrderItems()
	require.Len(t, items, 2)
	assert.Equal(t, models.OrderItemRequest{FoodItemID: 1, Quantity: 1}, items[0])
	assert.Equal(t, models.OrderItemRequest{FoodItemID: 2, Quantity: 3}, items[1])
}

func TestLinesReturnsCopy(t *testing.T) {
	s := NewStore(state.NewMemory())
	s.Add(dosa())

	lines := s.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, s.Count())
}
