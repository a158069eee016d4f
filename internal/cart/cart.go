// Package cart holds the pending order: one line per food item, merged by
// id, persisted wholesale under the "cartItems" state key after every
// mutation.
package cart

import (
	"encoding/json"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/internal/state"
	"github.com/smartbytes/canteen/pkg/collection"
	"github.com/smartbytes/canteen/pkg/logger"
)

// Key is the state-repository key holding the cart.
const Key = "cartItems"

// Line is one item-and-quantity entry in the pending order.
type Line struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Store is the cart store. It is the sole writer of the "cartItems" key.
type Store struct {
	repo  state.Repository
	lines []Line
}

// NewStore returns a cart store, restoring any persisted lines. Corrupt or
// missing state degrades to an empty cart.
func NewStore(repo state.Repository) *Store {
	s := &Store{repo: repo}
	if data, found := repo.Load(Key); found {
		if err := json.Unmarshal(data, &s.lines); err != nil {
			logger.Warn("cart: corrupt persisted cart, starting empty")
			s.lines = nil
		}
	}
	return s
}

// Add puts item in the cart: an existing line's quantity grows by one, a
// new item starts at quantity 1.
func (s *Store) Add(item models.FoodItem) {
	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity++
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, Line{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
	s.persist()
}

// Remove deletes the line for id. No-op when absent.
func (s *Store) Remove(id int64) {
	before := len(s.lines)
	s.lines = collection.Filter(s.lines, func(l Line) bool { return l.ID != id })
	if len(s.lines) != before {
		s.persist()
	}
}

// SetQuantity overwrites the quantity for id. A quantity of zero or less
// removes the line.
func (s *Store) SetQuantity(id int64, quantity int) {
	if quantity <= 0 {
		s.Remove(id)
		return
	}
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart, e.g. after a successful order placement.
func (s *Store) Clear() {
	s.lines = nil
	s.persist()
}

// Lines returns a copy of the current cart lines.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of price × quantity over all lines, recomputed on
// demand.
func (s *Store) Total() float64 {
	return collection.Reduce(s.lines, 0.0, func(acc float64, l Line) float64 {
		return acc + l.Price*float64(l.Quantity)
	})
}

// Count is the sum of all quantities, used for the cart badge.
func (s *Store) Count() int {
	return collection.Reduce(s.lines, 0, func(acc int, l Line) int {
		return acc + l.Quantity
	})
}

// OrderItems converts the cart into the place-order payload.
func (s *Store) OrderItems() []models.OrderItemRequest {
	return collection.Map(s.lines, func(l Line) models.OrderItemRequest {
		return models.OrderItemRequest{FoodItemID: l.ID, Quantity: l.Quantity}
	})
}

// persist writes the cart wholesale; failures are logged and the in-memory
// state stays authoritative.
func (s *Store) persist() {
	data, err := json.Marshal(s.lines)
	if err != nil {
		logger.Warn("cart: marshal", "error", err)
		return
	}
	if err := s.repo.Save(Key, data); err != nil {
		logger.Warn("cart: persist", "error", err)
	}
}
