package devserver

import (
	"net/http"
	"time"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/pkg/collection"
	"github.com/smartbytes/canteen/pkg/validate"
)

// foodWhere returns items matching keep, sorted by id.
func (s *server) foodWhere(keep func(models.FoodItem) bool) []models.FoodItem {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	items := make([]models.FoodItem, 0, len(s.data.food))
	for _, item := range s.data.food {
		if keep(*item) {
			items = append(items, *item)
		}
	}
	return collection.SortBy(items, func(a, b models.FoodItem) bool { return a.ID < b.ID })
}

func (s *server) handleFoodAvailable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.foodWhere(func(f models.FoodItem) bool {
		return f.AvailableToday && f.DonatedAt == nil
	}))
}

func (s *server) handleFoodAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.foodWhere(func(models.FoodItem) bool { return true }))
}

func (s *server) handleFoodDonated(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.foodWhere(func(f models.FoodItem) bool {
		return f.DonatedAt != nil
	}))
}

func (s *server) handleFoodAdd(w http.ResponseWriter, r *http.Request) {
	var input models.FoodItemInput
	if !readJSON(w, r, &input) {
		return
	}
	if errs := validate.Struct(input); len(errs) > 0 {
		for _, msg := range errs {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
	}

	s.data.mu.Lock()
	s.data.nextFood++
	item := &models.FoodItem{
		ID:             s.data.nextFood,
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		AvailableToday: input.AvailableToday,
	}
	s.data.food[item.ID] = item
	s.data.mu.Unlock()

	writeJSON(w, http.StatusOK, item)
}

func (s *server) handleFoodUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food item id")
		return
	}
	var input models.FoodItemInput
	if !readJSON(w, r, &input) {
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	item, ok := s.data.food[id]
	if !ok {
		writeError(w, http.StatusNotFound, "Food item not found")
		return
	}
	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.AvailableToday = input.AvailableToday

	writeJSON(w, http.StatusOK, item)
}

func (s *server) handleFoodDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food item id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, ok := s.data.food[id]; !ok {
		writeError(w, http.StatusNotFound, "Food item not found")
		return
	}
	delete(s.data.food, id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Food item deleted"})
}

func (s *server) handleFoodToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food item id")
		return
	}
	var available bool
	if !readJSON(w, r, &available) {
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	item, ok := s.data.food[id]
	if !ok {
		writeError(w, http.StatusNotFound, "Food item not found")
		return
	}
	item.AvailableToday = available
	writeJSON(w, http.StatusOK, item)
}

func (s *server) handleFoodDonate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food item id")
		return
	}

	s.data.mu.Lock()
	item, ok := s.data.food[id]
	if !ok {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "Food item not found")
		return
	}
	if item.DonatedAt != nil {
		s.data.mu.Unlock()
		writeError(w, http.StatusBadRequest, "Food item is already donated")
		return
	}
	now := time.Now()
	item.DonatedAt = &now
	item.AvailableToday = false
	out := *item
	s.data.mu.Unlock()

	s.hub.publish(out.Name + " has been donated and is ready for NGO pickup.")
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleFoodMarkReceived(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food item id")
		return
	}

	s.data.mu.Lock()
	item, ok := s.data.food[id]
	if !ok || item.DonatedAt == nil {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "Donated item not found")
		return
	}
	now := time.Now()
	item.ReceivedByNgo = &now
	out := *item
	s.data.mu.Unlock()

	s.hub.publish(out.Name + " was received by the NGO.")
	writeJSON(w, http.StatusOK, out)
}
