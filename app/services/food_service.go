package services

import (
	"fmt"
	"net/http"
	"time"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/pkg/cache"
	"github.com/smartbytes/canteen/pkg/metrics"
)

const (
	availableCacheKey = "canteen:food:available"
	availableCacheTTL = time.Minute
)

// FoodService talks to /food: the student catalog, the manager's item CRUD
// and the donation workflow.
type FoodService struct {
	c *Client
}

func NewFoodService(c *Client) *FoodService {
	return &FoodService{c: c}
}

// All returns every item including unavailable ones (manager/admin view).
func (s *FoodService) All() ([]models.FoodItem, error) {
	return s.list("/food/all")
}

// Available returns today's orderable items, kept warm in the catalog
// cache between CLI invocations.
func (s *FoodService) Available() ([]models.FoodItem, error) {
	var cached []models.FoodItem
	if cache.Get(availableCacheKey, &cached) {
		metrics.CacheHits.Inc()
		return cached, nil
	}
	metrics.CacheMisses.Inc()

	items, err := s.list("/food/available")
	if err != nil {
		return nil, err
	}
	_ = cache.Set(availableCacheKey, items, availableCacheTTL)
	return items, nil
}

func (s *FoodService) list(path string) ([]models.FoodItem, error) {
	resp, err := s.c.do(http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, decodeError(resp)
	}

	var items []models.FoodItem
	if err := resp.JSON(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add creates a new food item (canteen manager).
func (s *FoodService) Add(input models.FoodItemInput) (models.FoodItem, error) {
	return s.mutate(http.MethodPost, "/food/add", input)
}

// Update overwrites an existing item (canteen manager).
func (s *FoodService) Update(id int64, input models.FoodItemInput) (models.FoodItem, error) {
	return s.mutate(http.MethodPut, fmt.Sprintf("/food/%d", id), input)
}

// Delete removes an item (canteen manager).
func (s *FoodService) Delete(id int64) error {
	resp, err := s.c.do(http.MethodDelete, fmt.Sprintf("/food/%d", id), nil, nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return decodeError(resp)
	}
	_ = cache.Del(availableCacheKey)
	return nil
}

// ToggleAvailability flips whether the item can be ordered today.
func (s *FoodService) ToggleAvailability(id int64, available bool) (models.FoodItem, error) {
	return s.mutate(http.MethodPut, fmt.Sprintf("/food/%d/toggle-availability", id), available)
}

// Donate marks an item as donated to an NGO (canteen manager).
func (s *FoodService) Donate(id int64) (models.FoodItem, error) {
	return s.mutate(http.MethodPut, fmt.Sprintf("/food/%d/donate", id), struct{}{})
}

// Donated lists items awaiting or past NGO pickup (NGO view).
func (s *FoodService) Donated() ([]models.FoodItem, error) {
	return s.list("/food/donated")
}

// MarkReceived records NGO reception of a donated item.
func (s *FoodService) MarkReceived(id int64) (models.FoodItem, error) {
	return s.mutate(http.MethodPut, fmt.Sprintf("/food/%d/mark-received", id), struct{}{})
}

func (s *FoodService) mutate(method, path string, body interface{}) (models.FoodItem, error) {
	var item models.FoodItem

	resp, err := s.c.do(method, path, body, nil)
	if err != nil {
		return item, err
	}
	if !resp.OK() {
		return item, decodeError(resp)
	}
	if err := resp.JSON(&item); err != nil {
		return item, err
	}

	// Catalog changed; next Available() fetches fresh.
	_ = cache.Del(availableCacheKey)
	return item, nil
}
