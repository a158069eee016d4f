package devserver

import (
	"fmt"
	"net/http"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/pkg/collection"
)

var orderStatuses = map[string]bool{
	models.OrderPending:        true,
	models.OrderPreparing:      true,
	models.OrderReadyForPickup: true,
	models.OrderPickedUp:       true,
	models.OrderCancelled:      true,
}

func (s *server) handleOrderPlace(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if !readJSON(w, r, &req) {
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Order must contain at least one item")
		return
	}
	id := caller(r)

	s.data.mu.Lock()
	order := &models.Order{
		UserID:   id.UserID,
		Username: id.Username,
		Status:   models.OrderPending,
	}
	for _, line := range req.Items {
		item, ok := s.data.food[line.FoodItemID]
		if !ok || !item.AvailableToday {
			s.data.mu.Unlock()
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("Food item %d is not available", line.FoodItemID))
			return
		}
		if line.Quantity <= 0 {
			s.data.mu.Unlock()
			writeError(w, http.StatusBadRequest, "Quantity must be positive")
			return
		}

		s.data.nextItem++
		subtotal := item.Price * float64(line.Quantity)
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ID:            s.data.nextItem,
			FoodItemID:    item.ID,
			FoodItemName:  item.Name,
			FoodItemPrice: item.Price,
			Quantity:      line.Quantity,
			Subtotal:      subtotal,
		})
		order.TotalPrice += subtotal
	}
	s.data.nextOrder++
	order.ID = s.data.nextOrder
	s.data.orders[order.ID] = order
	out := *order
	s.data.mu.Unlock()

	s.hub.publish(fmt.Sprintf("New order #%d from %s.", out.ID, out.Username))
	writeJSON(w, http.StatusOK, out)
}

func (s *server) ordersWhere(keep func(models.Order) bool) []models.Order {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	orders := make([]models.Order, 0, len(s.data.orders))
	for _, o := range s.data.orders {
		if keep(*o) {
			orders = append(orders, *o)
		}
	}
	return collection.SortBy(orders, func(a, b models.Order) bool { return a.ID > b.ID })
}

func (s *server) handleOrdersMy(w http.ResponseWriter, r *http.Request) {
	id := caller(r)
	writeJSON(w, http.StatusOK, s.ordersWhere(func(o models.Order) bool {
		return o.UserID == id.UserID
	}))
}

func (s *server) handleOrdersAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ordersWhere(func(models.Order) bool { return true }))
}

func (s *server) handleOrderMyByID(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	id := caller(r)

	s.data.mu.Lock()
	order, ok := s.data.orders[orderID]
	if !ok || order.UserID != id.UserID {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	out := *order
	s.data.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleOrderDetails(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	s.data.mu.Lock()
	order, ok := s.data.orders[orderID]
	if !ok {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	out := *order
	s.data.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleOrderMyCancel(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	id := caller(r)

	s.data.mu.Lock()
	order, ok := s.data.orders[orderID]
	if !ok || order.UserID != id.UserID {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	if order.Status != models.OrderPending {
		s.data.mu.Unlock()
		writeError(w, http.StatusBadRequest, "Only pending orders can be cancelled")
		return
	}
	order.Status = models.OrderCancelled
	out := *order
	s.data.mu.Unlock()

	s.hub.publish(fmt.Sprintf("Order #%d was cancelled by %s.", out.ID, out.Username))
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleOrderCancel(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	s.data.mu.Lock()
	order, ok := s.data.orders[orderID]
	if !ok {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	order.Status = models.OrderCancelled
	out := *order
	s.data.mu.Unlock()

	s.hub.publish(fmt.Sprintf("Order #%d was cancelled.", out.ID))
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	newStatus := r.URL.Query().Get("newStatus")
	if !orderStatuses[newStatus] {
		writeError(w, http.StatusBadRequest, "Unknown order status: "+newStatus)
		return
	}

	s.data.mu.Lock()
	order, ok := s.data.orders[orderID]
	if !ok {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	order.Status = newStatus
	out := *order
	s.data.mu.Unlock()

	s.hub.publish(fmt.Sprintf("Order #%d is now %s.", out.ID, out.Status))
	writeJSON(w, http.StatusOK, out)
}
