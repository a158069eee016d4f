package services

import (
	"fmt"
	"net/http"

	"github.com/smartbytes/canteen/app/models"
)

// OrderService talks to /orders: the student's own orders plus the
// manager/admin order board.
type OrderService struct {
	c *Client
}

func NewOrderService(c *Client) *OrderService {
	return &OrderService{c: c}
}

// Place submits the cart as a new order.
func (s *OrderService) Place(items []models.OrderItemRequest) (models.Order, error) {
	return s.one(http.MethodPost, "/orders/place", models.OrderRequest{Items: items}, nil)
}

// My lists the authenticated student's orders.
func (s *OrderService) My() ([]models.Order, error) {
	return s.list("/orders/my")
}

// MyByID fetches one of the student's own orders.
func (s *OrderService) MyByID(id int64) (models.Order, error) {
	return s.one(http.MethodGet, fmt.Sprintf("/orders/my/%d", id), nil, nil)
}

// CancelMy cancels one of the student's own orders.
func (s *OrderService) CancelMy(id int64) (models.Order, error) {
	return s.one(http.MethodPut, fmt.Sprintf("/orders/my/cancel/%d", id), struct{}{}, nil)
}

// All lists every order (manager/admin).
func (s *OrderService) All() ([]models.Order, error) {
	return s.list("/orders/all")
}

// Details fetches any order by id (manager/admin).
func (s *OrderService) Details(id int64) (models.Order, error) {
	return s.one(http.MethodGet, fmt.Sprintf("/orders/details/%d", id), nil, nil)
}

// UpdateStatus moves an order along its lifecycle (manager).
func (s *OrderService) UpdateStatus(id int64, newStatus string) (models.Order, error) {
	return s.one(http.MethodPut, fmt.Sprintf("/orders/%d/status", id), struct{}{},
		map[string]string{"newStatus": newStatus})
}

// Cancel cancels any order (manager).
func (s *OrderService) Cancel(id int64) (models.Order, error) {
	return s.one(http.MethodPut, fmt.Sprintf("/orders/cancel/%d", id), struct{}{}, nil)
}

func (s *OrderService) list(path string) ([]models.Order, error) {
	resp, err := s.c.do(http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, decodeError(resp)
	}

	var orders []models.Order
	if err := resp.JSON(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) one(method, path string, body interface{}, query map[string]string) (models.Order, error) {
	var order models.Order

	resp, err := s.c.do(method, path, body, query)
	if err != nil {
		return order, err
	}
	if !resp.OK() {
		return order, decodeError(resp)
	}
	if err := resp.JSON(&order); err != nil {
		return order, err
	}
	return order, nil
}
