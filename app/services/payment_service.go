package services

import (
	"fmt"
	"net/http"

	"github.com/smartbytes/canteen/app/models"
)

// PaymentService talks to /payments.
type PaymentService struct {
	c *Client
}

func NewPaymentService(c *Client) *PaymentService {
	return &PaymentService{c: c}
}

// Process pays for an order.
func (s *PaymentService) Process(req models.PaymentRequest) (models.Payment, error) {
	return s.one(http.MethodPost, "/payments/process", req, nil)
}

// My lists the authenticated student's payments.
func (s *PaymentService) My() ([]models.Payment, error) {
	return s.list("/payments/my")
}

// MyByID fetches one of the student's own payments.
func (s *PaymentService) MyByID(id int64) (models.Payment, error) {
	return s.one(http.MethodGet, fmt.Sprintf("/payments/my/%d", id), nil, nil)
}

// All lists every payment (admin).
func (s *PaymentService) All() ([]models.Payment, error) {
	return s.list("/payments/all")
}

// UpdateStatus changes a payment's status (admin).
func (s *PaymentService) UpdateStatus(id int64, newStatus string) (models.Payment, error) {
	return s.one(http.MethodPut, fmt.Sprintf("/payments/%d/status", id), struct{}{},
		map[string]string{"newStatus": newStatus})
}

func (s *PaymentService) list(path string) ([]models.Payment, error) {
	resp, err := s.c.do(http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, decodeError(resp)
	}

	var payments []models.Payment
	if err := resp.JSON(&payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *PaymentService) one(method, path string, body interface{}, query map[string]string) (models.Payment, error) {
	var payment models.Payment

	resp, err := s.c.do(method, path, body, query)
	if err != nil {
		return payment, err
	}
	if !resp.OK() {
		return payment, decodeError(resp)
	}
	if err := resp.JSON(&payment); err != nil {
		return payment, err
	}
	return payment, nil
}
