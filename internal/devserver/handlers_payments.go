package devserver

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/pkg/collection"
)

var paymentStatuses = map[string]bool{
	models.PaymentPending:         true,
	models.PaymentCompleted:       true,
	models.PaymentFailed:          true,
	models.PaymentRefunded:        true,
	models.PaymentCancelledByUser: true,
}

func (s *server) handlePaymentProcess(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if !readJSON(w, r, &req) {
		return
	}
	id := caller(r)

	s.data.mu.Lock()
	order, ok := s.data.orders[req.OrderID]
	if !ok || order.UserID != id.UserID {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	if math.Abs(req.Amount-order.TotalPrice) > 0.009 {
		s.data.mu.Unlock()
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Amount must equal the order total %.2f", order.TotalPrice))
		return
	}

	now := time.Now()
	s.data.nextPayment++
	payment := &models.Payment{
		ID:            s.data.nextPayment,
		UserID:        id.UserID,
		Username:      id.Username,
		OrderID:       order.ID,
		Amount:        req.Amount,
		PaymentDate:   &now,
		Status:        models.PaymentCompleted,
		PaymentMethod: req.PaymentMethod,
	}
	s.data.payments[payment.ID] = payment
	out := *payment
	s.data.mu.Unlock()

	s.hub.publish(fmt.Sprintf("Payment of %.2f received for order #%d.", out.Amount, out.OrderID))
	writeJSON(w, http.StatusOK, out)
}

func (s *server) paymentsWhere(keep func(models.Payment) bool) []models.Payment {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	payments := make([]models.Payment, 0, len(s.data.payments))
	for _, p := range s.data.payments {
		if keep(*p) {
			payments = append(payments, *p)
		}
	}
	return collection.SortBy(payments, func(a, b models.Payment) bool { return a.ID > b.ID })
}

func (s *server) handlePaymentsMy(w http.ResponseWriter, r *http.Request) {
	id := caller(r)
	writeJSON(w, http.StatusOK, s.paymentsWhere(func(p models.Payment) bool {
		return p.UserID == id.UserID
	}))
}

func (s *server) handlePaymentsAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.paymentsWhere(func(models.Payment) bool { return true }))
}

func (s *server) handlePaymentMyByID(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid payment id")
		return
	}
	id := caller(r)

	s.data.mu.Lock()
	payment, ok := s.data.payments[paymentID]
	if !ok || payment.UserID != id.UserID {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "Payment not found")
		return
	}
	out := *payment
	s.data.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *server) handlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid payment id")
		return
	}
	newStatus := r.URL.Query().Get("newStatus")
	if !paymentStatuses[newStatus] {
		writeError(w, http.StatusBadRequest, "Unknown payment status: "+newStatus)
		return
	}

	s.data.mu.Lock()
	payment, ok := s.data.payments[paymentID]
	if !ok {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "Payment not found")
		return
	}
	payment.Status = newStatus
	out := *payment
	s.data.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}
