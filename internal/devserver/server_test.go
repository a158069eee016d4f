package devserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbytes/canteen/app/models"
)

func testServer() *server {
	s := &server{
		data:   newMemory(),
		hub:    newHub(),
		secret: []byte("test-secret"),
	}
	go s.hub.run()
	return s
}

func doJSON(t *testing.T, s *server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, s *server, username, password string) models.LoginResponse {
	t.Helper()

	rec := doJSON(t, s, "POST", "/api/auth/login", "", models.LoginRequest{
		Username: username, Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLoginSeededAccounts(t *testing.T) {
	s := testServer()

	resp := loginAs(t, s, "admin", "admin123")
	assert.Equal(t, "ROLE_ADMIN", resp.Role)
	assert.NotEmpty(t, resp.Token)

	rec := doJSON(t, s, "POST", "/api/auth/login", "", models.LoginRequest{
		Username: "admin", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	s := testServer()

	rec := doJSON(t, s, "GET", "/api/food/available", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, s, "GET", "/api/food/available", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleEnforcement(t *testing.T) {
	s := testServer()
	student := loginAs(t, s, "student", "student123")

	rec := doJSON(t, s, "GET", "/api/users/all", student.Token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, s, "GET", "/api/orders/all", student.Token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := loginAs(t, s, "admin", "admin123")
	rec = doJSON(t, s, "GET", "/api/users/all", admin.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderLifecycle(t *testing.T) {
	s := testServer()
	student := loginAs(t, s, "student", "student123")
	manager := loginAs(t, s, "manager", "manager123")

	// Place an order for two dosas.
	rec := doJSON(t, s, "POST", "/api/orders/place", student.Token, models.OrderRequest{
		Items: []models.OrderItemRequest{{FoodItemID: 1, Quantity: 2}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, models.OrderPending, order.Status)
	assert.InDelta(t, 120.0, order.TotalPrice, 0.001)

	// The manager advances it.
	rec = doJSON(t, s, "PUT",
		fmt.Sprintf("/api/orders/%d/status?newStatus=PREPARING", order.ID), manager.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The student sees the new status.
	rec = doJSON(t, s, "GET", fmt.Sprintf("/api/orders/my/%d", order.ID), student.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, models.OrderPreparing, order.Status)

	// A non-pending order cannot be self-cancelled.
	rec = doJSON(t, s, "PUT", fmt.Sprintf("/api/orders/my/cancel/%d", order.ID), student.Token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentMustMatchOrderTotal(t *testing.T) {
	s := testServer()
	student := loginAs(t, s, "student", "student123")

	rec := doJSON(t, s, "POST", "/api/orders/place", student.Token, models.OrderRequest{
		Items: []models.OrderItemRequest{{FoodItemID: 3, Quantity: 2}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	rec = doJSON(t, s, "POST", "/api/payments/process", student.Token, models.PaymentRequest{
		OrderID: order.ID, Amount: order.TotalPrice + 10, PaymentMethod: "UPI",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, "POST", "/api/payments/process", student.Token, models.PaymentRequest{
		OrderID: order.ID, Amount: order.TotalPrice, PaymentMethod: "UPI",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var payment models.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
	assert.Equal(t, models.PaymentCompleted, payment.Status)
}

func TestDonationFlow(t *testing.T) {
	s := testServer()
	manager := loginAs(t, s, "manager", "manager123")
	ngo := loginAs(t, s, "ngo", "ngo123")

	rec := doJSON(t, s, "PUT", "/api/food/2/donate", manager.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Donated items leave the student menu.
	student := loginAs(t, s, "student", "student123")
	rec = doJSON(t, s, "GET", "/api/food/available", student.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var available []models.FoodItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &available))
	for _, item := range available {
		assert.NotEqual(t, int64(2), item.ID)
	}

	// Double donation is rejected.
	rec = doJSON(t, s, "PUT", "/api/food/2/donate", manager.Token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The NGO records reception.
	rec = doJSON(t, s, "PUT", "/api/food/2/mark-received", ngo.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var item models.FoodItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.NotNil(t, item.ReceivedByNgo)

	// Only the NGO role may do that.
	rec = doJSON(t, s, "PUT", "/api/food/2/mark-received", manager.Token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegisterThenLogin(t *testing.T) {
	s := testServer()

	rec := doJSON(t, s, "POST", "/api/auth/register", "", models.RegisterRequest{
		Username: "newstudent", Email: "new@example.com", Password: "secret1", Role: "student",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := loginAs(t, s, "newstudent", "secret1")
	assert.Equal(t, "ROLE_STUDENT", resp.Role)

	// Duplicate usernames are rejected.
	rec = doJSON(t, s, "POST", "/api/auth/register", "", models.RegisterRequest{
		Username: "newstudent", Email: "other@example.com", Password: "secret1", Role: "student",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
