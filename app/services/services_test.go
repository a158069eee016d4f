package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/internal/session"
	"github.com/smartbytes/canteen/internal/state"
	"github.com/smartbytes/canteen/pkg/httpclient"
	"github.com/smartbytes/canteen/pkg/testkit"
)

// harness wires a client against a scripted transport.
func harness(t *testing.T) (*testkit.MockTransport, *session.Store, *Client) {
	t.Helper()

	mt := testkit.NewMockTransport()
	httpclient.DefaultClient.Transport = mt
	t.Cleanup(httpclient.ResetTransport)

	sessions := session.NewStore(state.NewMemory())
	return mt, sessions, NewClient(sessions)
}

func login(t *testing.T, mt *testkit.MockTransport, sessions *session.Store, c *Client) {
	t.Helper()
	mt.Stub("POST", "/auth/login", http.StatusOK, testkit.JSON(
		`{"token":"tok","id":7,"username":"asha","email":"asha@example.com","role":"STUDENT"}`))
	_, err := sessions.Login(NewAuthService(c), "asha", "secret")
	require.NoError(t, err)
}

func TestLoginSuccess(t *testing.T) {
	mt, sessions, c := harness(t)
	login(t, mt, sessions, c)

	sess := sessions.Current()
	require.NotNil(t, sess)
	assert.Equal(t, session.RoleStudent, sess.Role)
	assert.Equal(t, "tok", sessions.Token())
	assert.Equal(t, 1, mt.Calls("POST", "/auth/login"))
}

func TestLoginFailureSurfacesBackendMessage(t *testing.T) {
	mt, sessions, c := harness(t)
	mt.Stub("POST", "/auth/login", http.StatusUnauthorized, testkit.JSON(
		`{"message":"Invalid username or password"}`))

	_, err := sessions.Login(NewAuthService(c), "asha", "wrong")

	var authErr *session.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid username or password", authErr.Message)
	assert.Nil(t, sessions.Current())
}

func TestRejectedLoginDoesNotFireUnauthorizedHook(t *testing.T) {
	mt, sessions, c := harness(t)
	mt.Stub("POST", "/auth/login", http.StatusUnauthorized, testkit.JSON(`{"message":"nope"}`))

	fired := false
	c.OnUnauthorized(func() { fired = true })

	_, err := sessions.Login(NewAuthService(c), "asha", "wrong")
	require.Error(t, err)
	assert.False(t, fired)
}

func TestExpiredTokenForcesLogoutEverywhere(t *testing.T) {
	mt, sessions, c := harness(t)
	login(t, mt, sessions, c)

	fired := false
	c.OnUnauthorized(func() { fired = true })

	mt.Stub("GET", "/orders/my", http.StatusUnauthorized, testkit.JSON(`{"message":"expired"}`))
	_, err := NewOrderService(c).My()

	require.Error(t, err)
	assert.True(t, fired)
	assert.Nil(t, sessions.Current(), "session must be cleared on a rejected credential")
}

func TestForbiddenKeepsSession(t *testing.T) {
	mt, sessions, c := harness(t)
	login(t, mt, sessions, c)

	mt.Stub("GET", "/users/all", http.StatusForbidden, testkit.JSON(
		`{"message":"insufficient role: ROLE_STUDENT"}`))
	_, err := NewUserService(c).All()

	var perm *PermissionError
	require.ErrorAs(t, err, &perm)
	assert.Contains(t, perm.Message, "insufficient role")
	assert.NotNil(t, sessions.Current(), "a 403 must not clear the session")
}

func TestAPIErrorCarriesBackendMessage(t *testing.T) {
	mt, sessions, c := harness(t)
	login(t, mt, sessions, c)

	mt.Stub("PUT", "/orders/my/cancel/3", http.StatusBadRequest, testkit.JSON(
		`{"message":"Only pending orders can be cancelled"}`))
	_, err := NewOrderService(c).CancelMy(3)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Only pending orders can be cancelled", apiErr.Message)
}

func TestErrorWithoutBodyFallsBackToStatusText(t *testing.T) {
	mt, sessions, c := harness(t)
	login(t, mt, sessions, c)

	mt.Stub("GET", "/food/all", http.StatusInternalServerError, nil)
	_, err := NewFoodService(c).All()

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestPlaceOrder(t *testing.T) {
	mt, sessions, c := harness(t)
	login(t, mt, sessions, c)

	mt.Stub("POST", "/orders/place", http.StatusOK, testkit.JSON(
		`{"id":12,"userId":7,"username":"asha","totalPrice":145.0,"status":"PENDING",
		  "orderItems":[{"id":1,"foodItemId":1,"foodItemName":"Masala Dosa",
		                 "foodItemPrice":60,"quantity":2,"subtotal":120},
		                {"id":2,"foodItemId":3,"foodItemName":"Samosa",
		                 "foodItemPrice":25,"quantity":1,"subtotal":25}]}`))

	order, err := NewOrderService(c).Place([]models.OrderItemRequest{
		{FoodItemID: 1, Quantity: 2},
		{FoodItemID: 3, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), order.ID)
	assert.Equal(t, models.OrderPending, order.Status)
	require.Len(t, order.OrderItems, 2)
	assert.InDelta(t, 145.0, order.TotalPrice, 0.001)
	testkit.AssertAllStubsCalled(t, mt)
}

func TestFoodCatalog(t *testing.T) {
	mt, sessions, c := harness(t)
	login(t, mt, sessions, c)

	mt.Stub("GET", "/food/available", http.StatusOK, testkit.JSON(
		`[{"id":1,"name":"Masala Dosa","price":60,"availableToday":true}]`))

	items, err := NewFoodService(c).Available()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Masala Dosa", items[0].Name)
}

func TestRegisterReturnsConfirmation(t *testing.T) {
	mt, sessions, c := harness(t)
	mt.Stub("POST", "/auth/register", http.StatusOK, testkit.JSON(
		`{"message":"User registered successfully!"}`))

	msg, err := sessions.Register(NewAuthService(c), models.RegisterRequest{
		Username: "asha", Email: "asha@example.com", Password: "secret1", Role: "student",
	})
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully!", msg)
}

func TestPaymentProcess(t *testing.T) {
	mt, sessions, c := harness(t)
	login(t, mt, sessions, c)

	mt.Stub("POST", "/payments/process", http.StatusOK, testkit.JSON(
		`{"id":4,"userId":7,"username":"asha","orderId":12,"amount":145.0,
		  "status":"COMPLETED","paymentMethod":"UPI"}`))

	p, err := NewPaymentService(c).Process(models.PaymentRequest{
		OrderID: 12, Amount: 145.0, PaymentMethod: "UPI",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, p.Status)
	assert.Equal(t, int64(12), p.OrderID)
}
