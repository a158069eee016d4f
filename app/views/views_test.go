package views

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbytes/canteen/app/services"
	"github.com/smartbytes/canteen/internal/cart"
	"github.com/smartbytes/canteen/internal/guard"
	"github.com/smartbytes/canteen/internal/notify"
	"github.com/smartbytes/canteen/internal/session"
	"github.com/smartbytes/canteen/internal/state"
	"github.com/smartbytes/canteen/pkg/httpclient"
	"github.com/smartbytes/canteen/pkg/testkit"
)

type fixture struct {
	out   *bytes.Buffer
	mt    *testkit.MockTransport
	views *Views
	cart  *cart.Store
	note  *notify.Store
	guard *guard.Guard
}

// setup wires screens against a scripted transport, optionally logged in
// with the given role ("" stays logged out).
func setup(t *testing.T, role string) *fixture {
	t.Helper()

	mt := testkit.NewMockTransport()
	httpclient.DefaultClient.Transport = mt
	t.Cleanup(httpclient.ResetTransport)

	repo := state.NewMemory()
	sessions := session.NewStore(repo)
	carts := cart.NewStore(repo)
	notes := notify.NewStore(repo)
	g := guard.New(sessions)

	client := services.NewClient(sessions)
	client.OnUnauthorized(g.OnLogout)

	if role != "" {
		mt.Stub("POST", "/auth/login", http.StatusOK, testkit.JSON(
			`{"token":"tok","id":7,"username":"asha","email":"a@b.c","role":"`+role+`"}`))
		_, err := sessions.Login(services.NewAuthService(client), "asha", "secret")
		require.NoError(t, err)
	}
	g.Bootstrap()

	out := &bytes.Buffer{}
	return &fixture{
		out:  out,
		mt:   mt,
		cart: carts,
		note: notes,
		guard: g,
		views: New(out, g, sessions, carts, notes,
			services.NewFoodService(client),
			services.NewOrderService(client),
			services.NewPaymentService(client),
			services.NewUserService(client)),
	}
}

func TestMenuRendersCatalog(t *testing.T) {
	f := setup(t, "STUDENT")
	f.mt.Stub("GET", "/food/available", http.StatusOK, testkit.JSON(
		`[{"id":1,"name":"Masala Dosa","price":60,"availableToday":true,
		   "description":"Crisp dosa"}]`))

	f.views.Menu()

	assert.Contains(t, f.out.String(), "Masala Dosa")
	assert.Contains(t, f.out.String(), "₹60.00")
}

func TestProtectedScreenRedirectsToLogin(t *testing.T) {
	f := setup(t, "")

	f.views.Menu()

	assert.Contains(t, f.out.String(), "not logged in")
	assert.Zero(t, f.mt.Calls("GET", "/food/available"), "no fetch before login")
}

func TestWrongRoleRedirectsHome(t *testing.T) {
	f := setup(t, "STUDENT")

	f.views.Users()

	assert.Contains(t, f.out.String(), "not available for your role")
	assert.Zero(t, f.mt.Calls("GET", "/users/all"))
}

func TestPermissionErrorRenderedInline(t *testing.T) {
	f := setup(t, "ADMIN")
	f.mt.Stub("GET", "/users/all", http.StatusForbidden, testkit.JSON(
		`{"message":"insufficient role"}`))

	f.views.Users()

	assert.Contains(t, f.out.String(), "Access denied: insufficient role")
}

func TestCheckoutClearsCartAndNotifies(t *testing.T) {
	f := setup(t, "STUDENT")
	f.mt.Stub("GET", "/food/available", http.StatusOK, testkit.JSON(
		`[{"id":1,"name":"Masala Dosa","price":60,"availableToday":true}]`))
	f.mt.Stub("POST", "/orders/place", http.StatusOK, testkit.JSON(
		`{"id":12,"totalPrice":120.0,"status":"PENDING",
		  "orderItems":[{"foodItemId":1,"quantity":2}]}`))

	f.views.AddToCart(1)
	f.views.AddToCart(1)
	require.Equal(t, 2, f.cart.Count())

	f.views.Checkout()

	assert.Zero(t, f.cart.Count(), "cart is cleared after the backend accepts")
	require.Equal(t, 1, f.note.UnreadCount())
	assert.Contains(t, f.note.All()[0].Message, "Order #12 placed")
	assert.Contains(t, f.out.String(), "Order #12 placed")
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	f := setup(t, "STUDENT")
	f.mt.Stub("GET", "/food/available", http.StatusOK, testkit.JSON(
		`[{"id":1,"name":"Masala Dosa","price":60,"availableToday":true}]`))
	f.mt.Stub("POST", "/orders/place", http.StatusBadRequest, testkit.JSON(
		`{"message":"Food item 1 is not available"}`))

	f.views.AddToCart(1)
	f.views.Checkout()

	assert.Equal(t, 1, f.cart.Count(), "cart survives a rejected order")
	assert.Zero(t, f.note.UnreadCount())
	assert.Contains(t, f.out.String(), "Food item 1 is not available")
}

func TestExpiredSessionMidScreenFlipsGuard(t *testing.T) {
	f := setup(t, "STUDENT")
	f.mt.Stub("GET", "/orders/my", http.StatusUnauthorized, testkit.JSON(
		`{"message":"expired"}`))

	f.views.MyOrders()

	assert.Equal(t, guard.Unauthenticated, f.guard.State())
}

func TestEmptyCart(t *testing.T) {
	f := setup(t, "STUDENT")

	f.views.Cart()
	assert.Contains(t, f.out.String(), "cart is empty")

	f.out.Reset()
	f.views.Checkout()
	assert.Contains(t, f.out.String(), "nothing to order")
	assert.Zero(t, f.mt.Calls("POST", "/orders/place"))
}
