package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/internal/session"
	"github.com/smartbytes/canteen/internal/state"
)

type fakeAuth struct{ role string }

func (f *fakeAuth) Authenticate(username, password string) (models.LoginResponse, error) {
	return models.LoginResponse{Token: "t", ID: 1, Username: username, Role: f.role}, nil
}

func (f *fakeAuth) SignUp(models.RegisterRequest) (string, error) { return "", nil }

func loggedIn(t *testing.T, role string) *session.Store {
	t.Helper()
	s := session.NewStore(state.NewMemory())
	_, err := s.Login(&fakeAuth{role: role}, "asha", "secret")
	require.NoError(t, err)
	return s
}

func TestCheckBeforeBootstrapShowsLoading(t *testing.T) {
	g := New(session.NewStore(state.NewMemory()))
	assert.Equal(t, Authenticating, g.State())
	assert.Equal(t, Loading, g.Check())
	assert.Equal(t, Loading, g.Check(session.RoleAdmin))
}

func TestBootstrapWithoutSessionRedirectsToLogin(t *testing.T) {
	g := New(session.NewStore(state.NewMemory()))
	g.Bootstrap()

	assert.Equal(t, Unauthenticated, g.State())
	assert.Equal(t, RedirectLogin, g.Check())
}

func TestBootstrapRestoresPersistedSession(t *testing.T) {
	g := New(loggedIn(t, "STUDENT"))
	g.Bootstrap()

	assert.Equal(t, Authorized, g.State())
	assert.Equal(t, session.RoleStudent, g.Role())
	assert.Equal(t, Render, g.Check())
}

func TestCheckRoleMembership(t *testing.T) {
	g := New(loggedIn(t, "STUDENT"))
	g.Bootstrap()

	// Any authenticated user passes an empty allowed set.
	assert.Equal(t, Render, g.Check())
	assert.Equal(t, Render, g.Check(session.RoleStudent, session.RoleAdmin))

	// Wrong role lands on the home screen, not an error.
	assert.Equal(t, RedirectHome, g.Check(session.RoleAdmin))
	assert.Equal(t, RedirectHome, g.Check(session.RoleCanteenManager, session.RoleNGO))
}

func TestLoginLogoutTransitions(t *testing.T) {
	g := New(session.NewStore(state.NewMemory()))
	g.Bootstrap()

	g.OnLogin(session.RoleCanteenManager)
	assert.Equal(t, Authorized, g.State())
	assert.Equal(t, Render, g.Check(session.RoleCanteenManager))

	g.OnLogout()
	assert.Equal(t, Unauthenticated, g.State())
	assert.Empty(t, g.Role())
	assert.Equal(t, RedirectLogin, g.Check(session.RoleCanteenManager))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
	assert.Equal(t, "authenticating", Authenticating.String())
	assert.Equal(t, "authorized", Authorized.String())
}
