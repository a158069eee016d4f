// Package guard gates view rendering on session presence and role
// membership. It is a three-state machine:
//
//	Unauthenticated: no session; protected views redirect to login.
//	Authenticating:  session bootstrap in progress; protected views show
//	                 a loading placeholder instead of redirecting.
//	Authorized:      a session with a canonical role is active.
package guard

import "github.com/smartbytes/canteen/internal/session"

// State is the guard's position in its lifecycle.
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authorized
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authorized:
		return "authorized"
	default:
		return "unauthenticated"
	}
}

// Outcome is the guard's decision for a view.
type Outcome int

const (
	// Render: the view may fetch and draw.
	Render Outcome = iota
	// Loading: bootstrap is still running; show a placeholder.
	Loading
	// RedirectLogin: no session; go to the login screen.
	RedirectLogin
	// RedirectHome: logged in but the role is not permitted; go to the
	// default landing view rather than an error.
	RedirectHome
)

// Guard decides whether a view may render for the current session.
type Guard struct {
	sessions *session.Store
	state    State
	role     string
}

// New returns a guard in the Authenticating state; call Bootstrap before
// the first Check.
func New(sessions *session.Store) *Guard {
	return &Guard{sessions: sessions, state: Authenticating}
}

// Bootstrap resolves the persisted session into Authorized or
// Unauthenticated.
func (g *Guard) Bootstrap() {
	if sess := g.sessions.Current(); sess != nil {
		g.state = Authorized
		g.role = sess.Role
		return
	}
	g.state = Unauthenticated
	g.role = ""
}

// OnLogin moves the guard to Authorized(role).
func (g *Guard) OnLogin(role string) {
	g.state = Authorized
	g.role = role
}

// OnLogout moves the guard to Unauthenticated. Also invoked when any call
// comes back with an authorization failure.
func (g *Guard) OnLogout() {
	g.state = Unauthenticated
	g.role = ""
}

// State returns the current guard state.
func (g *Guard) State() State { return g.state }

// Role returns the authorized role, or "" outside Authorized.
func (g *Guard) Role() string { return g.role }

// Check decides the outcome for a view permitting the given roles.
// An empty allowed set means any authenticated user may render.
func (g *Guard) Check(allowed ...string) Outcome {
	switch g.state {
	case Authenticating:
		return Loading
	case Unauthenticated:
		return RedirectLogin
	}

	if len(allowed) == 0 {
		return Render
	}
	for _, role := range allowed {
		if role == g.role {
			return Render
		}
	}
	return RedirectHome
}
