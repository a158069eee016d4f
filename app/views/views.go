// Package views renders each screen of the client to the terminal. Every
// protected screen asks the route guard first and draws only on a Render
// outcome; errors from the facade are printed inline so a failed fetch
// never aborts the command with a stack trace.
package views

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/smartbytes/canteen/app/services"
	"github.com/smartbytes/canteen/internal/cart"
	"github.com/smartbytes/canteen/internal/guard"
	"github.com/smartbytes/canteen/internal/notify"
	"github.com/smartbytes/canteen/internal/session"
)

// Views holds every screen's dependencies: the guard, the three client
// stores and the API facade services.
type Views struct {
	out      io.Writer
	guard    *guard.Guard
	sessions *session.Store
	cart     *cart.Store
	notify   *notify.Store
	food     *services.FoodService
	orders   *services.OrderService
	payments *services.PaymentService
	users    *services.UserService
}

// New wires the screens to their stores and services.
func New(out io.Writer, g *guard.Guard, sessions *session.Store, c *cart.Store, n *notify.Store,
	food *services.FoodService, orders *services.OrderService,
	payments *services.PaymentService, users *services.UserService) *Views {
	return &Views{
		out:      out,
		guard:    g,
		sessions: sessions,
		cart:     c,
		notify:   n,
		food:     food,
		orders:   orders,
		payments: payments,
		users:    users,
	}
}

// gate asks the guard and renders the non-Render outcomes. Returns true
// when the screen may draw.
func (v *Views) gate(allowed ...string) bool {
	switch v.guard.Check(allowed...) {
	case guard.Loading:
		fmt.Fprintln(v.out, "Loading session...")
		return false
	case guard.RedirectLogin:
		fmt.Fprintln(v.out, "You are not logged in. Run `canteen login` first.")
		return false
	case guard.RedirectHome:
		fmt.Fprintln(v.out, "That screen is not available for your role.")
		return false
	}
	return true
}

// renderError prints a facade error the way the matching screen banner
// would: access denied for permission failures, the backend message
// verbatim otherwise.
func (v *Views) renderError(err error) {
	var perm *services.PermissionError
	var auth *session.AuthError
	var api *services.APIError

	switch {
	case errors.As(err, &perm):
		fmt.Fprintf(v.out, "Access denied: %s\n", perm.Message)
	case errors.As(err, &auth):
		fmt.Fprintf(v.out, "Login failed: %s\n", auth.Message)
	case errors.As(err, &api):
		fmt.Fprintf(v.out, "Error: %s\n", api.Message)
	default:
		fmt.Fprintf(v.out, "Error: %v\n", err)
	}
}

// table starts a column-aligned writer for list screens.
func (v *Views) table() *tabwriter.Writer {
	return tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
}

func money(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

func when(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("02 Jan 2006 15:04")
}
