package views

import "fmt"

// Profile is the whoami screen: the active session, its role and the
// credential's expiry.
func (v *Views) Profile() {
	if !v.gate() {
		return
	}

	sess := v.sessions.Current()
	fmt.Fprintf(v.out, "Logged in as %s <%s>\n", sess.Username, sess.Email)
	fmt.Fprintf(v.out, "Role:    %s\n", sess.Role)
	fmt.Fprintf(v.out, "User ID: %d\n", sess.UserID)

	if exp, ok := v.sessions.TokenExpiry(); ok {
		fmt.Fprintf(v.out, "Session expires %s\n", exp.Local().Format("02 Jan 2006 15:04"))
	}
	if n := v.cart.Count(); n > 0 {
		fmt.Fprintf(v.out, "Cart:    %d items\n", n)
	}
	if n := v.notify.UnreadCount(); n > 0 {
		fmt.Fprintf(v.out, "Unread notifications: %d\n", n)
	}
}
