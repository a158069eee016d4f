package views

import (
	"fmt"

	"github.com/smartbytes/canteen/internal/session"
)

// Users is the admin account list.
func (v *Views) Users() {
	if !v.gate(session.RoleAdmin) {
		return
	}

	users, err := v.users.All()
	if err != nil {
		v.renderError(err)
		return
	}
	if len(users) == 0 {
		fmt.Fprintln(v.out, "No users.")
		return
	}

	w := v.table()
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Role, when(u.CreatedAt))
	}
	w.Flush()
}

// User shows one account (admin).
func (v *Views) User(id int64) {
	if !v.gate(session.RoleAdmin) {
		return
	}

	u, err := v.users.ByID(id)
	if err != nil {
		v.renderError(err)
		return
	}
	fmt.Fprintf(v.out, "#%d %s <%s> role %s, created %s\n",
		u.ID, u.Username, u.Email, u.Role, when(u.CreatedAt))
}

// SetUserRole reassigns an account's role (admin).
func (v *Views) SetUserRole(id int64, newRole string) {
	if !v.gate(session.RoleAdmin) {
		return
	}

	u, err := v.users.UpdateRole(id, newRole)
	if err != nil {
		v.renderError(err)
		return
	}
	fmt.Fprintf(v.out, "User %s is now %s.\n", u.Username, u.Role)
}

// DeleteUser removes an account (admin).
func (v *Views) DeleteUser(id int64) {
	if !v.gate(session.RoleAdmin) {
		return
	}

	if err := v.users.Delete(id); err != nil {
		v.renderError(err)
		return
	}
	fmt.Fprintf(v.out, "User #%d deleted.\n", id)
}
