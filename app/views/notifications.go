package views

import "fmt"

// Notifications renders the event feed newest-first, with unread entries
// flagged.
func (v *Views) Notifications() {
	if !v.gate() {
		return
	}

	entries := v.notify.All()
	if len(entries) == 0 {
		fmt.Fprintln(v.out, "No notifications.")
		return
	}

	for _, n := range entries {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(v.out, "%s [%d] %s  %s\n",
			marker, n.ID, n.Timestamp.Local().Format("02 Jan 15:04"), n.Message)
	}
	fmt.Fprintf(v.out, "\n%d unread. `canteen notify:read <id>` or `canteen notify:read-all`.\n",
		v.notify.UnreadCount())
}
