package views

import (
	"fmt"

	"github.com/smartbytes/canteen/internal/session"
)

// DonateItem marks an item as donated (canteen manager).
func (v *Views) DonateItem(id int64) {
	if !v.gate(session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	item, err := v.food.Donate(id)
	if err != nil {
		v.renderError(err)
		return
	}

	v.notify.Add(fmt.Sprintf("%s has been donated to the NGO pool.", item.Name))
	fmt.Fprintf(v.out, "%s marked as donated at %s.\n", item.Name, when(item.DonatedAt))
}

// Donations is the NGO pickup list: donated items and whether they have
// been received.
func (v *Views) Donations() {
	if !v.gate(session.RoleNGO, session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	items, err := v.food.Donated()
	if err != nil {
		v.renderError(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(v.out, "No donated items.")
		return
	}

	w := v.table()
	fmt.Fprintln(w, "ID\tITEM\tDONATED\tRECEIVED")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			item.ID, item.Name, when(item.DonatedAt), when(item.ReceivedByNgo))
	}
	w.Flush()
}

// ReceiveDonation records that the NGO collected a donated item.
func (v *Views) ReceiveDonation(id int64) {
	if !v.gate(session.RoleNGO) {
		return
	}

	item, err := v.food.MarkReceived(id)
	if err != nil {
		v.renderError(err)
		return
	}

	v.notify.Add(fmt.Sprintf("Donation received: %s.", item.Name))
	fmt.Fprintf(v.out, "%s received at %s.\n", item.Name, when(item.ReceivedByNgo))
}
