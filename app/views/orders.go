package views

import (
	"fmt"

	"github.com/smartbytes/canteen/internal/session"
)

// MyOrders is the student's order history.
func (v *Views) MyOrders() {
	if !v.gate() {
		return
	}

	orders, err := v.orders.My()
	if err != nil {
		v.renderError(err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(v.out, "You have no orders yet.")
		return
	}

	w := v.table()
	fmt.Fprintln(w, "ID\tSTATUS\tTOTAL\tITEMS")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", o.ID, o.Status, money(o.TotalPrice), len(o.OrderItems))
	}
	w.Flush()
}

// MyOrder shows one of the student's own orders in full.
func (v *Views) MyOrder(id int64) {
	if !v.gate() {
		return
	}

	order, err := v.orders.MyByID(id)
	if err != nil {
		v.renderError(err)
		return
	}
	v.renderOrder(order)
}

// CancelMyOrder cancels one of the student's own orders.
func (v *Views) CancelMyOrder(id int64) {
	if !v.gate() {
		return
	}

	order, err := v.orders.CancelMy(id)
	if err != nil {
		v.renderError(err)
		return
	}

	v.notify.Add(fmt.Sprintf("Order #%d has been cancelled.", order.ID))
	fmt.Fprintf(v.out, "Order #%d cancelled.\n", order.ID)
}

// AllOrders is the manager's order board.
func (v *Views) AllOrders() {
	if !v.gate(session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	orders, err := v.orders.All()
	if err != nil {
		v.renderError(err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(v.out, "No orders.")
		return
	}

	w := v.table()
	fmt.Fprintln(w, "ID\tUSER\tSTATUS\tTOTAL\tITEMS")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", o.ID, o.Username, o.Status, money(o.TotalPrice), len(o.OrderItems))
	}
	w.Flush()
}

// OrderDetails shows any order in full (manager/admin).
func (v *Views) OrderDetails(id int64) {
	if !v.gate(session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	order, err := v.orders.Details(id)
	if err != nil {
		v.renderError(err)
		return
	}
	v.renderOrder(order)
}

// AdvanceOrder moves an order to newStatus (manager).
func (v *Views) AdvanceOrder(id int64, newStatus string) {
	if !v.gate(session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	order, err := v.orders.UpdateStatus(id, newStatus)
	if err != nil {
		v.renderError(err)
		return
	}

	v.notify.Add(fmt.Sprintf("Order #%d is now %s.", order.ID, order.Status))
	fmt.Fprintf(v.out, "Order #%d is now %s.\n", order.ID, order.Status)
}

// CancelOrder cancels any order (manager).
func (v *Views) CancelOrder(id int64) {
	if !v.gate(session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	order, err := v.orders.Cancel(id)
	if err != nil {
		v.renderError(err)
		return
	}
	fmt.Fprintf(v.out, "Order #%d cancelled.\n", order.ID)
}
