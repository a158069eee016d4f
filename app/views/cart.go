package views

import (
	"fmt"

	"github.com/smartbytes/canteen/app/models"
)

// Cart shows the pending order with per-line subtotals and the running
// total.
func (v *Views) Cart() {
	if !v.gate() {
		return
	}

	lines := v.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(v.out, "Your cart is empty.")
		return
	}

	w := v.table()
	fmt.Fprintln(w, "ID\tITEM\tPRICE\tQTY\tSUBTOTAL")
	for _, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			l.ID, l.Name, money(l.Price), l.Quantity, money(l.Price*float64(l.Quantity)))
	}
	w.Flush()
	fmt.Fprintf(v.out, "\nTotal: %s (%d items)\n", money(v.cart.Total()), v.cart.Count())
	fmt.Fprintln(v.out, "Place the order with `canteen orders:place`.")
}

// Checkout places the cart as an order: the cart is cleared and a
// notification recorded only after the backend accepts it.
func (v *Views) Checkout() {
	if !v.gate() {
		return
	}

	items := v.cart.OrderItems()
	if len(items) == 0 {
		fmt.Fprintln(v.out, "Your cart is empty; nothing to order.")
		return
	}

	order, err := v.orders.Place(items)
	if err != nil {
		v.renderError(err)
		return
	}

	v.cart.Clear()
	v.notify.Add(fmt.Sprintf("Order #%d placed successfully! Total: %s", order.ID, money(order.TotalPrice)))

	fmt.Fprintf(v.out, "Order #%d placed. Total: %s\n", order.ID, money(order.TotalPrice))
	fmt.Fprintf(v.out, "Pay with `canteen payments:process %d %.2f <method>`.\n", order.ID, order.TotalPrice)
}

// AddToCart looks the item up in today's catalog and puts it in the cart.
func (v *Views) AddToCart(id int64) {
	if !v.gate() {
		return
	}

	items, err := v.food.Available()
	if err != nil {
		v.renderError(err)
		return
	}
	for _, item := range items {
		if item.ID == id {
			v.cart.Add(item)
			fmt.Fprintf(v.out, "Added %s. Cart: %d items, %s.\n",
				item.Name, v.cart.Count(), money(v.cart.Total()))
			return
		}
	}
	fmt.Fprintf(v.out, "Item %d is not on today's menu.\n", id)
}

// RemoveFromCart drops the line for id.
func (v *Views) RemoveFromCart(id int64) {
	if !v.gate() {
		return
	}
	v.cart.Remove(id)
	fmt.Fprintf(v.out, "Cart: %d items, %s.\n", v.cart.Count(), money(v.cart.Total()))
}

// SetCartQuantity overwrites a line's quantity; zero removes it.
func (v *Views) SetCartQuantity(id int64, quantity int) {
	if !v.gate() {
		return
	}
	v.cart.SetQuantity(id, quantity)
	fmt.Fprintf(v.out, "Cart: %d items, %s.\n", v.cart.Count(), money(v.cart.Total()))
}

// ClearCart empties the cart.
func (v *Views) ClearCart() {
	if !v.gate() {
		return
	}
	v.cart.Clear()
	fmt.Fprintln(v.out, "Cart cleared.")
}

// renderOrder draws one order with its lines.
func (v *Views) renderOrder(order models.Order) {
	fmt.Fprintf(v.out, "Order #%d  %s  %s", order.ID, order.Status, money(order.TotalPrice))
	if order.Username != "" {
		fmt.Fprintf(v.out, "  (%s)", order.Username)
	}
	fmt.Fprintln(v.out)

	w := v.table()
	for _, item := range order.OrderItems {
		fmt.Fprintf(w, "  %s\tx%d\t%s\t= %s\n",
			item.FoodItemName, item.Quantity, money(item.FoodItemPrice), money(item.Subtotal))
	}
	w.Flush()
}
