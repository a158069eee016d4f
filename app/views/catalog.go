package views

import (
	"fmt"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/internal/session"
)

// Menu is the student catalog: today's available items with add-to-cart
// hints. Any authenticated user may browse it.
func (v *Views) Menu() {
	if !v.gate() {
		return
	}

	items, err := v.food.Available()
	if err != nil {
		v.renderError(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(v.out, "Nothing on the menu today.")
		return
	}

	fmt.Fprintln(v.out, "Today's Menu")
	w := v.table()
	fmt.Fprintln(w, "ID\tITEM\tPRICE\tDESCRIPTION")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.ID, item.Name, money(item.Price), item.Description)
	}
	w.Flush()
	fmt.Fprintln(v.out, "\nAdd an item with `canteen cart:add <id>`.")
}

// FullCatalog is the manager's item list including unavailable and donated
// items.
func (v *Views) FullCatalog() {
	if !v.gate(session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	items, err := v.food.All()
	if err != nil {
		v.renderError(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(v.out, "No food items yet.")
		return
	}

	w := v.table()
	fmt.Fprintln(w, "ID\tITEM\tPRICE\tAVAILABLE\tDONATED\tDESCRIPTION")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Name, money(item.Price),
			yesNo(item.AvailableToday), when(item.DonatedAt), item.Description)
	}
	w.Flush()
}

// CreateFoodItem adds a catalog item (canteen manager).
func (v *Views) CreateFoodItem(input models.FoodItemInput) {
	if !v.gate(session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	item, err := v.food.Add(input)
	if err != nil {
		v.renderError(err)
		return
	}
	fmt.Fprintln(v.out, "Item created.")
	v.FoodItem(item)
}

// UpdateFoodItem overwrites a catalog item (canteen manager).
func (v *Views) UpdateFoodItem(id int64, input models.FoodItemInput) {
	if !v.gate(session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	item, err := v.food.Update(id, input)
	if err != nil {
		v.renderError(err)
		return
	}
	fmt.Fprintln(v.out, "Item updated.")
	v.FoodItem(item)
}

// DeleteFoodItem removes a catalog item (canteen manager).
func (v *Views) DeleteFoodItem(id int64) {
	if !v.gate(session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	if err := v.food.Delete(id); err != nil {
		v.renderError(err)
		return
	}
	fmt.Fprintf(v.out, "Item #%d deleted.\n", id)
}

// ToggleFoodItem sets whether an item is orderable today (canteen manager).
func (v *Views) ToggleFoodItem(id int64, available bool) {
	if !v.gate(session.RoleCanteenManager, session.RoleAdmin) {
		return
	}

	item, err := v.food.ToggleAvailability(id, available)
	if err != nil {
		v.renderError(err)
		return
	}
	fmt.Fprintf(v.out, "%s is now %s today.\n", item.Name, availability(item.AvailableToday))
}

func availability(b bool) string {
	if b {
		return "available"
	}
	return "unavailable"
}

// FoodItem renders a single item after a manager mutation.
func (v *Views) FoodItem(item models.FoodItem) {
	fmt.Fprintf(v.out, "#%d %s  %s  available today: %s\n",
		item.ID, item.Name, money(item.Price), yesNo(item.AvailableToday))
	if item.Description != "" {
		fmt.Fprintf(v.out, "  %s\n", item.Description)
	}
	if item.DonatedAt != nil {
		fmt.Fprintf(v.out, "  donated: %s, received by NGO: %s\n",
			when(item.DonatedAt), when(item.ReceivedByNgo))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
