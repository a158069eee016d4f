package main

import "github.com/spf13/cobra"

// canteen orders:place
var ordersPlaceCmd = &cobra.Command{
	Use:   "orders:place",
	Short: "Place the cart as a new order",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.Checkout()
		return nil
	},
}

// canteen orders:my
var ordersMyCmd = &cobra.Command{
	Use:   "orders:my",
	Short: "List your orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.MyOrders()
		return nil
	},
}

// canteen orders:show <id>
var ordersShowCmd = &cobra.Command{
	Use:   "orders:show <id>",
	Short: "Show one of your orders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.MyOrder(id)
		return nil
	},
}

// canteen orders:cancel <id>
var ordersCancelCmd = &cobra.Command{
	Use:   "orders:cancel <id>",
	Short: "Cancel one of your pending orders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.CancelMyOrder(id)
		return nil
	},
}

// canteen orders:all
var ordersAllCmd = &cobra.Command{
	Use:   "orders:all",
	Short: "List every order (manager)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.AllOrders()
		return nil
	},
}

// canteen orders:details <id>
var ordersDetailsCmd = &cobra.Command{
	Use:   "orders:details <id>",
	Short: "Show any order in full (manager)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.OrderDetails(id)
		return nil
	},
}

// canteen orders:status <id> <status>
var ordersStatusCmd = &cobra.Command{
	Use:   "orders:status <id> <status>",
	Short: "Move an order to PENDING, PREPARING, READY_FOR_PICKUP or PICKED_UP (manager)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.AdvanceOrder(id, args[1])
		return nil
	},
}

// canteen orders:cancel-any <id>
var ordersCancelAnyCmd = &cobra.Command{
	Use:   "orders:cancel-any <id>",
	Short: "Cancel any order (manager)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.CancelOrder(id)
		return nil
	},
}
