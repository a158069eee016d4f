package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

// canteen cart
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.Cart()
		return nil
	},
}

// canteen cart:add <id>
var cartAddCmd = &cobra.Command{
	Use:   "cart:add <id>",
	Short: "Add a menu item to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.AddToCart(id)
		return nil
	},
}

// canteen cart:remove <id>
var cartRemoveCmd = &cobra.Command{
	Use:   "cart:remove <id>",
	Short: "Remove an item from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.RemoveFromCart(id)
		return nil
	},
}

// canteen cart:set <id> <quantity>
var cartSetCmd = &cobra.Command{
	Use:   "cart:set <id> <quantity>",
	Short: "Set an item's quantity (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		app.views.SetCartQuantity(id, quantity)
		return nil
	},
}

// canteen cart:clear
var cartClearCmd = &cobra.Command{
	Use:   "cart:clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.ClearCart()
		return nil
	},
}
