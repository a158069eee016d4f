package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartbytes/canteen/app/services"
	"github.com/smartbytes/canteen/app/views"
	"github.com/smartbytes/canteen/config"
	"github.com/smartbytes/canteen/internal/cart"
	"github.com/smartbytes/canteen/internal/guard"
	"github.com/smartbytes/canteen/internal/notify"
	"github.com/smartbytes/canteen/internal/session"
	"github.com/smartbytes/canteen/internal/state"
	"github.com/smartbytes/canteen/pkg/cache"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "canteen",
	Short: "SmartBytes canteen client",
	Long:  "Order food, track orders and manage the canteen from the terminal.",
}

func init() {
	// Auth
	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, whoamiCmd)

	// Catalog and donations
	rootCmd.AddCommand(menuCmd, menuAllCmd)
	rootCmd.AddCommand(foodAddCmd, foodUpdateCmd, foodDeleteCmd, foodToggleCmd, foodDonateCmd)
	rootCmd.AddCommand(donationsCmd, donationsReceiveCmd)

	// Cart
	rootCmd.AddCommand(cartCmd, cartAddCmd, cartRemoveCmd, cartSetCmd, cartClearCmd)

	// Orders and payments
	rootCmd.AddCommand(ordersPlaceCmd, ordersMyCmd, ordersShowCmd, ordersCancelCmd)
	rootCmd.AddCommand(ordersAllCmd, ordersDetailsCmd, ordersStatusCmd, ordersCancelAnyCmd)
	rootCmd.AddCommand(paymentsProcessCmd, paymentsMyCmd, paymentsShowCmd, paymentsAllCmd, paymentsStatusCmd)

	// Admin
	rootCmd.AddCommand(usersCmd, usersShowCmd, usersRoleCmd, usersDeleteCmd)

	// Notifications
	rootCmd.AddCommand(notifyCmd, notifyReadCmd, notifyReadAllCmd, notifyClearCmd, notifyWatchCmd)

	// Dev
	rootCmd.AddCommand(devServerCmd)
}

// application is the wired client: stores, guard, facade and screens.
type application struct {
	sessions *session.Store
	cart     *cart.Store
	notify   *notify.Store
	guard    *guard.Guard
	auth     *services.AuthService
	views    *views.Views
}

var app *application

// boot loads config, opens the state repository and wires the stores,
// guard, API facade and screens. Every command calls it first.
func boot() error {
	if app != nil {
		return nil
	}
	if err := config.Load(); err != nil {
		return err
	}
	_ = cache.Connect()

	repo, err := state.Open()
	if err != nil {
		return err
	}

	sessions := session.NewStore(repo)
	carts := cart.NewStore(repo)
	notes := notify.NewStore(repo)
	g := guard.New(sessions)

	client := services.NewClient(sessions)
	client.OnUnauthorized(func() {
		g.OnLogout()
		fmt.Fprintln(os.Stderr, "Your session has expired. Run `canteen login` again.")
	})

	auth := services.NewAuthService(client)
	food := services.NewFoodService(client)
	orders := services.NewOrderService(client)
	payments := services.NewPaymentService(client)
	users := services.NewUserService(client)

	g.Bootstrap()

	app = &application{
		sessions: sessions,
		cart:     carts,
		notify:   notes,
		guard:    g,
		auth:     auth,
		views: views.New(os.Stdout, g, sessions, carts, notes,
			food, orders, payments, users),
	}
	return nil
}
