package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/pkg/validate"
)

// canteen payments:process <orderId> <amount> <method>
var paymentsProcessCmd = &cobra.Command{
	Use:   "payments:process <orderId> <amount> <method>",
	Short: "Pay for an order (e.g. UPI, CARD, CASH)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		orderID, err := parseID(args[0])
		if err != nil {
			return err
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("%q is not a valid amount", args[1])
		}

		req := models.PaymentRequest{
			OrderID:       orderID,
			Amount:        amount,
			PaymentMethod: args[2],
		}
		if errs := validate.Struct(req); len(errs) > 0 {
			fields := make([]string, 0, len(errs))
			for field := range errs {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, errs[field])
			}
			return fmt.Errorf("payment input is invalid")
		}

		app.views.Pay(req)
		return nil
	},
}

// canteen payments:my
var paymentsMyCmd = &cobra.Command{
	Use:   "payments:my",
	Short: "List your payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.MyPayments()
		return nil
	},
}

// canteen payments:show <id>
var paymentsShowCmd = &cobra.Command{
	Use:   "payments:show <id>",
	Short: "Show one of your payments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.MyPayment(id)
		return nil
	},
}

// canteen payments:all
var paymentsAllCmd = &cobra.Command{
	Use:   "payments:all",
	Short: "List every payment (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.AllPayments()
		return nil
	},
}

// canteen payments:status <id> <status>
var paymentsStatusCmd = &cobra.Command{
	Use:   "payments:status <id> <status>",
	Short: "Change a payment's status (admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.SetPaymentStatus(id, args[1])
		return nil
	},
}
