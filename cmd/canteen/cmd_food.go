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

// parseID converts a positional argument to an id.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not a valid id", arg)
	}
	return id, nil
}

// canteen menu
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show today's available items",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.Menu()
		return nil
	},
}

// canteen menu:all
var menuAllCmd = &cobra.Command{
	Use:   "menu:all",
	Short: "Show every item including unavailable ones (manager)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.FullCatalog()
		return nil
	},
}

var foodInput models.FoodItemInput

func validateFoodInput() error {
	errs := validate.Struct(foodInput)
	if len(errs) == 0 {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, errs[field])
	}
	return fmt.Errorf("food item input is invalid")
}

// canteen food:add
var foodAddCmd = &cobra.Command{
	Use:   "food:add",
	Short: "Add a food item (manager)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		if err := validateFoodInput(); err != nil {
			return err
		}
		app.views.CreateFoodItem(foodInput)
		return nil
	},
}

// canteen food:update <id>
var foodUpdateCmd = &cobra.Command{
	Use:   "food:update <id>",
	Short: "Update a food item (manager)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := validateFoodInput(); err != nil {
			return err
		}
		app.views.UpdateFoodItem(id, foodInput)
		return nil
	},
}

// canteen food:delete <id>
var foodDeleteCmd = &cobra.Command{
	Use:   "food:delete <id>",
	Short: "Delete a food item (manager)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.DeleteFoodItem(id)
		return nil
	},
}

var toggleAvailable bool

// canteen food:toggle <id>
var foodToggleCmd = &cobra.Command{
	Use:   "food:toggle <id>",
	Short: "Set whether an item is orderable today (manager)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.ToggleFoodItem(id, toggleAvailable)
		return nil
	},
}

// canteen food:donate <id>
var foodDonateCmd = &cobra.Command{
	Use:   "food:donate <id>",
	Short: "Donate an item to the NGO pool (manager)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.DonateItem(id)
		return nil
	},
}

// canteen donations
var donationsCmd = &cobra.Command{
	Use:   "donations",
	Short: "List donated items and their pickup state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.Donations()
		return nil
	},
}

// canteen donations:receive <id>
var donationsReceiveCmd = &cobra.Command{
	Use:   "donations:receive <id>",
	Short: "Record NGO reception of a donated item (NGO)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.ReceiveDonation(id)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{foodAddCmd, foodUpdateCmd} {
		c.Flags().StringVar(&foodInput.Name, "name", "", "item name")
		c.Flags().StringVar(&foodInput.Description, "description", "", "item description")
		c.Flags().Float64Var(&foodInput.Price, "price", 0, "item price")
		c.Flags().BoolVar(&foodInput.AvailableToday, "available", true, "orderable today")
	}
	foodToggleCmd.Flags().BoolVar(&toggleAvailable, "available", true, "orderable today")
}
