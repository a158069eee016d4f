package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartbytes/canteen/config"
	"github.com/smartbytes/canteen/internal/devserver"
)

// canteen dev:server is an in-memory stand-in for the real backend, for
// local development and demos.
var devServerCmd = &cobra.Command{
	Use:   "dev:server",
	Short: "Run a local in-memory canteen backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		addr := ":" + config.AppPort()
		fmt.Printf("Canteen dev server on %s (admin/admin123 is seeded)\n", addr)
		return devserver.Start(addr)
	},
}
