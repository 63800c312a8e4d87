// Command schedctl is the operator CLI for the home-care scheduler.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "schedctl",
		Short:         "Home-care scheduler operator tool",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(routeCmd())
	root.AddCommand(slotCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
