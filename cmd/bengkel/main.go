package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bengkellab/bengkel/internal/interfaces/cli/migrate"
	"github.com/bengkellab/bengkel/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bengkel",
		Short: "Bengkel - laptop repair workshop management",
		Long:  `Bengkel manages a laptop repair workshop: customers, service tickets, spare part stock, sales and purchases.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
