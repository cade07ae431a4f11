package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title        Gauzy API
// @version      1.0
// @description  Organizations, users, time off and page state for the Gauzy business management platform.
// @BasePath     /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gauzy",
		Short:        "Gauzy business management API",
		SilenceUsage: true,
	}
	serveCmd := newServeCmd()
	// Running the binary without a subcommand serves.
	root.RunE = serveCmd.RunE
	root.AddCommand(serveCmd, newMigrateCmd())
	return root
}
