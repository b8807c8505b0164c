package main

import (
	"os"

	"github.com/spf13/cobra"

	"resolveit/internal/interfaces/cli/migrate"
	"resolveit/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "resolveit",
		Short: "resolveit - complaint management service",
		Long:  `resolveit is a complaint management service with user accounts, admin triage, and resolution feedback.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
