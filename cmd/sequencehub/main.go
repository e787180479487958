package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sequencehub/sequencehub/internal/interfaces/cli/migrate"
	"github.com/sequencehub/sequencehub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sequencehub",
		Short: "SequenceHUB - a marketplace for light show sequences",
		Long:  `SequenceHUB is a marketplace backend for buying and selling xLights sequence files, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
