package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// secretsCmd represents the secrets command
var secretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "Manage a project's secrets",
	Long:  `Manage the secret entries of a generated project's .env file.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'secrets' requires a subcommand (provision, generate, check)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(secretsCmd)
}
