package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// routesCmd represents the routes command
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Work with a project's route documentation",
	Long:  `List and verify the docs/ROUTES.md file of a generated project.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'routes' requires a subcommand (list, verify)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
