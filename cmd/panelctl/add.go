package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add pieces to a generated project",
	Long:  `Add new pieces to a generated project.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'add' requires a subcommand (route)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
