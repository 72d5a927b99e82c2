package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/scaffold"
)

// addRouteCmd represents the add route command
var addRouteCmd = &cobra.Command{
	Use:   "route <name>",
	Short: "Add a route and view to a generated project",
	Long: `Add a route module and matching EJS view to a generated project.

The new route renders its view and is documented in docs/ROUTES.md. It
still has to be mounted in src/app.js; the command prints the line to
add.

Example:
  panelctl add route reports
  panelctl add route reports --dir blog`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		name := args[0]

		touched, err := scaffold.AddRoute(dir, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to add route: %v\n", err)
			os.Exit(1)
		}

		for _, path := range touched {
			fmt.Println(path)
		}
		fmt.Fprintf(os.Stderr, "\nMount it in src/app.js:\n  app.use('/%s', require('./routes/%s'));\n", name, name)
	},
}

func init() {
	addCmd.AddCommand(addRouteCmd)
	addRouteCmd.Flags().StringP("dir", "d", ".", "Project directory")
}
