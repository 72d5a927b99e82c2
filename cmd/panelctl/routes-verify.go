package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/routesdoc"
)

// routesVerifyCmd represents the routes verify command
var routesVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a project's route documentation",
	Long: `Verify that a project's docs/ROUTES.md is well-formed.

Checks include:
- File has a title (# Routes)
- Route headings use the form: ## METHOD /path
- Methods are valid HTTP verbs
- Paths are absolute and well-formed
- No route is documented twice
- Every route has a description`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := routesDocPath(cmd)

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		result := routesdoc.Validate(content)

		if result.IsValid() {
			fmt.Println("✓ Routes doc is valid")
			return nil
		}

		fmt.Printf("Found %d issue(s):\n\n", len(result.Errors))
		for _, e := range result.Errors {
			if e.Line > 0 {
				fmt.Printf("  Line %d: %s\n", e.Line, e.Message)
			} else {
				fmt.Printf("  %s\n", e.Message)
			}
		}

		os.Exit(1)
		return nil
	},
}

func init() {
	routesCmd.AddCommand(routesVerifyCmd)
	routesVerifyCmd.Flags().StringP("dir", "d", ".", "Project directory")
	routesVerifyCmd.Flags().StringP("file", "f", "", "Path to the routes doc (overrides --dir)")
}
