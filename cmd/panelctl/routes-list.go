package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/routesdoc"
)

// routesListCmd represents the routes list command
var routesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the documented routes of a project",
	Long:  `List all route entries found in a project's docs/ROUTES.md.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := routesDocPath(cmd)

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		doc, err := routesdoc.Parse(content)
		if err != nil {
			return fmt.Errorf("parsing routes doc: %w", err)
		}

		for _, route := range doc.Routes {
			fmt.Printf("%-7s %s\n", route.Method, route.Path)
		}

		return nil
	},
}

func init() {
	routesCmd.AddCommand(routesListCmd)
	routesListCmd.Flags().StringP("dir", "d", ".", "Project directory")
	routesListCmd.Flags().StringP("file", "f", "", "Path to the routes doc (overrides --dir)")
}

// routesDocPath resolves the routes doc targeted by a routes subcommand.
func routesDocPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return path
	}
	dir, _ := cmd.Flags().GetString("dir")
	return filepath.Join(dir, "docs", "ROUTES.md")
}
