package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/config"
	"github.com/fieldworks/panelforge/pkg/toolchain"
)

// dbInitCmd represents the db init command
var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the Prisma client and push the schema",
	Long: `Generate the Prisma client and push the schema into the database.

Runs 'prisma generate' followed by 'prisma db push' in the project
directory, the same steps 'panelctl new' performs after installing
dependencies. Use it after editing prisma/schema.prisma or when the
project was created with --skip-schema.

Example:
  panelctl db init
  panelctl db init --dir blog`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		if err := initDatabase(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Database initialized")
	},
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
	dbInitCmd.Flags().StringP("dir", "d", ".", "Project directory")
}

func initDatabase(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, "prisma", "schema.prisma")); err != nil {
		return fmt.Errorf("%s does not look like a generated project: %w", dir, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	schema := toolchain.SchemaTool{Runner: toolchain.ExecRunner{}, Tool: cfg.SchemaTool}
	if err := schema.Generate(dir); err != nil {
		return err
	}

	return schema.Push(dir)
}
