package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/config"
	"github.com/fieldworks/panelforge/pkg/envfile"
	"github.com/fieldworks/panelforge/pkg/project"
	"github.com/fieldworks/panelforge/pkg/scaffold"
	"github.com/fieldworks/panelforge/pkg/secrets"
	"github.com/fieldworks/panelforge/pkg/toolchain"
	"github.com/fieldworks/panelforge/pkg/wizard"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new admin panel project",
	Long: `Create a new admin panel project.

Scaffolds an Express + EJS + Prisma admin panel, fills its secrets,
installs dependencies, and generates the database client. When no name
is given an interactive wizard collects the answers; a name plus flags,
or a recipe file, pins them down for unattended runs.

The JWT_SECRET and CSRF_SECRET entries of the generated .env are each
filled with an independent 64-character hex secret. Secret values are
never printed.

Example:
  panelctl new
  panelctl new blog
  panelctl new blog --database postgres --package-manager pnpm
  panelctl new --recipe answers.yml --non-interactive`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		if name == "" && len(args) > 0 {
			name = args[0]
		}

		if err := runNew(cmd, name); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create project: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringP("name", "n", "", "Project name (also accepted as the first argument)")
	newCmd.Flags().String("database", "", "Database to scaffold for (sqlite or postgres)")
	newCmd.Flags().String("package-manager", "", "Package manager for dependency installation (npm, pnpm or yarn)")
	newCmd.Flags().Int("port", 0, "Port the generated app listens on")
	newCmd.Flags().String("recipe", "", "YAML answers file for unattended runs")
	newCmd.Flags().Bool("force", false, "Scaffold into a non-empty directory")
	newCmd.Flags().Bool("skip-install", false, "Skip dependency installation")
	newCmd.Flags().Bool("skip-schema", false, "Skip Prisma client generation")
	newCmd.Flags().Bool("non-interactive", false, "Never start the wizard; fail instead of asking")
}

func runNew(cmd *cobra.Command, name string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	skipInstall, _ := cmd.Flags().GetBool("skip-install")
	installing := !skipInstall && !cfg.SkipInstall

	// The toolchain is only exercised when installing, so a files-only
	// run works without Node present.
	runner := toolchain.ExecRunner{}
	if installing {
		probes := toolchain.Doctor(runner)
		if missing := toolchain.MissingRequired(probes); len(missing) > 0 {
			return fmt.Errorf("missing required tools: %s (see 'panelctl doctor')", strings.Join(missing, ", "))
		}
	}

	recipe, err := resolveRecipe(cmd, cfg, name)
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	dir := recipe.Name
	envPath := filepath.Join(dir, ".env")

	if force {
		// A forced scaffold rewrites .env, so live secrets are lost and
		// existing sessions stop verifying.
		if issues, err := checkSecrets(envPath); err == nil && len(issues) == 0 {
			fmt.Fprintf(os.Stderr, "Warning: replacing provisioned secrets in %s\n", envPath)
		}
	}

	written, err := scaffold.Scaffolder{Force: force}.Write(dir, recipe)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Created %s (%d files)\n", dir, len(written))

	doc, err := envfile.Load(envPath)
	if err != nil {
		return err
	}
	filled, err := secrets.Provisioner{}.Provision(doc)
	if err != nil {
		return err
	}
	if err := doc.Save(envPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Provisioned %s\n", strings.Join(filled, ", "))

	installed := false
	if installing {
		installer := toolchain.Installer{Runner: runner}
		if err := installer.Install(dir, recipe.PackageManager); err != nil {
			return err
		}
		installed = true
	}

	// The Prisma CLI arrives with the dev dependencies, so the schema
	// steps only run after an install.
	skipSchema, _ := cmd.Flags().GetBool("skip-schema")
	if installed && !skipSchema {
		schema := toolchain.SchemaTool{Runner: runner, Tool: cfg.SchemaTool}
		if err := schema.Generate(dir); err != nil {
			return err
		}
		if recipe.Database == project.DatabaseSqlite {
			if err := schema.Push(dir); err != nil {
				return err
			}
		}
	}

	fmt.Print(wizard.RenderMarkdown(wizard.NextSteps(recipe, installed)))
	return nil
}

// resolveRecipe turns flags, configuration defaults, and (when needed)
// wizard answers into a validated recipe.
func resolveRecipe(cmd *cobra.Command, cfg *config.PanelConfig, name string) (project.Recipe, error) {
	recipePath, _ := cmd.Flags().GetString("recipe")
	if recipePath != "" {
		return project.LoadRecipe(recipePath)
	}

	database, err := cfg.Database()
	if err != nil {
		return project.Recipe{}, err
	}
	packageManager, err := cfg.PackageManager()
	if err != nil {
		return project.Recipe{}, err
	}

	recipe := project.Recipe{
		Name:           name,
		Database:       database,
		PackageManager: packageManager,
		Port:           cfg.DefaultPort,
	}

	if flag := cmd.Flags().Lookup("database"); flag.Changed {
		recipe.Database, err = project.DatabaseString(flag.Value.String())
		if err != nil {
			return project.Recipe{}, err
		}
	}
	if flag := cmd.Flags().Lookup("package-manager"); flag.Changed {
		recipe.PackageManager, err = project.PackageManagerString(flag.Value.String())
		if err != nil {
			return project.Recipe{}, err
		}
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		recipe.Port = port
	}

	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	if nonInteractive || name != "" {
		if err := recipe.Validate(); err != nil {
			return project.Recipe{}, err
		}
		return recipe, nil
	}

	return wizard.Run(cmd.Context(), recipe)
}
