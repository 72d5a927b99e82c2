package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

// dbMigrateCmd represents the db migrate command
var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply a project's SQL migrations",
	Long: `Apply the pending SQL migrations of a generated project.

Postgres projects are scaffolded with a db/migrations directory; this
command brings the database up to date with those files. The connection
string comes from DATABASE_URL or the project's .env.

Example:
  panelctl db migrate --dir blog`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		if err := runMigrations(dir); err != nil {
			fmt.Println("Migration failed:", err)
			os.Exit(1)
		}
	},
}

// dbDownCmd represents the db down command
var dbDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Rollback a project's SQL migrations",
	Long: `Rollback a project's SQL migrations.

This command rolls back the specified number of migrations (default: 1).

Example:
  panelctl db down      # Rollback 1 migration
  panelctl db down 3    # Rollback 3 migrations`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		steps := 1
		if len(args) > 0 {
			_, _ = fmt.Sscanf(args[0], "%d", &steps)
		}

		if err := runMigrationsDown(dir, steps); err != nil {
			fmt.Println("Rollback failed:", err)
			os.Exit(1)
		}
	},
}

// dbStatusCmd represents the db status command
var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a project's current migration version",
	Long:  `Show the current migration version of a generated project's database.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		if err := showMigrationStatus(dir); err != nil {
			fmt.Println("Failed to get status:", err)
			os.Exit(1)
		}
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbDownCmd)
	dbCmd.AddCommand(dbStatusCmd)

	dbMigrateCmd.Flags().StringP("dir", "d", ".", "Project directory")
	dbDownCmd.Flags().StringP("dir", "d", ".", "Project directory")
	dbStatusCmd.Flags().StringP("dir", "d", ".", "Project directory")
}

// migrateDatabaseURL returns the project's connection string prepared
// for golang-migrate: a dedicated migrations table keeps its bookkeeping
// away from Prisma's, and Prisma-only URL parameters are rewritten.
func migrateDatabaseURL(dir string) (string, error) {
	raw, err := lookupProjectEnv(dir, "DATABASE_URL")
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(raw, "file:") {
		return "", fmt.Errorf("migrations require a postgres DATABASE_URL; this project uses sqlite")
	}

	normalized, err := normalizeDatabaseURL(raw)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	q := u.Query()
	q.Set("x-migrations-table", "panelctl_schema_migrations")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func createMigrateInstance(dir string) (*migrate.Migrate, error) {
	dbURL, err := migrateDatabaseURL(dir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "db", "migrations")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no migrations directory at %s: %w", path, err)
	}

	fmt.Printf("Running migrations from file://%s\n", path)
	return migrate.New("file://"+path, dbURL)
}

func runMigrations(dir string) error {
	m, err := createMigrateInstance(dir)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	version, dirty, _ := m.Version()
	fmt.Printf("Current version: %d (dirty: %v)\n", version, dirty)

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			fmt.Println("No migrations to run - database is up to date")
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, _ := m.Version()
	fmt.Printf("Migrated to version: %d\n", newVersion)
	fmt.Println("Migrations complete")
	return nil
}

func runMigrationsDown(dir string, steps int) error {
	m, err := createMigrateInstance(dir)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	fmt.Printf("Rolling back %d migration(s)...\n", steps)

	if err := m.Steps(-steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	version, _, _ := m.Version()
	fmt.Printf("Rolled back to version: %d\n", version)
	return nil
}

func showMigrationStatus(dir string) error {
	m, err := createMigrateInstance(dir)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	version, dirty, err := m.Version()
	if err != nil {
		if err == migrate.ErrNilVersion {
			fmt.Println("No migrations have been applied yet")
			return nil
		}
		return err
	}

	fmt.Printf("Current version: %d\n", version)
	if dirty {
		fmt.Println("Warning: Database is in a dirty state")
	}
	return nil
}
