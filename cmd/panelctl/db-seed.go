package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/db"
	"github.com/fieldworks/panelforge/pkg/secrets"
)

// dbSeedCmd represents the db seed command
var dbSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin user in a project's database",
	Long: `Create the admin user in a generated project's database.

Reads DATABASE_URL from the environment or the project's .env and
inserts an admin user with a bcrypt-hashed password, matching the login
check in the generated app. Postgres projects only; sqlite projects
manage users through the app itself.

If --password is omitted a random one is generated and printed once.

Example:
  panelctl db seed
  panelctl db seed --dir blog --email admin@corp.io
  panelctl db seed --email admin@corp.io --password hunter2`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if err := seedAdmin(dir, email, password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed admin user: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	dbCmd.AddCommand(dbSeedCmd)
	dbSeedCmd.Flags().StringP("dir", "d", ".", "Project directory")
	dbSeedCmd.Flags().StringP("email", "e", "admin@example.com", "Email address for the admin user")
	dbSeedCmd.Flags().StringP("password", "p", "", "Password for the admin user (generated when omitted)")
}

func seedAdmin(dir, email, password string) error {
	generated := false
	if password == "" {
		random, err := secrets.RandomHex(8)
		if err != nil {
			return err
		}
		password = random
		generated = true
	}

	raw, err := lookupProjectEnv(dir, "DATABASE_URL")
	if err != nil {
		return err
	}
	if strings.HasPrefix(raw, "file:") {
		return fmt.Errorf("db seed requires a postgres DATABASE_URL; this project uses sqlite")
	}

	dbURL, err := normalizeDatabaseURL(raw)
	if err != nil {
		return err
	}

	database, err := db.Connect(db.Config{URL: dbURL})
	if err != nil {
		return err
	}

	user, err := db.SeedAdmin(database, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created admin user '%s' (id: %s)\n", user.Email, user.ID)
	if generated {
		fmt.Printf("Password for %s: %s\n", user.Email, password)
	}
	return nil
}
