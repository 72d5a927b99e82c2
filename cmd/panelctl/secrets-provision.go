package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/envfile"
	"github.com/fieldworks/panelforge/pkg/secrets"
)

// secretsProvisionCmd represents the secrets provision command
var secretsProvisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Fill JWT_SECRET and CSRF_SECRET in a project's .env",
	Long: `Fill JWT_SECRET and CSRF_SECRET in a project's .env file.

Each secret is an independent 64-character hex value drawn from the
operating system's entropy source. Every other line of the file is
preserved byte-for-byte and the file is replaced atomically, so a
failure leaves the original untouched.

Existing values are overwritten so compromised secrets can be rotated;
use --keep-existing to leave well-formed values in place. Secret values
are never printed.

Example:
  panelctl secrets provision
  panelctl secrets provision --dir blog
  panelctl secrets provision --env-file /srv/blog/.env --keep-existing`,
	Run: func(cmd *cobra.Command, args []string) {
		path := envFilePath(cmd)
		keepExisting, _ := cmd.Flags().GetBool("keep-existing")

		filled, err := provisionSecrets(path, keepExisting)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to provision secrets: %v\n", err)
			os.Exit(1)
		}

		if len(filled) == 0 {
			fmt.Printf("Nothing to do: secrets in %s are already set\n", path)
			return
		}
		fmt.Printf("Provisioned %s in %s\n", strings.Join(filled, ", "), path)
	},
}

func init() {
	secretsCmd.AddCommand(secretsProvisionCmd)
	secretsProvisionCmd.Flags().StringP("dir", "d", ".", "Project directory")
	secretsProvisionCmd.Flags().String("env-file", "", "Path to the env file (overrides --dir)")
	secretsProvisionCmd.Flags().Bool("keep-existing", false, "Keep entries that already hold a well-formed secret")
}

// envFilePath resolves the env file targeted by a secrets subcommand.
func envFilePath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("env-file"); path != "" {
		return path
	}
	dir, _ := cmd.Flags().GetString("dir")
	return filepath.Join(dir, ".env")
}

func provisionSecrets(path string, keepExisting bool) ([]string, error) {
	doc, err := envfile.Load(path)
	if err != nil {
		return nil, err
	}

	provisioner := secrets.Provisioner{KeepExisting: keepExisting}
	filled, err := provisioner.Provision(doc)
	if err != nil {
		return nil, err
	}

	if err := doc.Save(path); err != nil {
		return nil, err
	}

	return filled, nil
}
