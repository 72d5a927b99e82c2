package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/envfile"
	"github.com/fieldworks/panelforge/pkg/secrets"
)

// secretsCheckCmd represents the secrets check command
var secretsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that a project's secrets are provisioned",
	Long: `Check that a project's .env holds well-formed secrets.

Verifies that JWT_SECRET and CSRF_SECRET exist and each holds a
64-character hex value. Exits non-zero when any entry is missing,
empty, or malformed. Values are never printed.

Example:
  panelctl secrets check --dir blog`,
	Run: func(cmd *cobra.Command, args []string) {
		path := envFilePath(cmd)

		issues, err := checkSecrets(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to check secrets: %v\n", err)
			os.Exit(1)
		}

		if len(issues) == 0 {
			fmt.Printf("✓ Secrets in %s are provisioned\n", path)
			return
		}

		fmt.Printf("Found %d issue(s):\n\n", len(issues))
		for _, issue := range issues {
			fmt.Printf("  %s\n", issue)
		}
		os.Exit(1)
	},
}

func init() {
	secretsCmd.AddCommand(secretsCheckCmd)
	secretsCheckCmd.Flags().StringP("dir", "d", ".", "Project directory")
	secretsCheckCmd.Flags().String("env-file", "", "Path to the env file (overrides --dir)")
}

func checkSecrets(path string) ([]string, error) {
	doc, err := envfile.Load(path)
	if err != nil {
		return nil, err
	}

	var issues []string
	for _, key := range secrets.DefaultKeys {
		value, ok := doc.Get(key)
		switch {
		case !ok:
			issues = append(issues, fmt.Sprintf("%s is missing", key))
		case value == "":
			issues = append(issues, fmt.Sprintf("%s is empty", key))
		case !secrets.Valid(value):
			issues = append(issues, fmt.Sprintf("%s is not a 64-character hex secret", key))
		}
	}

	return issues, nil
}
