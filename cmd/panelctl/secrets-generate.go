package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/secrets"
)

// secretsGenerateCmd represents the secrets generate command
var secretsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single secret value",
	Long: `
Generate a single secret value

Use this command to generate one 64-character hex secret on STDOUT, the
same shape 'secrets provision' writes into .env files. Useful for
filling secrets by hand or in other tooling.

Example:

$ JWT_SECRET="$(panelctl secrets generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		value, err := secrets.RandomHex(secrets.Size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate secret: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s", value)
	},
}

func init() {
	secretsCmd.AddCommand(secretsGenerateCmd)
}
