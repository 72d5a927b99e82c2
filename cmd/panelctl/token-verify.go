package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/token"
)

// tokenVerifyCmd represents the token verify command
var tokenVerifyCmd = &cobra.Command{
	Use:   "verify <token>",
	Short: "Verify a session token against a project's secret",
	Long: `Verify a session token against a generated project's JWT_SECRET.

Prints the token's claims when the signature and expiry check out, and
exits non-zero otherwise.

Example:
  panelctl token verify eyJhbGciOi...
  panelctl token verify --dir blog eyJhbGciOi...`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		claims, err := verifyToken(dir, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Token is not valid: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Subject: %s\n", claims.Subject)
		if claims.Role != "" {
			fmt.Printf("Role:    %s\n", claims.Role)
		}
		if claims.ExpiresAt != nil {
			fmt.Printf("Expires: %s\n", claims.ExpiresAt.Format(time.RFC3339))
		}
	},
}

func init() {
	tokenCmd.AddCommand(tokenVerifyCmd)
	tokenVerifyCmd.Flags().StringP("dir", "d", ".", "Project directory")
}

func verifyToken(dir, tokenString string) (*token.Claims, error) {
	secret, err := lookupProjectEnv(dir, "JWT_SECRET")
	if err != nil {
		return nil, err
	}

	return token.Verify(secret, tokenString)
}
