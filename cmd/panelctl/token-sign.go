package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldworks/panelforge/pkg/token"
)

// tokenSignCmd represents the token sign command
var tokenSignCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a session token for a generated project",
	Long: `Sign a session token for a generated project.

The token is signed with the project's JWT_SECRET and carries the same
claims the app's login flow issues, so it is accepted by the app's auth
middleware. Useful for smoke tests and API debugging.

Example:
  panelctl token sign --sub admin@example.com
  panelctl token sign --dir blog --sub ops@corp.io --role admin --ttl 1h`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		sub, _ := cmd.Flags().GetString("sub")
		role, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		signed, err := signToken(dir, sub, role, ttl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to sign token: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(signed)
	},
}

func init() {
	tokenCmd.AddCommand(tokenSignCmd)
	tokenSignCmd.Flags().StringP("dir", "d", ".", "Project directory")
	tokenSignCmd.Flags().String("sub", "", "Subject (the user's email)")
	tokenSignCmd.Flags().String("role", "admin", "Role claim")
	tokenSignCmd.Flags().Duration("ttl", 8*time.Hour, "Token lifetime")
	_ = tokenSignCmd.MarkFlagRequired("sub")
}

func signToken(dir, sub, role string, ttl time.Duration) (string, error) {
	secret, err := lookupProjectEnv(dir, "JWT_SECRET")
	if err != nil {
		return "", err
	}

	return token.Sign(secret, sub, role, ttl)
}
