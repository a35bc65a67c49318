package cmd

import (
	"fmt"
	"time"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"

	"github.com/fundiconnect/fundictl/internal/token"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the saved session identity",
	Long: `Show the identity of the saved session without calling the API.

Token claims are decoded locally; use "fundictl profile" to fetch the
full profile from the server.`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	sess, err := token.NewStore(cfg.Auth.TokenPath).Load()
	if err != nil {
		return exitError(foundry.ExitFileNotFound, "No session", err)
	}

	fmt.Printf("User ID: %s\n", sess.UserID)
	if sess.Email != "" {
		fmt.Printf("Email:   %s\n", sess.Email)
	}

	claims, err := token.Inspect(sess.Token)
	if err != nil {
		fmt.Println("Token:   unreadable")
		return nil
	}
	if !claims.ExpiresAt.IsZero() {
		if claims.Expired(time.Now()) {
			fmt.Printf("Token:   expired %s\n", claims.ExpiresAt.Format(time.RFC3339))
		} else {
			fmt.Printf("Token:   valid until %s\n", claims.ExpiresAt.Format(time.RFC3339))
		}
	}
	return nil
}
