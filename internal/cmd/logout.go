package cmd

import (
	"fmt"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"

	"github.com/fundiconnect/fundictl/internal/token"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the saved session token",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	if err := token.NewStore(cfg.Auth.TokenPath).Clear(); err != nil {
		return exitError(foundry.ExitFileWriteError, "Failed to clear session", err)
	}

	fmt.Println("Logged out")
	return nil
}
