package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/internal/token"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and save a session token",
	Long: `Authenticate against the FundiConnect API and save the session token
locally for subsequent commands.

The password is read from --password, the FUNDI_PASSWORD environment
variable, or interactively from stdin.

Example:
  fundictl login --email jane@example.com`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted if omitted)")

	_ = loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	password := loginPassword
	if password == "" {
		password = os.Getenv("FUNDI_PASSWORD")
	}
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return exitError(foundry.ExitInvalidArgument, "Failed to read password", err)
		}
		password = strings.TrimSpace(line)
	}
	if password == "" {
		return exitError(foundry.ExitInvalidArgument, "Empty password", fmt.Errorf("a password is required"))
	}

	client, _, err := newClient(cfg)
	if err != nil {
		return err
	}

	sess, err := client.Login(ctx, loginEmail, password)
	if err != nil {
		observability.CLILogger.Error("Login failed",
			zap.String("email", loginEmail),
			zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Login failed", err)
	}

	saved := token.Session{
		Token:  sess.Token,
		UserID: sess.User.ID,
		Email:  sess.User.Email,
	}
	if err := token.NewStore(cfg.Auth.TokenPath).Save(saved); err != nil {
		return exitError(foundry.ExitFileWriteError, "Failed to save session", err)
	}

	observability.CLILogger.Info("Logged in",
		zap.String("email", sess.User.Email),
		zap.String("user_id", sess.User.ID))
	fmt.Printf("Logged in as %s (%s)\n", sess.User.Name, sess.User.Email)
	return nil
}
