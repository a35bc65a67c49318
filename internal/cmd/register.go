package cmd

import (
	"fmt"
	"os"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/internal/token"
	"github.com/fundiconnect/fundictl/pkg/apiclient"
)

var (
	registerName     string
	registerEmail    string
	registerPhone    string
	registerPassword string
	registerAsFundi  bool
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new FundiConnect account and save the session token.

Accounts are customers by default; pass --fundi to also register as a
service provider (the skill profile is completed on the platform).

Example:
  fundictl register --name "Jane Wanjiku" --email jane@example.com --phone +254700000000`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name (required)")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Email address (required)")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Password (or FUNDI_PASSWORD)")
	registerCmd.Flags().BoolVar(&registerAsFundi, "fundi", false, "Register as a fundi as well")

	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	password := registerPassword
	if password == "" {
		password = os.Getenv("FUNDI_PASSWORD")
	}
	if password == "" {
		return exitError(foundry.ExitInvalidArgument, "Empty password", fmt.Errorf("a password is required"))
	}

	client, _, err := newClient(cfg)
	if err != nil {
		return err
	}

	sess, err := client.Register(ctx, apiclient.RegisterRequest{
		Name:     registerName,
		Email:    registerEmail,
		Phone:    registerPhone,
		Password: password,

		IsCustomer: true,
		IsFundi:    registerAsFundi,
	})
	if err != nil {
		observability.CLILogger.Error("Registration failed",
			zap.String("email", registerEmail),
			zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Registration failed", err)
	}

	saved := token.Session{
		Token:  sess.Token,
		UserID: sess.User.ID,
		Email:  sess.User.Email,
	}
	if err := token.NewStore(cfg.Auth.TokenPath).Save(saved); err != nil {
		return exitError(foundry.ExitFileWriteError, "Failed to save session", err)
	}

	fmt.Printf("Registered %s (%s)\n", sess.User.Name, sess.User.Email)
	return nil
}
