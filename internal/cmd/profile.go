package cmd

import (
	"fmt"
	"strings"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
)

var profileReviews bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your account profile",
	Long: `Fetch and show your account profile from the API, including the
fundi skill profile when present.

Example:
  fundictl profile
  fundictl profile --reviews`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().BoolVar(&profileReviews, "reviews", false, "Also fetch your reviews (fundi accounts)")
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, sess, err := requireSession(cfg)
	if err != nil {
		return err
	}

	user, err := client.GetProfile(ctx)
	if err != nil {
		observability.CLILogger.Error("Failed to load profile", zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to load profile", err)
	}

	fmt.Printf("Name:    %s\n", user.Name)
	fmt.Printf("Email:   %s\n", user.Email)
	if user.Phone != "" {
		fmt.Printf("Phone:   %s\n", user.Phone)
	}

	var roles []string
	if user.IsCustomer {
		roles = append(roles, "customer")
	}
	if user.IsFundi {
		roles = append(roles, "fundi")
	}
	fmt.Printf("Roles:   %s\n", strings.Join(roles, ", "))

	if fp := user.FundiProfile; fp != nil {
		fmt.Println("\nFundi profile:")
		if len(fp.Services) > 0 {
			ids := make([]string, 0, len(fp.Services))
			for _, s := range fp.Services {
				ids = append(ids, s.ID())
			}
			fmt.Printf("  Services: %s\n", strings.Join(ids, ", "))
		}
		if fp.Bio != "" {
			fmt.Printf("  Bio:      %s\n", fp.Bio)
		}
		if fp.Rating > 0 {
			fmt.Printf("  Rating:   %.1f (%d jobs)\n", fp.Rating, fp.CompletedJobs)
		}
	}

	if profileReviews && user.IsFundi {
		reviews, err := client.GetFundiReviews(ctx, sess.UserID)
		if err != nil {
			observability.CLILogger.Warn("Failed to load reviews", zap.Error(err))
			return nil
		}
		if len(reviews) == 0 {
			fmt.Println("\nNo reviews yet.")
			return nil
		}
		fmt.Printf("\nReviews (%d):\n", len(reviews))
		for _, r := range reviews {
			fmt.Printf("  %d/5  %s\n", r.Rating, r.Comment)
		}
	}
	return nil
}
