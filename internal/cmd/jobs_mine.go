package cmd

import (
	"fmt"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

var (
	mineRole   string
	mineStatus string
)

var jobsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List jobs you are involved in",
	Long: `List jobs you posted as a customer or were assigned to as a fundi.

Example:
  fundictl jobs mine
  fundictl jobs mine --role fundi --status in_progress`,
	RunE: runJobsMine,
}

func init() {
	jobsCmd.AddCommand(jobsMineCmd)

	jobsMineCmd.Flags().StringVar(&mineRole, "role", "", "Restrict to one side (customer|fundi)")
	jobsMineCmd.Flags().StringVar(&mineStatus, "status", "", "Filter by raw job status")
}

func runJobsMine(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	switch mineRole {
	case "", "customer", "fundi":
	default:
		return exitError(foundry.ExitInvalidArgument, "Invalid --role value", fmt.Errorf("unsupported role: %s", mineRole))
	}

	client, sess, err := requireSession(cfg)
	if err != nil {
		return err
	}

	jobs, err := client.GetMyJobs(ctx, mineRole, marketplace.JobStatus(mineStatus))
	if err != nil {
		observability.CLILogger.Error("Failed to list my jobs",
			zap.String("role", mineRole),
			zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to list my jobs", err)
	}

	return renderJobs(ctx, cfg, jobs, sess.UserID, nil)
}
