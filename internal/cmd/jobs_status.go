package cmd

import (
	"fmt"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

var jobsStatusCmd = &cobra.Command{
	Use:   "status <job-id> <status>",
	Short: "Update a job's status",
	Long: `Update a job's status. The server enforces which transitions are
allowed for your role on the job.

Example:
  fundictl jobs status 64f1c2... in_progress
  fundictl jobs status 64f1c2... completed`,
	Args: cobra.ExactArgs(2),
	RunE: runJobsStatus,
}

func init() {
	jobsCmd.AddCommand(jobsStatusCmd)
}

func runJobsStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jobID := args[0]
	status := marketplace.JobStatus(args[1])

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, _, err := requireSession(cfg)
	if err != nil {
		return err
	}

	job, err := client.UpdateJobStatus(ctx, jobID, status)
	if err != nil {
		observability.CLILogger.Error("Failed to update job status",
			zap.String("job_id", jobID),
			zap.String("status", string(status)),
			zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to update job status", err)
	}

	fmt.Printf("Job %s is now %s\n", job.ID, job.Status)
	return nil
}
