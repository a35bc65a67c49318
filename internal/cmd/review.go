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
	reviewRating  int
	reviewComment string
)

var reviewCmd = &cobra.Command{
	Use:   "review <job-id>",
	Short: "Review a completed job",
	Long: `Leave a rating and comment on a completed job you posted.

Example:
  fundictl review 64f1c2... --rating 5 --comment "Fast and tidy work"`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().IntVar(&reviewRating, "rating", 0, "Rating from 1 to 5 (required)")
	reviewCmd.Flags().StringVarP(&reviewComment, "comment", "c", "", "Review comment")

	_ = reviewCmd.MarkFlagRequired("rating")
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jobID := args[0]

	if reviewRating < 1 || reviewRating > 5 {
		return exitError(foundry.ExitInvalidArgument, "Invalid --rating value",
			fmt.Errorf("rating must be between 1 and 5, got %d", reviewRating))
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, _, err := requireSession(cfg)
	if err != nil {
		return err
	}

	job, err := client.GetJob(ctx, jobID)
	if err != nil {
		observability.CLILogger.Error("Failed to fetch job",
			zap.String("job_id", jobID),
			zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to fetch job", err)
	}
	if job.Status != marketplace.JobStatusCompleted {
		return exitError(foundry.ExitInvalidArgument, "Job not completed",
			fmt.Errorf("job %s is %s; only completed jobs can be reviewed", jobID, job.Status))
	}

	review, err := client.CreateReview(ctx, jobID, reviewRating, reviewComment)
	if err != nil {
		observability.CLILogger.Error("Failed to submit review",
			zap.String("job_id", jobID),
			zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to submit review", err)
	}

	fmt.Printf("Review %s saved: %d/5\n", review.ID, review.Rating)
	return nil
}
