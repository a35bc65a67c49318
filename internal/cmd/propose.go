package cmd

import (
	"fmt"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/pkg/apiclient"
	"github.com/fundiconnect/fundictl/pkg/viewmodel"
)

var (
	proposePrice    float64
	proposeDuration string
	proposeMessage  string
)

var proposeCmd = &cobra.Command{
	Use:   "propose <job-id>",
	Short: "Submit a proposal for an open job",
	Long: `Submit a proposal (bid) for an open job as a fundi.

Eligibility is checked locally before submitting: you must offer the
job's service and must not have proposed already. The server applies
the same checks authoritatively.

Example:
  fundictl propose 64f1c2... --price 3500 --duration "2 days" --message "Can start Monday"`,
	Args: cobra.ExactArgs(1),
	RunE: runPropose,
}

func init() {
	rootCmd.AddCommand(proposeCmd)

	proposeCmd.Flags().Float64Var(&proposePrice, "price", 0, "Proposed price in KES (required)")
	proposeCmd.Flags().StringVar(&proposeDuration, "duration", "", "Estimated duration (e.g. \"2 days\")")
	proposeCmd.Flags().StringVarP(&proposeMessage, "message", "m", "", "Message to the customer")

	_ = proposeCmd.MarkFlagRequired("price")
}

func runPropose(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jobID := args[0]

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	if proposePrice <= 0 {
		return exitError(foundry.ExitInvalidArgument, "Invalid --price value", fmt.Errorf("price must be positive"))
	}

	client, sess, err := requireSession(cfg)
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

	profile, err := client.GetProfile(ctx)
	if err != nil {
		observability.CLILogger.Error("Failed to load profile", zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to load profile", err)
	}

	if viewmodel.HasAlreadyProposed(job, sess.UserID) {
		return exitError(foundry.ExitInvalidArgument, "Already proposed",
			fmt.Errorf("you already submitted a proposal for job %s", jobID))
	}
	if !viewmodel.CanPropose(job, profile) {
		return exitError(foundry.ExitInvalidArgument, "Not eligible",
			fmt.Errorf("your fundi profile does not offer this job's service"))
	}
	if !job.Status.OpenForProposals() {
		return exitError(foundry.ExitInvalidArgument, "Job closed",
			fmt.Errorf("job %s is %s and no longer accepts proposals", jobID, job.Status))
	}

	updated, err := client.SubmitProposal(ctx, jobID, apiclient.ProposalRequest{
		ProposedPrice:     proposePrice,
		EstimatedDuration: proposeDuration,
		Proposal:          proposeMessage,
	})
	if err != nil {
		observability.CLILogger.Error("Failed to submit proposal",
			zap.String("job_id", jobID),
			zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to submit proposal", err)
	}

	observability.CLILogger.Info("Proposal submitted",
		zap.String("job_id", jobID),
		zap.Float64("price", proposePrice),
		zap.Int("proposals", len(updated.Proposals)))
	fmt.Printf("Proposal submitted for %s (KES %.0f)\n", updated.Title(), proposePrice)
	return nil
}
