package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/pkg/viewmodel"
)

var proposalsCmd = &cobra.Command{
	Use:   "proposals <job-id>",
	Short: "List proposals on one of your jobs",
	Args:  cobra.ExactArgs(1),
	RunE:  runProposals,
}

var proposalsAcceptCmd = &cobra.Command{
	Use:   "accept <job-id> <fundi-id>",
	Short: "Accept a fundi's proposal",
	Long: `Accept a fundi's proposal on one of your jobs. The job moves to
assigned and the other proposals are rejected by the server.`,
	Args: cobra.ExactArgs(2),
	RunE: runProposalsAccept,
}

func init() {
	rootCmd.AddCommand(proposalsCmd)
	proposalsCmd.AddCommand(proposalsAcceptCmd)
}

func runProposals(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jobID := args[0]

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
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

	if role := viewmodel.ClassifyRole(job, sess.UserID); role != viewmodel.RoleCustomer {
		return exitError(foundry.ExitInvalidArgument, "Not your job",
			fmt.Errorf("job %s was not posted by you", jobID))
	}

	if len(job.Proposals) == 0 {
		fmt.Println("No proposals yet.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FUNDI\tPRICE\tDURATION\tSTATUS\tMESSAGE")
	for _, p := range job.Proposals {
		fmt.Fprintf(tw, "%s\tKES %.0f\t%s\t%s\t%s\n",
			p.FundiID.ID(), p.ProposedPrice, p.EstimatedDuration, p.Status, p.Message)
	}
	return tw.Flush()
}

func runProposalsAccept(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jobID, fundiID := args[0], args[1]

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, _, err := requireSession(cfg)
	if err != nil {
		return err
	}

	job, err := client.AcceptProposal(ctx, jobID, fundiID)
	if err != nil {
		observability.CLILogger.Error("Failed to accept proposal",
			zap.String("job_id", jobID),
			zap.String("fundi_id", fundiID),
			zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to accept proposal", err)
	}

	fmt.Printf("Accepted proposal from %s; job %s is now %s\n", fundiID, job.ID, job.Status)
	return nil
}
