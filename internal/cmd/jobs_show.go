package cmd

import (
	"fmt"
	"time"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/config"
	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/pkg/marketplace"
	"github.com/fundiconnect/fundictl/pkg/output"
	"github.com/fundiconnect/fundictl/pkg/viewmodel"
)

var jobsShowCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show one job in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsShow,
}

func init() {
	jobsCmd.AddCommand(jobsShowCmd)
}

func runJobsShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jobID := args[0]

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, sess, err := newClient(cfg)
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

	viewer := viewerID(sess)

	if cfg.Output.Format == config.FormatJSONL {
		w, cleanup := newJSONLWriter(viewer)
		defer cleanup()
		rec := output.NewJobRecord(job, viewer)
		return w.WriteJob(ctx, &rec)
	}

	printJobDetail(job, viewer)
	return nil
}

func printJobDetail(job *marketplace.Job, viewer string) {
	role := viewmodel.DisplayRole(job, viewer)
	_, style := viewmodel.ResolveStyle(job.Status, role)

	fmt.Printf("Job:      %s\n", job.ID)
	fmt.Printf("Title:    %s\n", job.Title())
	if job.JobDetails.Description != "" {
		fmt.Printf("About:    %s\n", job.JobDetails.Description)
	}
	fmt.Printf("Status:   %s (%s)\n", style.Label, job.Status)
	fmt.Printf("Role:     %s\n", role)
	if job.JobDetails.Urgency != "" {
		fmt.Printf("Urgency:  %s\n", job.JobDetails.Urgency)
	}
	if job.Location.County != "" || job.Location.Town != "" {
		fmt.Printf("Where:    %s, %s\n", job.Location.Town, job.Location.County)
	}
	if b := job.JobDetails.Budget; b != nil {
		fmt.Printf("Budget:   KES %.0f - %.0f\n", b.Min, b.Max)
	}
	if job.AgreedPrice != nil {
		fmt.Printf("Agreed:   KES %.0f\n", *job.AgreedPrice)
	}
	if job.Payment.Status != "" {
		fmt.Printf("Payment:  %s\n", job.Payment.Status)
	}
	if !job.UpdatedAt.IsZero() {
		fmt.Printf("Updated:  %s\n", job.UpdatedAt.Format(time.RFC3339))
	}

	if len(job.Proposals) > 0 {
		fmt.Printf("\nProposals (%d):\n", len(job.Proposals))
		for _, p := range job.Proposals {
			fmt.Printf("  - fundi %s: KES %.0f (%s) %s\n",
				p.FundiID.ID(), p.ProposedPrice, p.EstimatedDuration, p.Status)
		}
	}
}
