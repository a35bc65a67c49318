package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/config"
	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/pkg/marketplace"
	"github.com/fundiconnect/fundictl/pkg/output"
	"github.com/fundiconnect/fundictl/pkg/viewmodel"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and manage marketplace jobs",
	Long: `Browse and manage marketplace jobs.

Example:
  fundictl jobs list --county Nairobi
  fundictl jobs mine --role customer
  fundictl jobs show <job-id>
  fundictl jobs post --draft job.yaml`,
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}

// renderJobs writes a job listing in the configured output format.
// viewer may be empty for unauthenticated listings; profile may be nil
// when proposal eligibility is not known.
func renderJobs(ctx context.Context, cfg *config.Config, jobs []marketplace.Job, viewer string, profile *marketplace.User) error {
	if cfg.Output.Format == config.FormatJSONL {
		return renderJobsJSONL(ctx, jobs, viewer, profile)
	}
	renderJobsTable(jobs, viewer, profile)
	return nil
}

func renderJobsTable(jobs []marketplace.Job, viewer string, profile *marketplace.User) {
	if len(jobs) == 0 {
		fmt.Println("No jobs found.")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tURGENCY\tPROPOSALS\tROLE")
	for i := range jobs {
		job := &jobs[i]
		role := viewmodel.DisplayRole(job, viewer)
		_, style := viewmodel.ResolveStyle(job.Status, role)

		label := style.Label
		if profile != nil && viewmodel.CanPropose(job, profile) {
			label += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			job.ID, job.Title(), label, job.JobDetails.Urgency, len(job.Proposals), role)
	}
	_ = tw.Flush()

	if profile != nil {
		fmt.Println("\n* open for your proposal")
	}
}

func renderJobsJSONL(ctx context.Context, jobs []marketplace.Job, viewer string, profile *marketplace.User) error {
	w, cleanup := newJSONLWriter(viewer)
	defer cleanup()

	for i := range jobs {
		rec := output.NewJobRecord(&jobs[i], viewer)
		if profile != nil {
			can := viewmodel.CanPropose(&jobs[i], profile)
			rec.CanPropose = &can
		}
		if err := w.WriteJob(ctx, &rec); err != nil {
			observability.CLILogger.Warn("Failed to write job record",
				zap.String("job_id", jobs[i].ID),
				zap.Error(err))
			return err
		}
	}
	return nil
}
