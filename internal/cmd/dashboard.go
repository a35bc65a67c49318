package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/config"
	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/pkg/output"
	"github.com/fundiconnect/fundictl/pkg/viewmodel"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show job counts per role",
	Long: `Show a summary of your jobs, bucketed by status and split by the
side you play on each job (customer vs fundi).`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, sess, err := requireSession(cfg)
	if err != nil {
		return err
	}

	jobs, err := client.GetMyJobs(ctx, "", "")
	if err != nil {
		observability.CLILogger.Error("Failed to load jobs", zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to load jobs", err)
	}

	counts := viewmodel.Summarize(jobs, sess.UserID)

	if cfg.Output.Format == config.FormatJSONL {
		w, cleanup := newJSONLWriter(sess.UserID)
		defer cleanup()
		return w.WriteSummary(ctx, &output.SummaryRecord{Counts: counts})
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BUCKET\tAS CUSTOMER\tAS FUNDI")
	fmt.Fprintf(tw, "Posted\t%d\t%d\n", counts.AsCustomer.Posted, counts.AsFundi.Posted)
	fmt.Fprintf(tw, "Applied\t%d\t%d\n", counts.AsCustomer.Applied, counts.AsFundi.Applied)
	fmt.Fprintf(tw, "Assigned\t%d\t%d\n", counts.AsCustomer.Assigned, counts.AsFundi.Assigned)
	fmt.Fprintf(tw, "In progress\t%d\t%d\n", counts.AsCustomer.InProgress, counts.AsFundi.InProgress)
	fmt.Fprintf(tw, "Completed\t%d\t%d\n", counts.AsCustomer.Completed, counts.AsFundi.Completed)
	fmt.Fprintf(tw, "Cancelled\t%d\t%d\n", counts.AsCustomer.Cancelled, counts.AsFundi.Cancelled)
	fmt.Fprintf(tw, "Disputed\t%d\t%d\n", counts.AsCustomer.Disputed, counts.AsFundi.Disputed)
	fmt.Fprintf(tw, "Total\t%d\t%d\n", counts.AsCustomer.Total, counts.AsFundi.Total)
	return tw.Flush()
}
