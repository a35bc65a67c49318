package cmd

import (
	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/pkg/apiclient"
	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

var (
	listService string
	listCounty  string
	listTown    string
	listUrgency string
	listStatus  string
	listSearch  string
	listPage    int
	listLimit   int
)

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open jobs on the marketplace",
	Long: `List jobs on the marketplace, optionally filtered by service,
location, urgency, or a search term.

When logged in as a fundi, jobs open for your proposal are marked.

Example:
  fundictl jobs list --county Nairobi --service plumbing
  fundictl jobs list --urgency high --search "water heater"`,
	RunE: runJobsList,
}

func init() {
	jobsCmd.AddCommand(jobsListCmd)

	jobsListCmd.Flags().StringVar(&listService, "service", "", "Filter by service ID")
	jobsListCmd.Flags().StringVar(&listCounty, "county", "", "Filter by county")
	jobsListCmd.Flags().StringVar(&listTown, "town", "", "Filter by town")
	jobsListCmd.Flags().StringVar(&listUrgency, "urgency", "", "Filter by urgency (low|medium|high|emergency)")
	jobsListCmd.Flags().StringVar(&listStatus, "status", "", "Filter by raw job status")
	jobsListCmd.Flags().StringVar(&listSearch, "search", "", "Free-text search")
	jobsListCmd.Flags().IntVar(&listPage, "page", 0, "Result page")
	jobsListCmd.Flags().IntVar(&listLimit, "limit", 0, "Results per page")
}

func runJobsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, sess, err := newClient(cfg)
	if err != nil {
		return err
	}

	filter := apiclient.JobFilter{
		ServiceID: listService,
		County:    listCounty,
		Town:      listTown,
		Urgency:   marketplace.Urgency(listUrgency),
		Status:    marketplace.JobStatus(listStatus),
		Search:    listSearch,
		Page:      listPage,
		Limit:     listLimit,
	}

	jobs, err := client.GetAllJobs(ctx, filter)
	if err != nil {
		observability.CLILogger.Error("Failed to list jobs", zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to list jobs", err)
	}

	// Annotate proposal eligibility when a fundi session is active.
	var profile *marketplace.User
	if sess != nil {
		profile, err = client.GetProfile(ctx)
		if err != nil {
			observability.CLILogger.Warn("Failed to load profile; skipping eligibility",
				zap.Error(err))
			profile = nil
		} else if !profile.IsFundi {
			profile = nil
		}
	}

	return renderJobs(ctx, cfg, jobs, viewerID(sess), profile)
}
