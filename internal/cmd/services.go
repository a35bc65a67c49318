package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the service taxonomy",
	RunE:  runServices,
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}

func runServices(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, _, err := newClient(cfg)
	if err != nil {
		return err
	}

	services, err := client.GetServices(ctx)
	if err != nil {
		observability.CLILogger.Error("Failed to list services", zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to list services", err)
	}

	if len(services) == 0 {
		fmt.Println("No services found.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSUB-SERVICES")
	for _, s := range services {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Name, strings.Join(s.SubServices, ", "))
	}
	return tw.Flush()
}
