// Package cmd implements the fundictl command tree.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fundiconnect/fundictl/internal/config"
	"github.com/fundiconnect/fundictl/internal/observability"
)

// versionInfo holds build-time version metadata injected via SetVersionInfo.
var versionInfo = struct {
	Version   string
	Commit    string
	BuildDate string
}{
	Version:   "dev",
	Commit:    "HEAD",
	BuildDate: "unknown",
}

// SetVersionInfo records build metadata for the version command.
// Called from main with values injected at link time.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

var (
	rootConfigPath string
	rootAPIURL     string
	rootOutput     string
	rootVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "fundictl",
	Short: "FundiConnect marketplace client",
	Long: `fundictl is a command-line client for the FundiConnect home-services
marketplace. It lets customers post jobs and review proposals, and lets
fundis browse open jobs and submit proposals, from the terminal.

Configuration is read from ~/.config/fundictl/config.yaml and can be
overridden with FUNDI_* environment variables or flags.

Examples:
  fundictl login --email jane@example.com
  fundictl jobs list --county Nairobi --service plumbing
  fundictl jobs mine --role fundi
  fundictl dashboard`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		observability.SetVerbose(rootVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config file (default ~/.config/fundictl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootAPIURL, "api-url", "", "Override API base URL")
	rootCmd.PersistentFlags().StringVarP(&rootOutput, "output", "o", "", "Output format (table|jsonl)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with signal-aware context cancellation.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer observability.Sync()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig loads configuration and applies global flag overrides.
func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, rootConfigPath)
	if err != nil {
		return nil, err
	}
	if rootAPIURL != "" {
		cfg.API.BaseURL = rootAPIURL
	}
	if rootOutput != "" {
		if rootOutput != config.FormatTable && rootOutput != config.FormatJSONL {
			return nil, fmt.Errorf("unsupported output format: %s", rootOutput)
		}
		cfg.Output.Format = rootOutput
	}
	return cfg, nil
}

// exitError creates an error that will cause the CLI to exit with the given code.
func exitError(code int, message string, err error) error {
	return fmt.Errorf("%s: %w (exit code %d)", message, err, code)
}
