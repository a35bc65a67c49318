package cmd

import (
	"context"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/internal/server"
	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve your dashboard state over HTTP",
	Long: `Run a local HTTP server exposing your dashboard state as JSON.

The server re-fetches your jobs in the background and serves summary
counts and per-job display statuses for widgets and scripts.

Endpoints:
  GET /health
  GET /version
  GET /api/v1/summary
  GET /api/v1/jobs

Example:
  fundictl serve --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind host (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Bind port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, sess, err := requireSession(cfg)
	if err != nil {
		return err
	}

	host := cfg.Server.Host
	if serveHost != "" {
		host = serveHost
	}
	port := cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}

	server.Version = versionInfo.Version
	srv, err := server.New(server.Config{
		Host:     host,
		Port:     port,
		ViewerID: sess.UserID,
		FetchJobs: func(ctx context.Context) ([]marketplace.Job, error) {
			return client.GetMyJobs(ctx, "", "")
		},
		RefreshInterval: cfg.Server.RefreshInterval,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
	})
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid server configuration", err)
	}

	observability.CLILogger.Info("Starting dashboard server",
		zap.String("host", host),
		zap.Int("port", port),
		zap.String("viewer", sess.UserID))

	if err := srv.Run(ctx); err != nil {
		return exitError(foundry.ExitExternalServiceUnavailable, "Server failed", err)
	}
	return nil
}
