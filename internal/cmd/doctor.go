package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/internal/token"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run diagnostic checks",
	Long: `Run diagnostic checks on the local setup and suggest fixes for
common issues.

Examples:
  fundictl doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	observability.CLILogger.Info("=== fundictl doctor ===")
	observability.CLILogger.Info("")
	observability.CLILogger.Info("Running diagnostic checks...")
	observability.CLILogger.Info("")

	allChecks := true
	checkNum := 1
	const totalChecks = 5

	// Check 1: Go version
	goVersion := runtime.Version()
	observability.CLILogger.Info(fmt.Sprintf("[%d/%d] Checking Go version... ✅ %s", checkNum, totalChecks, goVersion),
		zap.String("go_version", goVersion))
	checkNum++

	// Check 2: Configuration
	cfg, err := loadConfig(ctx)
	if err != nil {
		observability.CLILogger.Error(fmt.Sprintf("[%d/%d] Checking configuration... ❌ %v", checkNum, totalChecks, err),
			zap.Error(err))
		allChecks = false
	} else {
		observability.CLILogger.Info(fmt.Sprintf("[%d/%d] Checking configuration... ✅ %s", checkNum, totalChecks, cfg.API.BaseURL),
			zap.String("base_url", cfg.API.BaseURL))
	}
	checkNum++

	// Check 3: Saved session
	if cfg != nil {
		sess, err := token.NewStore(cfg.Auth.TokenPath).Load()
		switch {
		case errors.Is(err, token.ErrNoSession):
			observability.CLILogger.Warn(fmt.Sprintf("[%d/%d] Checking session... ⚠️  not logged in (run `fundictl login`)", checkNum, totalChecks))
		case err != nil:
			observability.CLILogger.Error(fmt.Sprintf("[%d/%d] Checking session... ❌ %v", checkNum, totalChecks, err),
				zap.Error(err))
			allChecks = false
		default:
			claims, inspectErr := token.Inspect(sess.Token)
			if inspectErr == nil && claims.Expired(time.Now()) {
				observability.CLILogger.Warn(fmt.Sprintf("[%d/%d] Checking session... ⚠️  token expired; log in again", checkNum, totalChecks),
					zap.Time("expired_at", claims.ExpiresAt))
			} else {
				observability.CLILogger.Info(fmt.Sprintf("[%d/%d] Checking session... ✅ %s", checkNum, totalChecks, sess.Email),
					zap.String("user_id", sess.UserID))
			}
		}
	} else {
		observability.CLILogger.Warn(fmt.Sprintf("[%d/%d] Checking session... skipped (no configuration)", checkNum, totalChecks))
	}
	checkNum++

	// Check 4: API reachability
	if cfg != nil {
		client, _, err := newClient(cfg)
		if err == nil {
			_, err = client.GetServices(ctx)
		}
		if err != nil {
			observability.CLILogger.Error(fmt.Sprintf("[%d/%d] Checking API reachability... ❌ %v", checkNum, totalChecks, err),
				zap.Error(err))
			allChecks = false
		} else {
			observability.CLILogger.Info(fmt.Sprintf("[%d/%d] Checking API reachability... ✅ %s", checkNum, totalChecks, cfg.API.BaseURL))
		}
	} else {
		observability.CLILogger.Warn(fmt.Sprintf("[%d/%d] Checking API reachability... skipped (no configuration)", checkNum, totalChecks))
	}
	checkNum++

	// Check 5: Environment
	observability.CLILogger.Info(fmt.Sprintf("[%d/%d] Checking environment... ✅ %s/%s", checkNum, totalChecks, runtime.GOOS, runtime.GOARCH),
		zap.String("os", runtime.GOOS),
		zap.String("arch", runtime.GOARCH))

	observability.CLILogger.Info("")
	if allChecks {
		observability.CLILogger.Info("All checks passed ✅")
		return nil
	}
	observability.CLILogger.Warn("Some checks failed; see messages above")
	return nil
}
