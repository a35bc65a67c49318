package cmd

import (
	"fmt"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/config"
	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/pkg/output"
)

var (
	notifyUnread bool
	notifyRead   string
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List your notifications",
	Long: `List your notifications, newest first.

Example:
  fundictl notifications
  fundictl notifications --unread
  fundictl notifications --mark-read <id>`,
	RunE: runNotifications,
}

func init() {
	rootCmd.AddCommand(notificationsCmd)

	notificationsCmd.Flags().BoolVar(&notifyUnread, "unread", false, "Only show unread notifications")
	notificationsCmd.Flags().StringVar(&notifyRead, "mark-read", "", "Mark one notification as read and exit")
}

func runNotifications(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, sess, err := requireSession(cfg)
	if err != nil {
		return err
	}

	if notifyRead != "" {
		if err := client.MarkNotificationRead(ctx, notifyRead); err != nil {
			observability.CLILogger.Error("Failed to mark notification read",
				zap.String("notification_id", notifyRead),
				zap.Error(err))
			return exitError(foundry.ExitExternalServiceUnavailable, "Failed to mark notification read", err)
		}
		fmt.Printf("Marked %s as read\n", notifyRead)
		return nil
	}

	notifications, err := client.GetNotifications(ctx, notifyUnread)
	if err != nil {
		observability.CLILogger.Error("Failed to list notifications", zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to list notifications", err)
	}

	if cfg.Output.Format == config.FormatJSONL {
		w, cleanup := newJSONLWriter(sess.UserID)
		defer cleanup()
		for _, n := range notifications {
			rec := output.NotificationRecord{
				ID:      n.ID,
				Title:   n.Title,
				Message: n.Message,
				JobID:   n.JobID,
				Read:    n.Read,
			}
			if err := w.WriteNotification(ctx, &rec); err != nil {
				return err
			}
		}
		return nil
	}

	if len(notifications) == 0 {
		fmt.Println("No notifications.")
		return nil
	}
	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s %s  %s", marker, n.ID, n.Title)
		if n.Message != "" {
			fmt.Printf(" - %s", n.Message)
		}
		fmt.Println()
	}
	return nil
}
