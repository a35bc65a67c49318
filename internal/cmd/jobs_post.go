package cmd

import (
	"errors"
	"fmt"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/pkg/jobdraft"
)

var (
	postDraftPath string
	postDryRun    bool
	postUpload    bool
)

var jobsPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a new job from a draft file",
	Long: `Post a new job from a YAML or JSON draft file.

The draft is validated locally before anything is sent. With --upload,
image paths in the draft are uploaded first and replaced with the
returned URLs.

Example:
  fundictl jobs post --draft job.yaml
  fundictl jobs post --draft job.yaml --dry-run
  fundictl jobs post --draft job.yaml --upload`,
	RunE: runJobsPost,
}

func init() {
	jobsCmd.AddCommand(jobsPostCmd)

	jobsPostCmd.Flags().StringVarP(&postDraftPath, "draft", "d", "", "Path to job draft (required)")
	jobsPostCmd.Flags().BoolVar(&postDryRun, "dry-run", false, "Validate the draft without posting")
	jobsPostCmd.Flags().BoolVar(&postUpload, "upload", false, "Upload draft images before posting")

	_ = jobsPostCmd.MarkFlagRequired("draft")
}

func runJobsPost(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	draft, err := jobdraft.Load(postDraftPath)
	if err != nil {
		if errors.Is(err, jobdraft.ErrValidationFailed) {
			observability.CLILogger.Error("Draft validation failed",
				zap.String("path", postDraftPath),
				zap.Error(err))
			return exitError(foundry.ExitInvalidArgument, "Invalid job draft", err)
		}
		return exitError(foundry.ExitFileReadError, "Failed to load job draft", err)
	}

	if postDryRun {
		fmt.Println("Draft validated successfully. Remove --dry-run to post.")
		fmt.Printf("Service:  %s\n", draft.Service)
		fmt.Printf("Title:    %s\n", draft.Details.Title)
		fmt.Printf("Urgency:  %s\n", draft.Details.Urgency)
		if draft.Location.County != "" {
			fmt.Printf("County:   %s\n", draft.Location.County)
		}
		return nil
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	client, sess, err := requireSession(cfg)
	if err != nil {
		return err
	}

	if postUpload && len(draft.Details.Images) > 0 {
		urls, err := client.UploadImages(ctx, draft.Details.Images)
		if err != nil {
			observability.CLILogger.Error("Image upload failed", zap.Error(err))
			return exitError(foundry.ExitExternalServiceUnavailable, "Image upload failed", err)
		}
		draft.Details.Images = urls
	}

	job, err := client.CreateJob(ctx, draft.Request())
	if err != nil {
		observability.CLILogger.Error("Failed to post job", zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to post job", err)
	}

	observability.CLILogger.Info("Job posted",
		zap.String("job_id", job.ID),
		zap.String("user_id", sess.UserID))
	fmt.Printf("Posted job %s: %s\n", job.ID, job.Title())
	return nil
}
