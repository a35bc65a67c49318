package cmd

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <pattern>...",
	Short: "Upload images for job postings",
	Long: `Upload image files and print the resulting URLs.

Arguments are doublestar glob patterns resolved against the local
filesystem, so whole directories can be uploaded at once.

Example:
  fundictl upload photos/sink.jpg
  fundictl upload "photos/**/*.jpg"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid configuration", err)
	}

	paths, err := expandUploadPatterns(args)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid glob pattern", err)
	}
	if len(paths) == 0 {
		return exitError(foundry.ExitFileNotFound, "No files matched",
			fmt.Errorf("patterns matched no files: %v", args))
	}

	client, _, err := requireSession(cfg)
	if err != nil {
		return err
	}

	observability.CLILogger.Debug("Uploading images",
		zap.Int("files", len(paths)))

	urls, err := client.UploadImages(ctx, paths)
	if err != nil {
		observability.CLILogger.Error("Upload failed", zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Upload failed", err)
	}

	for _, u := range urls {
		fmt.Println(u)
	}
	return nil
}

// expandUploadPatterns resolves doublestar patterns to a sorted, de-duplicated
// list of file paths. Literal paths pass through glob matching unchanged.
func expandUploadPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			seen[m] = struct{}{}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}
