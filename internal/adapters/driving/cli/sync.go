package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
)

var (
	sinceCommit    string
	betweenCommits []string
	syncStaged     bool
	syncDryRun     bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronise documentation changes with the knowledge base",
	Long: `Detects documentation changes in the repository and mirrors them
into the knowledge base. By default the currently staged changes are
synchronised; --since-commit and --between-commits select committed
ranges instead.`,
	RunE: runSyncCmd,
}

func init() {
	syncCmd.Flags().StringVar(&sinceCommit, "since-commit", "",
		"synchronise changes made since this commit")
	syncCmd.Flags().StringSliceVar(&betweenCommits, "between-commits", nil,
		"synchronise changes between two commits (from,to)")
	syncCmd.Flags().BoolVar(&syncStaged, "staged", false,
		"synchronise currently staged changes (the default)")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false,
		"preview changes without writing to the knowledge base")
	syncCmd.MarkFlagsMutuallyExclusive("since-commit", "between-commits", "staged")
	rootCmd.AddCommand(syncCmd)
}

func runSyncCmd(cmd *cobra.Command, _ []string) error {
	if err := initialiseServices(syncDryRun); err != nil {
		return err
	}
	if syncService == nil {
		return errors.New("sync service not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var result domain.BatchResult
	var err error
	switch {
	case sinceCommit != "":
		cmd.Printf("Synchronising changes since %s...\n", sinceCommit)
		result, err = syncWithProgress(ctx, cmd, func() (domain.BatchResult, error) {
			return syncService.SyncSince(ctx, sinceCommit)
		})
	case len(betweenCommits) > 0:
		if len(betweenCommits) != 2 {
			return fmt.Errorf("--between-commits requires exactly two commits: %w",
				domain.ErrInvalidInput)
		}
		cmd.Printf("Synchronising changes between %s and %s...\n",
			betweenCommits[0], betweenCommits[1])
		result, err = syncWithProgress(ctx, cmd, func() (domain.BatchResult, error) {
			return syncService.SyncBetween(ctx, betweenCommits[0], betweenCommits[1])
		})
	default:
		cmd.Println("Synchronising staged changes...")
		result, err = syncWithProgress(ctx, cmd, func() (domain.BatchResult, error) {
			return syncService.SyncStaged(ctx)
		})
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	cmd.Printf("Results: %d processed, %d failed, %d skipped\n",
		result.Processed, result.Failed, result.Skipped)
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d changes failed", result.Failed, result.Total())
	}
	return nil
}

// syncWithProgress runs one sync while displaying progress updates.
func syncWithProgress(
	ctx context.Context,
	cmd *cobra.Command,
	sync func() (domain.BatchResult, error),
) (domain.BatchResult, error) {
	type outcome struct {
		result domain.BatchResult
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		result, err := sync()
		done <- outcome{result, err}
	}()

	// Poll status every 500ms
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	lastCount := 0
	for {
		select {
		case out := <-done:
			return out.result, out.err
		case <-ticker.C:
			status := syncService.Status()
			if status.Running && status.Processed > lastCount {
				cmd.Printf("\rProcessing... %d changes", status.Processed)
				lastCount = status.Processed
			}
		case <-ctx.Done():
			return domain.BatchResult{}, ctx.Err()
		}
	}
}
