package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsync-cli/internal/logger"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch documentation directories and synchronise on change",
	Long: `Watches the configured documentation directories for filesystem
changes and synchronises the staged change set after each quiet period.
Runs until interrupted.`,
	RunE: runWatchCmd,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second,
		"quiet period before a triggered synchronisation")
	rootCmd.AddCommand(watchCmd)
}

func runWatchCmd(cmd *cobra.Command, _ []string) error {
	if err := initialiseServices(false); err != nil {
		return err
	}
	if syncService == nil {
		return errors.New("sync service not configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, dir := range cfg.WatchDirectories {
		path := filepath.Join(repoPath, dir)
		if err := watcher.Add(path); err != nil {
			logger.Warn("watching %s: %v", path, err)
			continue
		}
		cmd.Printf("Watching %s\n", path)
		watched++
	}
	if watched == 0 {
		return errors.New("no watchable directories")
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Debounce timer starts drained; the first event arms it.
	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopping watch.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("filesystem event: %s", event)
			debounce.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-debounce.C:
			result, err := syncService.SyncStaged(ctx)
			if err != nil {
				// The next quiet period gets a fresh preflight.
				logger.Error("sync failed: %v", err)
				continue
			}
			cmd.Printf("Synchronised: %d processed, %d failed\n",
				result.Processed, result.Failed)
		}
	}
}
