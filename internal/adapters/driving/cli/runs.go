package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent synchronisation runs",
	Long: `Lists recently recorded synchronisation runs, newest first.
Dry runs are never recorded.`,
	RunE: runRunsCmd,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 10, "maximum number of runs")
	rootCmd.AddCommand(runsCmd)
}

func runRunsCmd(cmd *cobra.Command, _ []string) error {
	if err := initialiseServices(false); err != nil {
		return err
	}
	if runStore == nil {
		return errors.New("run history not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runs, err := runStore.ListRecent(ctx, runsLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No recorded runs.")
		return nil
	}

	for _, run := range runs {
		revs := ""
		switch {
		case run.FromRev != "" && run.ToRev != "":
			revs = fmt.Sprintf(" %s..%s", run.FromRev, run.ToRev)
		case run.FromRev != "":
			revs = " " + run.FromRev
		}

		cmd.Printf("%s  %-8s%s  %d processed, %d failed, %d skipped  (%s)\n",
			run.StartedAt.Local().Format(time.DateTime),
			run.Mode, revs,
			run.Result.Processed, run.Result.Failed, run.Result.Skipped,
			run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
	}
	return nil
}
