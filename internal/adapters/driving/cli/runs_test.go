package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
)

func TestRunsCmd_Use(t *testing.T) {
	assert.Equal(t, "runs", runsCmd.Use)
}

func TestRunsCmd_HasLimitFlag(t *testing.T) {
	flag := runsCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "10", flag.DefValue)
}

func TestRunsCmd_EmptyHistory(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("runs")

	require.NoError(t, err)
	assert.Contains(t, out, "No recorded runs")
}

func TestRunsCmd_ListsRuns(t *testing.T) {
	_, store, cleanup := setupTestServices()
	defer cleanup()

	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	store.runs = []domain.SyncRun{
		{
			ID:      "run-1",
			Mode:    domain.ModeSince,
			FromRev: "abc123",
			ToRev:   "HEAD",
			Result:  domain.BatchResult{Processed: 3, Failed: 1},

			StartedAt:  started,
			FinishedAt: started.Add(2 * time.Second),
		},
	}

	out, err := execute("runs")

	require.NoError(t, err)
	assert.Contains(t, out, "since")
	assert.Contains(t, out, "abc123..HEAD")
	assert.Contains(t, out, "3 processed, 1 failed, 0 skipped")
}

func TestRunsCmd_HonoursLimit(t *testing.T) {
	_, store, cleanup := setupTestServices()
	defer cleanup()

	started := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for _, id := range []string{"run-1", "run-2", "run-3"} {
		store.runs = append(store.runs, domain.SyncRun{
			ID: id, Mode: domain.ModeStaged,
			StartedAt: started, FinishedAt: started,
		})
	}

	out, err := execute("runs", "--limit", "2")

	require.NoError(t, err)
	assert.Equal(t, 2, countLines(out))
}

func TestRunsCmd_StoreError(t *testing.T) {
	_, store, cleanup := setupTestServices()
	defer cleanup()
	store.listErr = domain.ErrInvalidInput

	_, err := execute("runs")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing runs")
}

func countLines(s string) int {
	count := 0
	for _, r := range s {
		if r == '\n' {
			count++
		}
	}
	return count
}
