// Package cli implements the docsync command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsync-cli/internal/adapters/driven/gitsource"
	"github.com/custodia-labs/docsync-cli/internal/adapters/driven/lightrag"
	"github.com/custodia-labs/docsync-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docsync-cli/internal/config"
	"github.com/custodia-labs/docsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsync-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsync-cli/internal/core/services"
	"github.com/custodia-labs/docsync-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired on first use. Tests substitute these directly.
var (
	syncService   driving.Syncer
	knowledgeBase driven.KnowledgeBase
	runStore      driven.RunStore
	cfg           config.Config
)

// Persistent flags.
var (
	configPath   string
	repoPath     string
	verbose      bool
	createConfig bool
)

var rootCmd = &cobra.Command{
	Use:   "docsync",
	Short: "Synchronise documentation changes with a knowledge base",
	Long: `docsync detects documentation changes in a git repository and
mirrors them into a LightRAG knowledge-base service, keeping the
indexed documentation aligned with the repository.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if createConfig {
			path := configPath
			if path == "" {
				path = config.DefaultFileName
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			cmd.Printf("Created configuration file %s\n", path)
			return nil
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the configuration file (default doc_sync_config.yaml)")
	rootCmd.PersistentFlags().StringVar(&repoPath, "repo-path", ".",
		"path to the git repository")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging")
	rootCmd.Flags().BoolVar(&createConfig, "create-config", false,
		"write a default configuration file and exit")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initialiseServices wires the production adapters from configuration.
// A no-op when services are already present, which is how tests inject
// mocks. dryRun overrides the configured dry_run when true.
func initialiseServices(dryRun bool) error {
	if syncService != nil {
		return nil
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dryRun {
		loaded.DryRun = true
	}
	cfg = loaded

	if cfg.LogLevel == "debug" {
		logger.SetVerbose(true)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logger.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	policy := cfg.Policy()
	source := gitsource.New(repoPath, policy)
	kb := lightrag.NewClient(lightrag.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.Timeout(),
	})

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}

	knowledgeBase = kb
	runStore = store
	syncService = services.NewSyncOrchestrator(source, kb, store, policy)
	return nil
}
