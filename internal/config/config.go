// Package config loads and validates the synchronisation configuration
// file. Configuration is stored as YAML; a missing file is an error so
// that a misplaced path never silently falls back to defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
)

// DefaultFileName is the configuration file looked up when no explicit
// path is given.
const DefaultFileName = "doc_sync_config.yaml"

// Config is the full synchronisation configuration.
type Config struct {
	// WatchDirectories are the repository-relative directory prefixes
	// whose files are eligible for synchronisation.
	WatchDirectories []string `yaml:"watch_directories"`

	// FileExtensions are the eligible file extensions, dot included.
	FileExtensions []string `yaml:"file_extensions"`

	// ExcludePatterns are glob patterns removing paths from eligibility.
	ExcludePatterns []string `yaml:"exclude_patterns"`

	// APIBaseURL is the knowledge-base service base URL.
	APIBaseURL string `yaml:"api_base_url"`

	// APITimeout is the per-request timeout in seconds.
	APITimeout int `yaml:"api_timeout"`

	// BatchSize is reserved for future batched submission.
	BatchSize int `yaml:"batch_size"`

	// DryRun previews changes without writing to the knowledge base.
	DryRun bool `yaml:"dry_run"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogFile, when set, duplicates log output to a file.
	LogFile string `yaml:"log_file,omitempty"`
}

// Default returns the configuration used when writing a fresh file.
func Default() Config {
	return Config{
		WatchDirectories: []string{"docs/", "documentation/"},
		FileExtensions:   []string{".md", ".markdown"},
		ExcludePatterns:  []string{"**/node_modules/**", "**/.git/**", "**/build/**"},
		APIBaseURL:       "http://localhost:8020",
		APITimeout:       30,
		BatchSize:        10,
		DryRun:           false,
		LogLevel:         "info",
	}
}

// Load reads and validates the configuration at path. If path is empty,
// DefaultFileName in the current directory is used.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf(
				"configuration file %s not found (run with --create-config to generate one): %w",
				path, domain.ErrNotFound)
		}
		return Config{}, fmt.Errorf("reading configuration: %w", err)
	}

	// Start from defaults so an omitted field keeps its default rather
	// than zeroing out.
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for values that would make a run
// meaningless or unsafe.
func (c Config) Validate() error {
	if len(c.WatchDirectories) == 0 {
		return fmt.Errorf("watch_directories must not be empty: %w", domain.ErrInvalidInput)
	}
	if len(c.FileExtensions) == 0 {
		return fmt.Errorf("file_extensions must not be empty: %w", domain.ErrInvalidInput)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url must not be empty: %w", domain.ErrInvalidInput)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive: %w", domain.ErrInvalidInput)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive: %w", domain.ErrInvalidInput)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error: %w",
			c.LogLevel, domain.ErrInvalidInput)
	}
	return nil
}

// Timeout returns the API timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.APITimeout) * time.Second
}

// Policy converts the configuration into the domain filtering policy.
func (c Config) Policy() domain.SyncPolicy {
	return domain.SyncPolicy{
		WatchDirectories: c.WatchDirectories,
		FileExtensions:   c.FileExtensions,
		ExcludePatterns:  c.ExcludePatterns,
		DryRun:           c.DryRun,
	}
}

// WriteDefault writes the default configuration to path, creating
// parent directories as needed. It refuses to overwrite an existing
// file.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultFileName
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration file %s already exists", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating configuration directory: %w", err)
		}
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshalling default configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	return nil
}
