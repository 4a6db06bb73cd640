package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc_sync_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
watch_directories:
  - docs/
file_extensions:
  - .md
exclude_patterns:
  - "**/drafts/**"
api_base_url: http://kb.internal:8020
api_timeout: 15
batch_size: 5
dry_run: true
log_level: debug
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"docs/"}, cfg.WatchDirectories)
	assert.Equal(t, []string{".md"}, cfg.FileExtensions)
	assert.Equal(t, []string{"**/drafts/**"}, cfg.ExcludePatterns)
	assert.Equal(t, "http://kb.internal:8020", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
	assert.Equal(t, 5, cfg.BatchSize)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadOmittedFieldsKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
watch_directories:
  - docs/
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	defaults := Default()
	assert.Equal(t, defaults.FileExtensions, cfg.FileExtensions)
	assert.Equal(t, defaults.APIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, defaults.APITimeout, cfg.APITimeout)
	assert.Equal(t, defaults.LogLevel, cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "--create-config")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "watch_directories: [unclosed")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty watch directories", func(c *Config) { c.WatchDirectories = nil }},
		{"empty file extensions", func(c *Config) { c.FileExtensions = nil }},
		{"empty base URL", func(c *Config) { c.APIBaseURL = "" }},
		{"zero timeout", func(c *Config) { c.APITimeout = 0 }},
		{"negative batch size", func(c *Config) { c.BatchSize = -1 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidInput)
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestPolicyConversion(t *testing.T) {
	cfg := Default()
	cfg.DryRun = true

	policy := cfg.Policy()

	assert.Equal(t, cfg.WatchDirectories, policy.WatchDirectories)
	assert.Equal(t, cfg.FileExtensions, policy.FileExtensions)
	assert.Equal(t, cfg.ExcludePatterns, policy.ExcludePatterns)
	assert.True(t, policy.DryRun)
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc_sync_config.yaml")

	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteDefaultRefusesOverwrite(t *testing.T) {
	path := writeConfig(t, "log_level: info\n")

	assert.Error(t, WriteDefault(path))
}
