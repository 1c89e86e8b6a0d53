package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/agentick/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agentick.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, logging.LogLevelInfo, cfg.Level())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, `
provider: anthropic
model: claude-3-5-sonnet-20241022
log_level: debug
max_retries: 3
index_path: decls.json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Model)
	assert.Equal(t, "decls.json", cfg.IndexPath)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, logging.LogLevelDebug, cfg.Level())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "provider: openai\nmodel: gpt-4o-mini\n")

	t.Setenv("AGENTICK_PROVIDER", "mock")
	t.Setenv("AGENTICK_MAX_RETRIES", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.Provider)
	assert.Equal(t, 2, cfg.MaxRetries)
	// Unset env keys keep file values.
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
}

func TestLoad_ProviderKeyFromEnv(t *testing.T) {
	t.Setenv("AGENTICK_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.APIKey)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "provider: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestNewClient_Mock(t *testing.T) {
	cfg := Default()
	cfg.Provider = "mock"

	client, err := cfg.NewClient()
	require.NoError(t, err)
	assert.Equal(t, "mock", client.Info().Provider)
}

func TestNewClient_UnknownProvider(t *testing.T) {
	cfg := Default()
	cfg.Provider = "carrier-pigeon"
	_, err := cfg.NewClient()
	assert.Error(t, err)
}
