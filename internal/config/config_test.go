package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no stray config.yaml
// is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.ADSMedia.APIKey)
	assert.Equal(t, "MailBridge", cfg.ADSMedia.FromName)
	assert.Equal(t, "https://api.adsmedia.live/v1", cfg.ADSMedia.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.ADSMedia.Timeout)
}

func TestLoad_Environment(t *testing.T) {
	inTempDir(t)
	t.Setenv("MAILBRIDGE_SERVER_PORT", "9090")
	t.Setenv("MAILBRIDGE_ADSMEDIA_API_KEY", "env-config-key")
	t.Setenv("MAILBRIDGE_ADSMEDIA_FROM_NAME", "Shop")
	t.Setenv("MAILBRIDGE_ADSMEDIA_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "env-config-key", cfg.ADSMedia.APIKey)
	assert.Equal(t, "Shop", cfg.ADSMedia.FromName)
	assert.Equal(t, 5*time.Second, cfg.ADSMedia.Timeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := inTempDir(t)

	yaml := []byte("adsmedia:\n  api_key: file-key\n  from_name: Store\nlog:\n  format: console\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.ADSMedia.APIKey)
	assert.Equal(t, "Store", cfg.ADSMedia.FromName)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("adsmedia: [unclosed"), 0o600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWith_ExplicitValueOverridesDefaults(t *testing.T) {
	inTempDir(t)

	v := viper.New()
	v.Set("adsmedia.api_key", "flag-key")

	cfg, err := LoadWith(v)
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.ADSMedia.APIKey)
	assert.Equal(t, "MailBridge", cfg.ADSMedia.FromName)
}
