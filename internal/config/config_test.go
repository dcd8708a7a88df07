package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"template_dir": "/var/lib/templates",
		"port": 9090,
		"cache_max_size": 50,
		"cache_ttl_minutes": 15,
		"optimizer_timeout": "5s",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/var/lib/templates", cfg.TemplateDir)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 50, cfg.CacheMaxSize)
	assert.Equal(t, 15, cfg.CacheTTLMinutes)
	assert.Equal(t, "5s", cfg.OptimizerTimeout)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestFromEnv_OverridesFileValues(t *testing.T) {
	t.Setenv("RESUME_ENGINE_TEMPLATE_DIR", "/env/templates")
	t.Setenv("RESUME_ENGINE_PORT", "7000")
	t.Setenv("RESUME_ENGINE_CACHE_MAX_SIZE", "25")
	t.Setenv("RESUME_ENGINE_VERBOSE", "true")

	cfg := &Config{TemplateDir: "/file/templates", Port: 8080}
	cfg.FromEnv()

	assert.Equal(t, "/env/templates", cfg.TemplateDir)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 25, cfg.CacheMaxSize)
	assert.True(t, cfg.Verbose)
}

func TestFromEnv_IgnoresUnsetAndInvalid(t *testing.T) {
	t.Setenv("RESUME_ENGINE_PORT", "not-a-number")

	cfg := &Config{TemplateDir: "/file/templates", Port: 8080}
	cfg.FromEnv()

	assert.Equal(t, "/file/templates", cfg.TemplateDir)
	assert.Equal(t, 8080, cfg.Port)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultTemplateDir, cfg.TemplateDir)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultCacheMaxSize, cfg.CacheMaxSize)
	assert.Equal(t, DefaultCacheTTLMinutes, cfg.CacheTTLMinutes)
	assert.Equal(t, "10s", cfg.OptimizerTimeout)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.ErrorContains(t, cfg.Validate(), "'port'")

	cfg = &Config{CacheMaxSize: -1}
	assert.ErrorContains(t, cfg.Validate(), "'cache_max_size'")

	cfg = &Config{OptimizerTimeout: "soon"}
	assert.ErrorContains(t, cfg.Validate(), "'optimizer_timeout'")

	cfg = &Config{TemplateDir: "/nonexistent/templates"}
	assert.ErrorContains(t, cfg.Validate(), "template directory not found")
}

func TestValidate_AcceptsExistingTemplateDir(t *testing.T) {
	cfg := &Config{TemplateDir: t.TempDir(), Port: 8080, OptimizerTimeout: "10s"}
	assert.NoError(t, cfg.Validate())
}

func TestDurationAccessors(t *testing.T) {
	cfg := &Config{CacheTTLMinutes: 15, OptimizerTimeout: "5s"}
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL())
	assert.Equal(t, 5*time.Second, cfg.OptimizerDeadline())

	cfg = &Config{OptimizerTimeout: "garbage"}
	assert.Equal(t, DefaultOptimizerTimeout, cfg.OptimizerDeadline())
}
