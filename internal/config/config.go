// Package config provides configuration loading and validation for the
// engine's CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults applied where neither the config file nor the environment
// provides a value.
const (
	DefaultTemplateDir      = "templates"
	DefaultPort             = 8080
	DefaultCacheMaxSize     = 100
	DefaultCacheTTLMinutes  = 30
	DefaultOptimizerTimeout = 10 * time.Second
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// overrides.
type Config struct {
	TemplateDir      string `json:"template_dir,omitempty"`      // Directory holding template definition JSON files
	Port             int    `json:"port,omitempty"`              // HTTP server port
	CacheMaxSize     int    `json:"cache_max_size,omitempty"`    // Maximum cached templates before LRU eviction
	CacheTTLMinutes  int    `json:"cache_ttl_minutes,omitempty"` // Cached template lifetime in minutes
	OptimizerTimeout string `json:"optimizer_timeout,omitempty"` // Batch optimization deadline, e.g. "10s"
	Verbose          bool   `json:"verbose,omitempty"`           // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv overlays environment variables onto the config. Set variables win
// over file values; unset ones leave the config untouched.
func (c *Config) FromEnv() {
	if dir := os.Getenv("RESUME_ENGINE_TEMPLATE_DIR"); dir != "" {
		c.TemplateDir = dir
	}
	if port := os.Getenv("RESUME_ENGINE_PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil {
			c.Port = parsed
		}
	}
	if size := os.Getenv("RESUME_ENGINE_CACHE_MAX_SIZE"); size != "" {
		if parsed, err := strconv.Atoi(size); err == nil {
			c.CacheMaxSize = parsed
		}
	}
	if ttl := os.Getenv("RESUME_ENGINE_CACHE_TTL_MINUTES"); ttl != "" {
		if parsed, err := strconv.Atoi(ttl); err == nil {
			c.CacheTTLMinutes = parsed
		}
	}
	if timeout := os.Getenv("RESUME_ENGINE_OPTIMIZER_TIMEOUT"); timeout != "" {
		c.OptimizerTimeout = timeout
	}
	if verbose := os.Getenv("RESUME_ENGINE_VERBOSE"); verbose != "" {
		c.Verbose = verbose == "1" || verbose == "true"
	}
}

// ApplyDefaults fills unset fields with the package defaults
func (c *Config) ApplyDefaults() {
	if c.TemplateDir == "" {
		c.TemplateDir = DefaultTemplateDir
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.CacheMaxSize == 0 {
		c.CacheMaxSize = DefaultCacheMaxSize
	}
	if c.CacheTTLMinutes == 0 {
		c.CacheTTLMinutes = DefaultCacheTTLMinutes
	}
	if c.OptimizerTimeout == "" {
		c.OptimizerTimeout = DefaultOptimizerTimeout.String()
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.CacheMaxSize < 0 {
		return fmt.Errorf("config error: 'cache_max_size' must be non-negative")
	}
	if c.CacheTTLMinutes < 0 {
		return fmt.Errorf("config error: 'cache_ttl_minutes' must be non-negative")
	}
	if c.OptimizerTimeout != "" {
		if _, err := time.ParseDuration(c.OptimizerTimeout); err != nil {
			return fmt.Errorf("config error: 'optimizer_timeout' is not a valid duration: %w", err)
		}
	}
	if c.TemplateDir != "" {
		if _, err := os.Stat(c.TemplateDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: template directory not found: %s", c.TemplateDir)
		}
	}
	return nil
}

// CacheTTL returns the configured template lifetime as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// OptimizerDeadline returns the parsed optimization timeout, falling back to
// the default on an empty or invalid value.
func (c *Config) OptimizerDeadline() time.Duration {
	parsed, err := time.ParseDuration(c.OptimizerTimeout)
	if err != nil || parsed <= 0 {
		return DefaultOptimizerTimeout
	}
	return parsed
}
