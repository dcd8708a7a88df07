package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-engine/internal/binding"
	"github.com/jonathan/resume-engine/internal/cache"
	"github.com/jonathan/resume-engine/internal/config"
	"github.com/jonathan/resume-engine/internal/registry"
	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/types"
)

// loadEngineConfig assembles the effective configuration: file values (when
// a path is given), environment overrides, then defaults for the rest.
func loadEngineConfig(configPath string) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRenderer builds the render pipeline over the configured catalog
func newRenderer(cfg *config.Config) (*rendering.Renderer, error) {
	templateCache := cache.New(
		cache.WithMaxSize(cfg.CacheMaxSize),
		cache.WithTTL(cfg.CacheTTL()),
	)
	reg, err := registry.New(cfg.TemplateDir, templateCache)
	if err != nil {
		return nil, fmt.Errorf("failed to open template registry: %w", err)
	}
	return rendering.New(reg, binding.New()), nil
}

func loadResume(path string) (*types.Resume, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	var resume types.Resume
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	return &resume, nil
}

func loadCustomization(path string) (*types.TemplateCustomization, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read customization file: %w", err)
	}
	var customization types.TemplateCustomization
	if err := json.Unmarshal(content, &customization); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customization JSON: %w", err)
	}
	return &customization, nil
}

// writeJSONFile writes data as indented JSON to path, or to stdout when
// path is empty.
func writeJSONFile(path string, data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	if path == "" {
		fmt.Println(string(encoded))
		return nil
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
