// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"supplier-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Groups maps a data-group name to an include/exclude override.
	// Groups not listed here follow the data source's own settings.
	Groups map[string]bool `json:"groups,omitempty"`

	// Search contains search engine configuration
	Search SearchConfig `json:"search"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// SearchConfig contains search-related settings
type SearchConfig struct {
	// Strategy selects the search strategy
	// (sequential, parallel, depth, adaptive)
	Strategy string `json:"strategy"`

	// Workers is the worker pool size (default = available core count)
	Workers int `json:"workers"`

	// InitialBatchSize is the starting batch size for the adaptive strategy
	InitialBatchSize int `json:"initial_batch_size"`

	// MemoryMarginGB is the memory headroom margin in GiB. When available
	// memory drops below it, the batch size is halved.
	MemoryMarginGB float64 `json:"memory_margin_gb"`

	// DepthBound is the branch depth bound for the depth strategy
	DepthBound int `json:"depth_bound"`

	// TempDir is the temporary-storage location for persisted batches.
	// Empty means a fresh directory under the system temp dir.
	TempDir string `json:"temp_dir"`

	// TimeoutSeconds is the per-run deadline. Zero disables it.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the result sink format (console, csv)
	Format string `json:"format"`

	// Directory is where csv results are written
	Directory string `json:"directory"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Search: SearchConfig{
			Strategy:         "adaptive",
			Workers:          runtime.NumCPU(),
			InitialBatchSize: 1000,
			MemoryMarginGB:   2,
			DepthBound:       0,
			TimeoutSeconds:   0,
		},
		Output: OutputConfig{
			Format:    "console",
			Directory: ".",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. Files with an .hcl extension are
// parsed as HCL, everything else as JSON.
func Load(path string) (*Config, error) {
	if strings.HasSuffix(path, ".hcl") {
		return loadHCL(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
