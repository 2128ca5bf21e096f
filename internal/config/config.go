/*
PURPOSE:
  Defines the configuration structure and loading logic for the VPN analyzer.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Results directory, test type and whether to draw charts.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Output layout (analysis dir) and chart style are explicit values, not
    process-wide state, so independent analyses do not interfere.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default config file is not an error (defaults apply).

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults mirror the measurement scripts' layout (../results, "latest").

USAGE:
  cfg, err := config.Load("vpn_analyzer.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/daryltucker/vpn-analyzer/internal/chart"
)

// Export formats.
const (
	ExportCSV  = "csv"
	ExportJSON = "json"
)

// Config represents the full configuration for the analyzer.
type Config struct {
	ResultsDir string `yaml:"results_dir"`
	TestType   string `yaml:"test_type"`
	// AnalysisDir defaults to <results_dir>/analysis when empty.
	AnalysisDir string `yaml:"analysis_dir"`
	// FileExt is the extension of per-test result files.
	FileExt string      `yaml:"file_ext"`
	Charts  bool        `yaml:"charts"`
	Chart   chart.Style `yaml:"chart"`
	// Export lists extra machine-readable outputs (csv, json).
	Export []string `yaml:"export"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ResultsDir: "../results",
		TestType:   "latest",
		FileExt:    ".txt",
		Charts:     true,
		Chart:      chart.DefaultStyle(),
	}
}

// OutputDir returns where charts and reports are written.
func (c *Config) OutputDir() string {
	if c.AnalysisDir != "" {
		return c.AnalysisDir
	}
	return filepath.Join(c.ResultsDir, "analysis")
}

// Exports reports whether the given export format is enabled.
func (c *Config) Exports(format string) bool {
	for _, f := range c.Export {
		if strings.EqualFold(strings.TrimSpace(f), format) {
			return true
		}
	}
	return false
}

// Validate checks the fields the engine relies on.
func (c *Config) Validate() error {
	if c.ResultsDir == "" {
		return fmt.Errorf("results_dir is required")
	}
	if c.TestType == "" {
		return fmt.Errorf("test_type is required")
	}
	if c.FileExt == "" {
		return fmt.Errorf("file_ext is required")
	}
	if strings.ContainsAny(c.TestType, `/\`) {
		return fmt.Errorf("test_type %q must not contain path separators", c.TestType)
	}
	if c.Charts && (c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 || c.Chart.DPI <= 0) {
		return fmt.Errorf("chart width_in, height_in and dpi must be positive")
	}
	for _, f := range c.Export {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case ExportCSV, ExportJSON:
		default:
			return fmt.Errorf("unknown export format %q (want csv or json)", f)
		}
	}
	return nil
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		found := false
		for _, name := range []string{"vpn_analyzer.yaml", "vpn_analyzer.yml"} {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
