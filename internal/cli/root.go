/*
PURPOSE:
  Defines the root Cobra command for the VPN analyzer CLI.
  Running the root command performs a full analysis.

REQUIREMENTS:
  User-specified:
  - --results-dir, --test-type and --no-charts flags.
  - Support a --config file.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - --results-dir and --test-type are shared with list-tests, so they are
    persistent flags.
  - Logs go to the command's stderr so tests can capture them.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/vpn-analyzer/main.go
  - Calls: analyze (root RunE), list-tests

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Flags only override config values when explicitly set.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init() and applyOverrides().

RELATED FILES:
  - cmd/vpn-analyzer/main.go
  - internal/cli/analyze.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/daryltucker/vpn-analyzer/internal/config"
	"github.com/daryltucker/vpn-analyzer/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile    string
	resultsDir string
	testType   string
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "vpn-analyzer",
		Short: "Compare baseline and VPN network performance results",
		Long: `Analyzes WireGuard VPN performance test results.

Reads the ping and iperf results of a baseline run (<results>/baseline) and a
VPN run (<results>/vpn), computes latency overhead and bandwidth efficiency per
test, rates them, and writes charts and a text report to <results>/analysis.`,
		Example: `  # Analyze the latest results next to this directory
  vpn-analyzer

  # Analyze a timestamped snapshot without charts
  vpn-analyzer --results-dir ./results --test-type 20240101_120000 --no-charts

  # Also export the comparisons for other tools
  vpn-analyzer --export csv,json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetLogger(output.NewLogger(cmd.ErrOrStderr()))
			if verbose {
				output.SetLevel(slog.LevelDebug)
			}
		},
		RunE: runAnalysis,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("results-dir") {
		cfg.ResultsDir = resultsDir
	}
	if flags.Changed("test-type") {
		cfg.TestType = testType
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func init() {
	defaults := config.DefaultConfig()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./vpn_analyzer.yaml)")
	rootCmd.PersistentFlags().StringVar(&resultsDir, "results-dir", defaults.ResultsDir, "Results directory path")
	rootCmd.PersistentFlags().StringVar(&testType, "test-type", defaults.TestType, "Test type to analyze (latest or timestamp)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log per-file details")
}
