/*
PURPOSE:
  Runs the analysis when the root command is invoked.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> Engine.Run -> Summary.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/vpn-analyzer/internal/engine"
)

var (
	noCharts        bool
	exportOverride  []string
	analysisDirFlag string
)

func runAnalysis(cmd *cobra.Command, args []string) error {
	// 1. Load Config
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// 2. Overrides
	if noCharts {
		cfg.Charts = false
	}
	if len(exportOverride) > 0 {
		cfg.Export = exportOverride
	}
	if analysisDirFlag != "" {
		cfg.AnalysisDir = analysisDirFlag
	}

	// 3. Execution
	out, err := engine.Run(cfg)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	rootCmd.Flags().BoolVar(&noCharts, "no-charts", false, "Skip chart generation")
	rootCmd.Flags().StringSliceVar(&exportOverride, "export", nil, "Comma-separated extra outputs: csv, json")
	rootCmd.Flags().StringVar(&analysisDirFlag, "analysis-dir", "", "Output directory (default is <results-dir>/analysis)")
}
