/*
PURPOSE:
  Defines the 'list-tests' subcommand.
  Shows which result files an analysis would pick up.

REQUIREMENTS:
  User-specified:
  - List the tests found for a test type.

  Implementation-discovered:
  - Useful validation step before a full run: a typo in --test-type
    otherwise only shows up as an empty report.

ARCHITECTURE INTEGRATION:
  - Calls: internal/loader.Discover()

ERROR HANDLING:
  - A missing run directory is printed and the other run is still listed.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  vpn-analyzer list-tests --results-dir ./results --test-type latest

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/loader/loader.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daryltucker/vpn-analyzer/internal/loader"
	"github.com/daryltucker/vpn-analyzer/internal/model"
)

var listTestsCmd = &cobra.Command{
	Use:   "list-tests",
	Short: "List the result files found for a test type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		l := loader.New(cfg.ResultsDir, cfg.TestType)
		l.Ext = cfg.FileExt

		w := cmd.OutOrStdout()
		for _, run := range []loader.Run{loader.RunBaseline, loader.RunVPN} {
			files, err := l.Discover(run)
			if err != nil {
				fmt.Fprintf(w, "%s: %v\n", run, err)
				continue
			}
			fmt.Fprintf(w, "%s (%d):\n", run, len(files))
			for _, f := range files {
				fmt.Fprintf(w, "- %s [%s]\n", f.Name, testKind(f.Name))
			}
		}
		return nil
	},
}

func testKind(name string) string {
	switch {
	case strings.HasPrefix(name, model.LatencyPrefix):
		return "latency"
	case strings.HasPrefix(name, model.BandwidthPrefix):
		return "bandwidth"
	default:
		return "ignored"
	}
}

func init() {
	rootCmd.AddCommand(listTestsCmd)
}
