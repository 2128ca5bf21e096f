/*
PURPOSE:
  Renders an analysis result as the plain-text comprehensive report.

REQUIREMENTS:
  User-specified:
  - Per-test latency and bandwidth sections with ratings.
  - Overall assessment, or "Insufficient data for overall assessment".

  Implementation-discovered:
  - Excluded pairs (zero baseline, non-finite metrics) are listed so a
    missing test is explained.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: internal/analysis for ordering and ratings

ERROR HANDLING:
  - Write errors are returned from the final flush.

USAGE:
  err := report.Write(f, result, time.Now())

RELATED FILES:
  - internal/engine/runner.go
*/

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/daryltucker/vpn-analyzer/internal/analysis"
	"github.com/daryltucker/vpn-analyzer/internal/model"
)

const (
	title         = "WireGuard VPN Performance Analysis Report"
	generatedTime = "2006-01-02 15:04:05"
)

// Write renders r to w. Tests are listed in name order so the same
// result always produces the same text apart from the Generated line.
func Write(w io.Writer, r analysis.Result, generated time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, strings.Repeat("=", 50))
	fmt.Fprintf(bw, "Generated: %s\n", generated.Format(generatedTime))
	if r.TestType != "" {
		fmt.Fprintf(bw, "Test Type: %s\n", r.TestType)
	}
	fmt.Fprintln(bw)

	writeLatency(bw, r.Latency)
	writeBandwidth(bw, r.Bandwidth)
	writeSkipped(bw, r.Skipped)
	writeAssessment(bw, r.Assessment)

	return bw.Flush()
}

func heading(w io.Writer, name string) {
	fmt.Fprintln(w, name)
	fmt.Fprintln(w, strings.Repeat("-", 20))
}

// signed always prints the sign, as the overhead lines read "+2.00ms".
func signed(v float64, prec int) string {
	return fmt.Sprintf("%+.*f", prec, v)
}

func writeLatency(w io.Writer, latency map[string]model.LatencyComparison) {
	heading(w, "LATENCY ANALYSIS")
	if len(latency) == 0 {
		fmt.Fprintln(w, "No latency data available")
		return
	}

	for _, name := range analysis.SortedNames(latency) {
		c := latency[name]
		fmt.Fprintf(w, "\n%s:\n", model.DisplayName(name))
		fmt.Fprintf(w, "  Baseline Average: %.2fms\n", c.BaselineAvg)
		fmt.Fprintf(w, "  VPN Average: %.2fms\n", c.VPNAvg)
		fmt.Fprintf(w, "  Overhead: %sms (%s%%)\n", signed(c.OverheadMs, 2), signed(c.OverheadPercent, 1))
		fmt.Fprintf(w, "  Packet Loss: %.1f%% -> %.1f%%\n", c.BaselineLoss, c.VPNLoss)
		fmt.Fprintf(w, "  Rating: %s\n", analysis.ClassifyLatency(c.OverheadPercent))
	}
}

func writeBandwidth(w io.Writer, bandwidth map[string]model.BandwidthComparison) {
	fmt.Fprint(w, "\n\n")
	heading(w, "BANDWIDTH ANALYSIS")
	if len(bandwidth) == 0 {
		fmt.Fprintln(w, "No bandwidth data available")
		return
	}

	for _, name := range analysis.SortedNames(bandwidth) {
		c := bandwidth[name]
		fmt.Fprintf(w, "\n%s:\n", model.DisplayName(name))
		fmt.Fprintf(w, "  Baseline: %.2f Mbps\n", c.BaselineMbps)
		fmt.Fprintf(w, "  VPN: %.2f Mbps\n", c.VPNMbps)
		fmt.Fprintf(w, "  Efficiency: %.1f%%\n", c.Ratio*100)
		fmt.Fprintf(w, "  Direction: %s\n", c.Direction)
		fmt.Fprintf(w, "  Rating: %s\n", analysis.ClassifyBandwidth(c.Ratio))
	}
}

func writeSkipped(w io.Writer, skipped []analysis.Skipped) {
	if len(skipped) == 0 {
		return
	}

	fmt.Fprint(w, "\n\n")
	heading(w, "EXCLUDED TESTS")
	for _, s := range skipped {
		fmt.Fprintf(w, "  %s (%s): %v\n", s.Test, s.Kind, s.Reason)
	}
}

func writeAssessment(w io.Writer, a *model.Assessment) {
	fmt.Fprint(w, "\n\n")
	heading(w, "OVERALL ASSESSMENT")
	if a == nil {
		fmt.Fprintln(w, "Insufficient data for overall assessment")
		return
	}

	fmt.Fprintf(w, "Average Latency Overhead: %.1f%%\n", a.AvgLatencyOverheadPercent)
	fmt.Fprintf(w, "Average Bandwidth Efficiency: %.1f%%\n", a.AvgBandwidthRatio*100)
	fmt.Fprintf(w, "Overall Rating: %s\n", a.Rating)
}
