/*
PURPOSE:
  Latency comparison chart: average RTT per test (baseline vs VPN) and
  overhead percent per test, colored by rating.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: chart.go helpers, analysis thresholds

ERROR HANDLING:
  - ErrNoData on empty input.
*/

package chart

import (
	"gonum.org/v1/plot/plotter"

	"github.com/daryltucker/vpn-analyzer/internal/analysis"
	"github.com/daryltucker/vpn-analyzer/internal/model"
)

// LatencyChart writes the latency comparison chart to path: average RTT
// per test on the left, overhead percent per test on the right.
func LatencyChart(comparisons map[string]model.LatencyComparison, path string, s Style) error {
	if len(comparisons) == 0 {
		return ErrNoData
	}

	names := analysis.SortedNames(comparisons)
	labels := make([]string, len(names))
	baseline := make(plotter.Values, len(names))
	vpn := make(plotter.Values, len(names))
	overhead := make([]float64, len(names))
	ratings := make([]model.Rating, len(names))
	for i, name := range names {
		c := comparisons[name]
		labels[i] = model.DisplayName(name)
		baseline[i] = c.BaselineAvg
		vpn[i] = c.VPNAvg
		overhead[i] = c.OverheadPercent
		ratings[i] = analysis.ClassifyLatency(c.OverheadPercent)
	}

	width := barWidth(s, len(names))

	left := newPlot("Latency Comparison: Baseline vs VPN", "Test Target", "Latency (ms)")
	if err := groupedBars(left, labels, baseline, vpn, width); err != nil {
		return err
	}

	right := newPlot("VPN Latency Overhead", "Test Target", "Overhead (%)")
	err := ratedBars(right, labels, overhead, ratings, width, []threshold{
		{value: analysis.LatencyExcellentPercent, label: "Excellent (<10%)", color: colorExcellent},
		{value: analysis.LatencyGoodPercent, label: "Good (<25%)", color: colorGood},
	})
	if err != nil {
		return err
	}

	return save(path, s, left, right)
}
