/*
PURPOSE:
  Bandwidth comparison chart: throughput per test (baseline vs VPN) and
  retained bandwidth in percent, colored by rating.

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

// BandwidthChart writes the bandwidth comparison chart to path: throughput
// per test on the left, VPN/baseline ratio in percent on the right.
func BandwidthChart(comparisons map[string]model.BandwidthComparison, path string, s Style) error {
	if len(comparisons) == 0 {
		return ErrNoData
	}

	names := analysis.SortedNames(comparisons)
	labels := make([]string, len(names))
	baseline := make(plotter.Values, len(names))
	vpn := make(plotter.Values, len(names))
	efficiency := make([]float64, len(names))
	ratings := make([]model.Rating, len(names))
	for i, name := range names {
		c := comparisons[name]
		labels[i] = model.DisplayName(name)
		baseline[i] = c.BaselineMbps
		vpn[i] = c.VPNMbps
		efficiency[i] = c.Ratio * 100
		ratings[i] = analysis.ClassifyBandwidth(c.Ratio)
	}

	width := barWidth(s, len(names))

	left := newPlot("Bandwidth Comparison: Baseline vs VPN", "Test Type", "Bandwidth (Mbps)")
	if err := groupedBars(left, labels, baseline, vpn, width); err != nil {
		return err
	}

	right := newPlot("VPN Bandwidth Efficiency", "Test Type", "VPN/Baseline Ratio (%)")
	err := ratedBars(right, labels, efficiency, ratings, width, []threshold{
		{value: analysis.BandwidthExcellentRatio * 100, label: "Excellent (>80%)", color: colorExcellent},
		{value: analysis.BandwidthGoodRatio * 100, label: "Good (>60%)", color: colorGood},
	})
	if err != nil {
		return err
	}

	return save(path, s, left, right)
}
