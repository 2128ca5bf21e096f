/*
PURPOSE:
  Turns derived metrics into quality tiers.

REQUIREMENTS:
  User-specified:
  - Latency: < 10% EXCELLENT, < 25% GOOD, else NEEDS IMPROVEMENT.
  - Bandwidth: ratio > 0.8 EXCELLENT, > 0.6 GOOD, else NEEDS IMPROVEMENT.
  - Overall: both averages must meet a tier for it to be awarded.

  Implementation-discovered:
  - Averages are summed in name order so the verdict is reproducible.

ARCHITECTURE INTEGRATION:
  - Called by: Analyze (compare.go), internal/report, internal/chart

ERROR HANDLING:
  - Assess returns ErrInsufficientData when either family is empty.

IMPLEMENTATION RULES:
  - All comparisons are strict.

RELATED FILES:
  - internal/analysis/compare.go
*/

package analysis

import "github.com/daryltucker/vpn-analyzer/internal/model"

// Rating thresholds. All comparisons are strict.
const (
	LatencyExcellentPercent = 10.0
	LatencyGoodPercent      = 25.0
	BandwidthExcellentRatio = 0.8
	BandwidthGoodRatio      = 0.6
)

// ClassifyLatency rates a latency overhead in percent.
func ClassifyLatency(overheadPercent float64) model.Rating {
	switch {
	case overheadPercent < LatencyExcellentPercent:
		return model.RatingExcellent
	case overheadPercent < LatencyGoodPercent:
		return model.RatingGood
	default:
		return model.RatingNeedsImprovement
	}
}

// ClassifyBandwidth rates a VPN/baseline throughput ratio.
func ClassifyBandwidth(ratio float64) model.Rating {
	switch {
	case ratio > BandwidthExcellentRatio:
		return model.RatingExcellent
	case ratio > BandwidthGoodRatio:
		return model.RatingGood
	default:
		return model.RatingNeedsImprovement
	}
}

// OverallRating combines the average latency overhead and the average
// bandwidth ratio. Both must clear a tier for it to be awarded.
func OverallRating(avgLatencyOverheadPercent, avgBandwidthRatio float64) model.Rating {
	switch {
	case avgLatencyOverheadPercent < LatencyExcellentPercent && avgBandwidthRatio > BandwidthExcellentRatio:
		return model.RatingExcellent
	case avgLatencyOverheadPercent < LatencyGoodPercent && avgBandwidthRatio > BandwidthGoodRatio:
		return model.RatingGood
	default:
		return model.RatingNeedsImprovement
	}
}

// Assess averages the overhead and ratio over all comparisons and rates
// the result. It needs at least one comparison of each kind.
func Assess(latency map[string]model.LatencyComparison, bandwidth map[string]model.BandwidthComparison) (model.Assessment, error) {
	if len(latency) == 0 || len(bandwidth) == 0 {
		return model.Assessment{}, ErrInsufficientData
	}

	// Sum in name order so the result does not depend on map iteration.
	var sumOverhead, sumRatio float64
	for _, name := range SortedNames(latency) {
		sumOverhead += latency[name].OverheadPercent
	}
	for _, name := range SortedNames(bandwidth) {
		sumRatio += bandwidth[name].Ratio
	}

	avgOverhead := sumOverhead / float64(len(latency))
	avgRatio := sumRatio / float64(len(bandwidth))

	return model.Assessment{
		AvgLatencyOverheadPercent: avgOverhead,
		AvgBandwidthRatio:         avgRatio,
		Rating:                    OverallRating(avgOverhead, avgRatio),
	}, nil
}
