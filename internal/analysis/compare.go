/*
PURPOSE:
  Joins baseline and VPN records by test name and derives the
  overhead/efficiency metrics for each matched pair.

REQUIREMENTS:
  User-specified:
  - overhead_ms = vpn.avg - baseline.avg
  - overhead_percent = overhead_ms / baseline.avg * 100
  - ratio = vpn.mbps / baseline.mbps, loss_percent = (1 - ratio) * 100
  - Inner join: a test on only one side produces no entry.

  Implementation-discovered:
  - A zero baseline would divide by zero. Such pairs are excluded and
    reported as Skipped, never turned into Inf/NaN.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model records

ERROR HANDLING:
  - Per-pair derivation returns ErrZeroBaseline.
  - Map-level comparison never fails; it collects Skipped entries instead.

IMPLEMENTATION RULES:
  - Pure functions. No logging, no I/O.

USAGE:
  res := analysis.Analyze(dataset)

SELF-HEALING INSTRUCTIONS:
  - If a new test family is added, add a Compare* function and a Result field.

RELATED FILES:
  - internal/analysis/rating.go
  - internal/model/types.go

MAINTENANCE:
  - Keep the formulas in sync with the report wording.
*/

package analysis

import (
	"errors"
	"math"
	"sort"

	"github.com/daryltucker/vpn-analyzer/internal/model"
)

var (
	// ErrZeroBaseline is returned when a baseline value used as a divisor is zero.
	ErrZeroBaseline = errors.New("baseline value is zero")
	// ErrNonFinite is returned when a derived metric overflows to Inf or NaN.
	ErrNonFinite = errors.New("derived metric is not finite")
	// ErrInsufficientData is returned when the overall assessment lacks
	// latency or bandwidth comparisons.
	ErrInsufficientData = errors.New("insufficient data for overall assessment")
)

// Kind tells which family of test a Skipped entry belongs to.
type Kind string

const (
	KindLatency   Kind = "latency"
	KindBandwidth Kind = "bandwidth"
)

// Skipped is a matched pair that was left out of the comparisons.
type Skipped struct {
	Kind   Kind
	Test   string
	Reason error
}

// Result is the full output of one analysis.
type Result struct {
	TestType  string
	Latency   map[string]model.LatencyComparison
	Bandwidth map[string]model.BandwidthComparison
	Skipped   []Skipped
	// Assessment is nil when there is not enough data for a verdict.
	Assessment *model.Assessment
}

// NewLatencyComparison derives the latency metrics of one pair.
func NewLatencyComparison(baseline, vpn model.LatencyRecord) (model.LatencyComparison, error) {
	if baseline.AvgMs == 0 {
		return model.LatencyComparison{}, ErrZeroBaseline
	}

	overhead := vpn.AvgMs - baseline.AvgMs
	percent := overhead / baseline.AvgMs * 100
	if !finite(overhead, percent) {
		return model.LatencyComparison{}, ErrNonFinite
	}
	return model.LatencyComparison{
		BaselineAvg:     baseline.AvgMs,
		VPNAvg:          vpn.AvgMs,
		OverheadMs:      overhead,
		OverheadPercent: percent,
		BaselineMin:     baseline.MinMs,
		BaselineMax:     baseline.MaxMs,
		VPNMin:          vpn.MinMs,
		VPNMax:          vpn.MaxMs,
		BaselineLoss:    baseline.PacketLossPercent,
		VPNLoss:         vpn.PacketLossPercent,
	}, nil
}

// NewBandwidthComparison derives the bandwidth metrics of one pair.
// Direction comes from the baseline record.
func NewBandwidthComparison(baseline, vpn model.BandwidthRecord) (model.BandwidthComparison, error) {
	if baseline.Mbps == 0 {
		return model.BandwidthComparison{}, ErrZeroBaseline
	}

	direction := baseline.Direction
	if direction == "" {
		direction = model.DirectionUnknown
	}

	ratio := vpn.Mbps / baseline.Mbps
	loss := (1 - ratio) * 100
	if !finite(ratio, loss) {
		return model.BandwidthComparison{}, ErrNonFinite
	}
	return model.BandwidthComparison{
		BaselineMbps: baseline.Mbps,
		VPNMbps:      vpn.Mbps,
		Ratio:        ratio,
		LossPercent:  loss,
		Direction:    direction,
	}, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// CompareLatency joins both runs on test name. Pairs with a zero baseline
// or a non-finite metric are returned in the skipped slice.
func CompareLatency(baseline, vpn map[string]model.LatencyRecord) (map[string]model.LatencyComparison, []Skipped) {
	out := make(map[string]model.LatencyComparison)
	var skipped []Skipped

	for _, name := range SortedNames(baseline) {
		v, ok := vpn[name]
		if !ok {
			continue
		}
		cmp, err := NewLatencyComparison(baseline[name], v)
		if err != nil {
			skipped = append(skipped, Skipped{Kind: KindLatency, Test: name, Reason: err})
			continue
		}
		out[name] = cmp
	}

	return out, skipped
}

// CompareBandwidth joins both runs on test name. Pairs with a zero baseline
// are returned in the skipped slice.
func CompareBandwidth(baseline, vpn map[string]model.BandwidthRecord) (map[string]model.BandwidthComparison, []Skipped) {
	out := make(map[string]model.BandwidthComparison)
	var skipped []Skipped

	for _, name := range SortedNames(baseline) {
		v, ok := vpn[name]
		if !ok {
			continue
		}
		cmp, err := NewBandwidthComparison(baseline[name], v)
		if err != nil {
			skipped = append(skipped, Skipped{Kind: KindBandwidth, Test: name, Reason: err})
			continue
		}
		out[name] = cmp
	}

	return out, skipped
}

// Analyze runs every comparison over a dataset and computes the overall
// assessment when possible.
func Analyze(ds model.Dataset) Result {
	latency, skippedLatency := CompareLatency(ds.Baseline.Latency, ds.VPN.Latency)
	bandwidth, skippedBandwidth := CompareBandwidth(ds.Baseline.Bandwidth, ds.VPN.Bandwidth)

	res := Result{
		TestType:  ds.TestType,
		Latency:   latency,
		Bandwidth: bandwidth,
		Skipped:   append(skippedLatency, skippedBandwidth...),
	}

	if a, err := Assess(latency, bandwidth); err == nil {
		res.Assessment = &a
	}

	return res
}

// SortedNames returns the keys of m in ascending order.
func SortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
