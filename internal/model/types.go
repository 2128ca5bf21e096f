/*
PURPOSE:
  Defines the core data structures used throughout the VPN analyzer.
  Records are the raw per-test measurements, comparisons are the derived
  baseline-vs-VPN metrics.

REQUIREMENTS:
  User-specified:
  - Latency: average/min/max round-trip time and packet loss.
  - Bandwidth: throughput and transfer direction.
  - Comparisons keyed by test name (baseline and VPN runs are joined on it).

  Implementation-discovered:
  - JSON tags follow the field names written by the test scripts.
  - Comparisons also need JSON tags for the JSONL export.

ARCHITECTURE INTEGRATION:
  - Used by: internal/loader, internal/analysis, internal/chart,
    internal/report, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Values are snapshots; nothing mutates them after the analysis.

USAGE:
  rec := model.LatencyRecord{AvgMs: 20, MinMs: 18, MaxMs: 25}

SELF-HEALING INSTRUCTIONS:
  - If the test scripts add fields, add them here and to the loader schema.

RELATED FILES:
  - internal/loader/schema.go
  - internal/analysis/compare.go

MAINTENANCE:
  - Update when adding new metrics to compare.
*/

package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Test name prefixes used by the measurement scripts.
const (
	LatencyPrefix   = "ping_"
	BandwidthPrefix = "iperf_"
)

// Direction is the transfer direction of a bandwidth test.
type Direction string

const (
	DirectionUpload   Direction = "upload"
	DirectionDownload Direction = "download"
	DirectionUnknown  Direction = "unknown"
)

// ParseDirection normalizes a direction string. Anything that is not
// upload or download is unknown.
func ParseDirection(s string) Direction {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionUpload:
		return DirectionUpload
	case DirectionDownload:
		return DirectionDownload
	default:
		return DirectionUnknown
	}
}

// Rating is the qualitative tier assigned to a metric.
type Rating string

const (
	RatingExcellent        Rating = "EXCELLENT"
	RatingGood             Rating = "GOOD"
	RatingNeedsImprovement Rating = "NEEDS IMPROVEMENT"
)

// LatencyRecord is the result of one ping test in one run.
type LatencyRecord struct {
	AvgMs             float64 `json:"avg_ping_ms"`
	MinMs             float64 `json:"min_ping_ms"`
	MaxMs             float64 `json:"max_ping_ms"`
	PacketLossPercent float64 `json:"packet_loss_percent"`
}

// BandwidthRecord is the result of one iperf test in one run.
type BandwidthRecord struct {
	Mbps      float64   `json:"bandwidth_mbps"`
	Direction Direction `json:"direction,omitempty"`
}

// RunData holds every record of a single run (baseline or VPN), keyed by test name.
type RunData struct {
	Latency   map[string]LatencyRecord
	Bandwidth map[string]BandwidthRecord
}

// NewRunData returns a RunData with initialized maps.
func NewRunData() RunData {
	return RunData{
		Latency:   make(map[string]LatencyRecord),
		Bandwidth: make(map[string]BandwidthRecord),
	}
}

// Dataset is the loader's output: both runs for one test type.
type Dataset struct {
	TestType string
	Baseline RunData
	VPN      RunData
}

// LatencyComparison is the derived latency metrics for one matched test.
type LatencyComparison struct {
	BaselineAvg     float64 `json:"baseline_avg"`
	VPNAvg          float64 `json:"vpn_avg"`
	OverheadMs      float64 `json:"overhead_ms"`
	OverheadPercent float64 `json:"overhead_percent"`
	BaselineMin     float64 `json:"baseline_min"`
	BaselineMax     float64 `json:"baseline_max"`
	VPNMin          float64 `json:"vpn_min"`
	VPNMax          float64 `json:"vpn_max"`
	BaselineLoss    float64 `json:"baseline_loss"`
	VPNLoss         float64 `json:"vpn_loss"`
}

// BandwidthComparison is the derived bandwidth metrics for one matched test.
type BandwidthComparison struct {
	BaselineMbps float64   `json:"baseline_mbps"`
	VPNMbps      float64   `json:"vpn_mbps"`
	Ratio        float64   `json:"bandwidth_ratio"`
	LossPercent  float64   `json:"bandwidth_loss_percent"`
	Direction    Direction `json:"direction"`
}

// Assessment is the aggregate verdict across all comparisons.
type Assessment struct {
	AvgLatencyOverheadPercent float64 `json:"avg_latency_overhead_percent"`
	AvgBandwidthRatio         float64 `json:"avg_bandwidth_ratio"`
	Rating                    Rating  `json:"rating"`
}

// DisplayName turns a test name like "ping_google_dns" into "Google Dns".
func DisplayName(name string) string {
	name = strings.TrimPrefix(name, LatencyPrefix)
	name = strings.TrimPrefix(name, BandwidthPrefix)
	name = strings.ReplaceAll(name, "_", " ")
	// Casers keep state, so one per call.
	return cases.Title(language.English).String(name)
}
