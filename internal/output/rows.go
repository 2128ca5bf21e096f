/*
PURPOSE:
  Flattens an analysis result into export rows shared by the CSV and JSONL writers.

IMPLEMENTATION RULES:
  - Latency rows first, then bandwidth rows, each in test name order.

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go
*/

package output

import (
	"github.com/daryltucker/vpn-analyzer/internal/analysis"
	"github.com/daryltucker/vpn-analyzer/internal/model"
)

// Row is one comparison flattened for export. Latency and bandwidth share
// the layout: Delta is VPN minus baseline, Percent is the overhead percent
// for latency and the loss percent for bandwidth.
type Row struct {
	Kind      analysis.Kind `json:"kind"`
	Test      string        `json:"test"`
	Unit      string        `json:"unit"`
	Baseline  float64       `json:"baseline"`
	VPN       float64       `json:"vpn"`
	Delta     float64       `json:"delta"`
	Percent   float64       `json:"percent"`
	Ratio     float64       `json:"ratio"`
	Direction string        `json:"direction,omitempty"`
	Rating    model.Rating  `json:"rating"`
}

// Rows flattens a result: latency rows first, then bandwidth, each sorted by test name.
func Rows(res analysis.Result) []Row {
	rows := make([]Row, 0, len(res.Latency)+len(res.Bandwidth))

	for _, name := range analysis.SortedNames(res.Latency) {
		c := res.Latency[name]
		rows = append(rows, Row{
			Kind:     analysis.KindLatency,
			Test:     name,
			Unit:     "ms",
			Baseline: c.BaselineAvg,
			VPN:      c.VPNAvg,
			Delta:    c.OverheadMs,
			Percent:  c.OverheadPercent,
			Ratio:    c.VPNAvg / c.BaselineAvg,
			Rating:   analysis.ClassifyLatency(c.OverheadPercent),
		})
	}

	for _, name := range analysis.SortedNames(res.Bandwidth) {
		c := res.Bandwidth[name]
		rows = append(rows, Row{
			Kind:      analysis.KindBandwidth,
			Test:      name,
			Unit:      "Mbps",
			Baseline:  c.BaselineMbps,
			VPN:       c.VPNMbps,
			Delta:     c.VPNMbps - c.BaselineMbps,
			Percent:   c.LossPercent,
			Ratio:     c.Ratio,
			Direction: string(c.Direction),
			Rating:    analysis.ClassifyBandwidth(c.Ratio),
		})
	}

	return rows
}
