/*
PURPOSE:
  Explicit schema for ping and iperf result records.

REQUIREMENTS:
  Implementation-discovered:
  - Required fields are pointers so "absent" and "0" differ.
  - Values must be non-negative; packet loss is capped at 100.

ERROR HANDLING:
  - ErrMalformed, ErrMissingField, ErrOutOfRange (wrapped with the field name).

RELATED FILES:
  - internal/loader/loader.go
*/

package loader

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/daryltucker/vpn-analyzer/internal/model"
)

var (
	// ErrMalformed means the file is not a single valid JSON object.
	ErrMalformed = errors.New("malformed record")
	// ErrMissingField means a required field is absent or null.
	ErrMissingField = errors.New("missing required field")
	// ErrOutOfRange means a field holds a value outside its domain.
	ErrOutOfRange = errors.New("value out of range")
)

// Pointer fields let us tell an absent field from a zero value.
type latencyJSON struct {
	AvgPingMs         *float64 `json:"avg_ping_ms"`
	MinPingMs         *float64 `json:"min_ping_ms"`
	MaxPingMs         *float64 `json:"max_ping_ms"`
	PacketLossPercent *float64 `json:"packet_loss_percent"`
}

type bandwidthJSON struct {
	BandwidthMbps *float64 `json:"bandwidth_mbps"`
	Direction     *string  `json:"direction"`
}

type field struct {
	name  string
	value *float64
	max   float64 // 0 means unbounded
}

func checkFields(fields []field) error {
	for _, f := range fields {
		if f.value == nil {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
		v := *f.value
		if v < 0 {
			return fmt.Errorf("%w: %s=%v is negative", ErrOutOfRange, f.name, v)
		}
		if f.max > 0 && v > f.max {
			return fmt.Errorf("%w: %s=%v exceeds %v", ErrOutOfRange, f.name, v, f.max)
		}
	}
	return nil
}

// ParseLatency decodes and validates a ping test record.
func ParseLatency(data []byte) (model.LatencyRecord, error) {
	var raw latencyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.LatencyRecord{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	err := checkFields([]field{
		{name: "avg_ping_ms", value: raw.AvgPingMs},
		{name: "min_ping_ms", value: raw.MinPingMs},
		{name: "max_ping_ms", value: raw.MaxPingMs},
		{name: "packet_loss_percent", value: raw.PacketLossPercent, max: 100},
	})
	if err != nil {
		return model.LatencyRecord{}, err
	}

	return model.LatencyRecord{
		AvgMs:             *raw.AvgPingMs,
		MinMs:             *raw.MinPingMs,
		MaxMs:             *raw.MaxPingMs,
		PacketLossPercent: *raw.PacketLossPercent,
	}, nil
}

// ParseBandwidth decodes and validates an iperf test record. The direction
// is optional and normalized to upload, download or unknown.
func ParseBandwidth(data []byte) (model.BandwidthRecord, error) {
	var raw bandwidthJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.BandwidthRecord{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := checkFields([]field{{name: "bandwidth_mbps", value: raw.BandwidthMbps}}); err != nil {
		return model.BandwidthRecord{}, err
	}

	rec := model.BandwidthRecord{
		Mbps:      *raw.BandwidthMbps,
		Direction: model.DirectionUnknown,
	}
	if raw.Direction != nil {
		rec.Direction = model.ParseDirection(*raw.Direction)
	}
	return rec, nil
}
