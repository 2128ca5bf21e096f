package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/vpn-analyzer/internal/model"
)

func TestParseLatency(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		rec, err := ParseLatency([]byte(`{"avg_ping_ms": 12.5, "min_ping_ms": 10, "max_ping_ms": 20, "packet_loss_percent": 100, "extra": "ignored"}`))
		require.NoError(t, err)
		assert.Equal(t, model.LatencyRecord{AvgMs: 12.5, MinMs: 10, MaxMs: 20, PacketLossPercent: 100}, rec)
	})

	t.Run("ZeroIsNotMissing", func(t *testing.T) {
		_, err := ParseLatency([]byte(`{"avg_ping_ms": 0, "min_ping_ms": 0, "max_ping_ms": 0, "packet_loss_percent": 0}`))
		assert.NoError(t, err)
	})

	invalid := map[string]struct {
		input string
		want  error
	}{
		"NotJSON":      {`hello`, ErrMalformed},
		"Array":        {`[1, 2]`, ErrMalformed},
		"StringValue":  {`{"avg_ping_ms": "fast"}`, ErrMalformed},
		"NullField":    {`{"avg_ping_ms": null, "min_ping_ms": 1, "max_ping_ms": 1, "packet_loss_percent": 0}`, ErrMissingField},
		"MissingLoss":  {`{"avg_ping_ms": 1, "min_ping_ms": 1, "max_ping_ms": 1}`, ErrMissingField},
		"NegativeAvg":  {`{"avg_ping_ms": -1, "min_ping_ms": 1, "max_ping_ms": 1, "packet_loss_percent": 0}`, ErrOutOfRange},
		"LossOver100":  {`{"avg_ping_ms": 1, "min_ping_ms": 1, "max_ping_ms": 1, "packet_loss_percent": 100.5}`, ErrOutOfRange},
		"EmptyObject":  {`{}`, ErrMissingField},
		"NullDocument": {`null`, ErrMissingField},
	}
	for name, tc := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLatency([]byte(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseBandwidth(t *testing.T) {
	t.Run("WithDirection", func(t *testing.T) {
		rec, err := ParseBandwidth([]byte(`{"bandwidth_mbps": 941.2, "direction": "UPLOAD"}`))
		require.NoError(t, err)
		assert.Equal(t, model.BandwidthRecord{Mbps: 941.2, Direction: model.DirectionUpload}, rec)
	})

	t.Run("WithoutDirection", func(t *testing.T) {
		rec, err := ParseBandwidth([]byte(`{"bandwidth_mbps": 10}`))
		require.NoError(t, err)
		assert.Equal(t, model.DirectionUnknown, rec.Direction)
	})

	t.Run("MissingThroughput", func(t *testing.T) {
		_, err := ParseBandwidth([]byte(`{"direction": "download"}`))
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseBandwidth([]byte(`{"bandwidth_mbps": }`))
		assert.ErrorIs(t, err, ErrMalformed)
	})
}
