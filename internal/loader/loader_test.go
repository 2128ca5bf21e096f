package loader

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/vpn-analyzer/internal/model"
)

func writeResult(t *testing.T, root string, run Run, file, content string) {
	t.Helper()
	dir := filepath.Join(root, string(run))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
}

func newTestLoader(root, testType string) *Loader {
	l := New(root, testType)
	l.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return l
}

func TestLoader_Load(t *testing.T) {
	t.Run("ReadsBothRuns", func(t *testing.T) {
		root := t.TempDir()
		writeResult(t, root, RunBaseline, "ping_google_latest.txt",
			`{"avg_ping_ms": 20.0, "min_ping_ms": 18.5, "max_ping_ms": 24.1, "packet_loss_percent": 0}`)
		writeResult(t, root, RunBaseline, "iperf_tcp_download_latest.txt",
			`{"bandwidth_mbps": 500, "direction": "download"}`)
		writeResult(t, root, RunVPN, "ping_google_latest.txt",
			`{"avg_ping_ms": 22.0, "min_ping_ms": 20.0, "max_ping_ms": 30.0, "packet_loss_percent": 1}`)
		writeResult(t, root, RunVPN, "iperf_tcp_download_latest.txt",
			"  {\"bandwidth_mbps\": 450}\n")

		ds, warnings := newTestLoader(root, "latest").Load()

		assert.Empty(t, warnings)
		assert.Equal(t, "latest", ds.TestType)
		assert.Equal(t, model.LatencyRecord{AvgMs: 20, MinMs: 18.5, MaxMs: 24.1}, ds.Baseline.Latency["ping_google"])
		assert.Equal(t, model.LatencyRecord{AvgMs: 22, MinMs: 20, MaxMs: 30, PacketLossPercent: 1}, ds.VPN.Latency["ping_google"])
		assert.Equal(t, model.BandwidthRecord{Mbps: 500, Direction: model.DirectionDownload}, ds.Baseline.Bandwidth["iperf_tcp_download"])
		assert.Equal(t, model.BandwidthRecord{Mbps: 450, Direction: model.DirectionUnknown}, ds.VPN.Bandwidth["iperf_tcp_download"])
	})

	t.Run("FiltersByTestType", func(t *testing.T) {
		root := t.TempDir()
		writeResult(t, root, RunBaseline, "ping_a_latest.txt",
			`{"avg_ping_ms": 1, "min_ping_ms": 1, "max_ping_ms": 1, "packet_loss_percent": 0}`)
		writeResult(t, root, RunBaseline, "ping_a_20240101_120000.txt",
			`{"avg_ping_ms": 2, "min_ping_ms": 2, "max_ping_ms": 2, "packet_loss_percent": 0}`)

		ds, _ := newTestLoader(root, "20240101_120000").Load()

		require.Contains(t, ds.Baseline.Latency, "ping_a")
		assert.Equal(t, 2.0, ds.Baseline.Latency["ping_a"].AvgMs)
		assert.Len(t, ds.Baseline.Latency, 1)
	})

	t.Run("SkipsBadFilesAndContinues", func(t *testing.T) {
		root := t.TempDir()
		writeResult(t, root, RunBaseline, "ping_good_latest.txt",
			`{"avg_ping_ms": 10, "min_ping_ms": 9, "max_ping_ms": 11, "packet_loss_percent": 0}`)
		writeResult(t, root, RunBaseline, "ping_broken_latest.txt", `{"avg_ping_ms": `)
		writeResult(t, root, RunBaseline, "ping_partial_latest.txt", `{"avg_ping_ms": 10}`)
		writeResult(t, root, RunBaseline, "iperf_negative_latest.txt", `{"bandwidth_mbps": -3}`)
		writeResult(t, root, RunBaseline, "ping_empty_latest.txt", "\n")
		writeResult(t, root, RunBaseline, "dns_lookup_latest.txt", `not json at all`)
		writeResult(t, root, RunVPN, "ping_good_latest.txt",
			`{"avg_ping_ms": 12, "min_ping_ms": 10, "max_ping_ms": 14, "packet_loss_percent": 0}`)

		ds, warnings := newTestLoader(root, "latest").Load()

		assert.Len(t, ds.Baseline.Latency, 1)
		assert.Contains(t, ds.Baseline.Latency, "ping_good")
		assert.Empty(t, ds.Baseline.Bandwidth)
		assert.Len(t, ds.VPN.Latency, 1)

		require.Len(t, warnings, 3)
		byTest := map[string]error{}
		for _, w := range warnings {
			var recErr *RecordError
			require.ErrorAs(t, w, &recErr)
			assert.Equal(t, RunBaseline, recErr.Run)
			byTest[recErr.Test] = w
		}
		assert.ErrorIs(t, byTest["ping_broken"], ErrMalformed)
		assert.ErrorIs(t, byTest["ping_partial"], ErrMissingField)
		assert.ErrorIs(t, byTest["iperf_negative"], ErrOutOfRange)
	})

	t.Run("MissingRunDirectoryIsAWarning", func(t *testing.T) {
		root := t.TempDir()
		writeResult(t, root, RunBaseline, "ping_a_latest.txt",
			`{"avg_ping_ms": 1, "min_ping_ms": 1, "max_ping_ms": 1, "packet_loss_percent": 0}`)

		ds, warnings := newTestLoader(root, "latest").Load()

		assert.Len(t, ds.Baseline.Latency, 1)
		assert.NotNil(t, ds.VPN.Latency)
		assert.Empty(t, ds.VPN.Latency)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0].Error(), "vpn directory")
	})

	t.Run("EmptyResultsDir", func(t *testing.T) {
		ds, warnings := newTestLoader(t.TempDir(), "latest").Load()

		assert.Empty(t, ds.Baseline.Latency)
		assert.Empty(t, ds.VPN.Bandwidth)
		assert.Len(t, warnings, 2)
	})
}

func TestLoader_Discover(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, RunVPN, "ping_b_latest.txt", "{}")
	writeResult(t, root, RunVPN, "ping_a_latest.txt", "{}")
	writeResult(t, root, RunVPN, "ping_a_latest.json", "{}")
	writeResult(t, root, RunVPN, "_latest.txt", "{}")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "vpn", "sub_latest.txt"), 0o755))

	files, err := newTestLoader(root, "latest").Discover(RunVPN)
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "ping_a", files[0].Name)
	assert.Equal(t, "ping_b", files[1].Name)
	assert.Equal(t, RunVPN, files[0].Run)
	assert.Equal(t, filepath.Join(root, "vpn", "ping_a_latest.txt"), files[0].Path)
}
