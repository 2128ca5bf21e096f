package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/vpn-analyzer/internal/analysis"
	"github.com/daryltucker/vpn-analyzer/internal/engine"
	"github.com/daryltucker/vpn-analyzer/internal/model"
)

func writeResult(t *testing.T, root, run, file, content string) {
	t.Helper()
	dir := filepath.Join(root, run)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
}

func execute(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var out, logs bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&logs)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, Execute())
	return out.String(), logs.String()
}

func TestListTests(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, "baseline", "ping_google_latest.txt", "{}")
	writeResult(t, root, "baseline", "iperf_tcp_upload_latest.txt", "{}")
	writeResult(t, root, "baseline", "dns_lookup_latest.txt", "{}")
	writeResult(t, root, "baseline", "ping_google_20240101_120000.txt", "{}")

	out, _ := execute(t, "list-tests", "--results-dir", root, "--test-type", "latest")

	assert.Contains(t, out, "baseline (3):\n"+
		"- dns_lookup [ignored]\n"+
		"- iperf_tcp_upload [bandwidth]\n"+
		"- ping_google [latency]\n")
	assert.Contains(t, out, "vpn: ")
}

func TestAnalyze(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, "baseline", "ping_google_latest.txt",
		`{"avg_ping_ms": 20, "min_ping_ms": 18, "max_ping_ms": 24, "packet_loss_percent": 0}`)
	writeResult(t, root, "vpn", "ping_google_latest.txt",
		`{"avg_ping_ms": 21, "min_ping_ms": 19, "max_ping_ms": 26, "packet_loss_percent": 0}`)
	writeResult(t, root, "baseline", "iperf_tcp_download_latest.txt",
		`{"bandwidth_mbps": 500, "direction": "download"}`)
	writeResult(t, root, "vpn", "iperf_tcp_download_latest.txt",
		`{"bandwidth_mbps": 450, "direction": "download"}`)

	out, logs := execute(t, "--results-dir", root, "--no-charts")

	assert.Contains(t, out, "Latency Analysis: 1 tests analyzed")
	assert.Contains(t, out, "Bandwidth Analysis: 1 tests analyzed")
	assert.Contains(t, out, "Overall Rating: ")
	assert.Contains(t, out, "EXCELLENT")
	assert.NotContains(t, out, "Unreadable")
	assert.Contains(t, logs, "Analysis complete!", "logs follow the command's stderr")
	assert.NotContains(t, out, "Analysis complete!")

	reports, err := filepath.Glob(filepath.Join(root, "analysis", "comprehensive_report_*.txt"))
	require.NoError(t, err)
	assert.Len(t, reports, 1)
	charts, err := filepath.Glob(filepath.Join(root, "analysis", "*.png"))
	require.NoError(t, err)
	assert.Empty(t, charts)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, &engine.Outcome{
		Result: analysis.Result{
			Latency:    map[string]model.LatencyComparison{"ping_a": {}},
			Bandwidth:  map[string]model.BandwidthComparison{"iperf_a": {}, "iperf_b": {}},
			Skipped:    []analysis.Skipped{{Kind: analysis.KindLatency, Test: "ping_zero"}},
			Assessment: &model.Assessment{Rating: model.RatingExcellent},
		},
		Report: "/tmp/report.txt",
	})

	out := buf.String()
	assert.Contains(t, out, "Latency Analysis: 1 tests analyzed")
	assert.Contains(t, out, "Bandwidth Analysis: 2 tests analyzed")
	assert.Contains(t, out, "Excluded: 1 tests")
	assert.Contains(t, out, "Overall Rating: ")
	assert.Contains(t, out, "EXCELLENT")
	assert.Contains(t, out, "/tmp/report.txt")
	assert.NotContains(t, out, "Unreadable")
}

func TestListTests_RejectsEmptyExtension(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "vpn_analyzer.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`file_ext: ""`), 0o644))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"list-tests", "--config", cfgPath, "--results-dir", t.TempDir()})
	t.Cleanup(func() {
		cfgFile = ""
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	assert.ErrorContains(t, Execute(), "file_ext is required")
}
