/*
PURPOSE:
  High-level runner that orchestrates one analysis.
  Load -> Compare -> Charts -> Report -> Exports.

REQUIREMENTS:
  User-specified:
  - Compare the baseline and VPN runs of one test type.
  - Charts (unless disabled) and a text report in the analysis directory.
  - Output files carry a YYYYmmdd_HHMMSS timestamp.

  Implementation-discovered:
  - The clock is a field so tests get stable file names.
  - All outputs of one run share the same timestamp.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/loader, internal/analysis, internal/chart,
    internal/report, internal/output

ERROR HANDLING:
  - Bad result files: logged by the loader, run continues.
  - Chart failures: logged, report is still written.
  - Analysis directory or report failures: returned (fatal).

IMPLEMENTATION RULES:
  - No package-level state: everything hangs off Engine.

USAGE:
  outcome, err := engine.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/config/config.go

MAINTENANCE:
  - Update when adding new output artifacts.
*/

package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/daryltucker/vpn-analyzer/internal/analysis"
	"github.com/daryltucker/vpn-analyzer/internal/chart"
	"github.com/daryltucker/vpn-analyzer/internal/config"
	"github.com/daryltucker/vpn-analyzer/internal/loader"
	"github.com/daryltucker/vpn-analyzer/internal/output"
	"github.com/daryltucker/vpn-analyzer/internal/report"
)

// TimestampFormat is embedded in every output file name.
const TimestampFormat = "20060102_150405"

// Engine runs analyses for one configuration.
type Engine struct {
	Config *config.Config
	Logger *slog.Logger
	Now    func() time.Time
}

// Outcome is what a run produced.
type Outcome struct {
	Result analysis.Result
	// Warnings are the result files the loader could not use.
	Warnings       []error
	LatencyChart   string
	BandwidthChart string
	Report         string
	CSV            string
	JSON           string
}

// New creates a new Engine.
func New(cfg *config.Config) *Engine {
	return &Engine{
		Config: cfg,
		Logger: output.Logger,
		Now:    time.Now,
	}
}

// Run executes a full analysis with the given configuration.
func Run(cfg *config.Config) (*Outcome, error) {
	return New(cfg).Run()
}

// Run loads the results, analyzes them and writes every output.
func (e *Engine) Run() (*Outcome, error) {
	cfg := e.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	outDir := cfg.OutputDir()
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create analysis directory %s: %w", outDir, err)
	}

	now := e.Now()
	stamp := now.Format(TimestampFormat)
	out := &Outcome{}

	// 1. Load
	e.Logger.Info("Loading test data...", "results_dir", cfg.ResultsDir, "test_type", cfg.TestType)
	l := loader.New(cfg.ResultsDir, cfg.TestType)
	l.Ext = cfg.FileExt
	l.Logger = e.Logger
	ds, warnings := l.Load()
	out.Warnings = warnings

	// 2. Analyze
	e.Logger.Info("Analyzing latency and bandwidth performance...")
	res := analysis.Analyze(ds)
	out.Result = res
	for _, s := range res.Skipped {
		e.Logger.Warn("Excluding test from comparison", "kind", s.Kind, "test", s.Test, "reason", s.Reason)
	}
	e.Logger.Info("Comparisons ready", "latency", len(res.Latency), "bandwidth", len(res.Bandwidth))

	// 3. Charts
	if cfg.Charts {
		e.Logger.Info("Generating charts...")
		path := filepath.Join(outDir, fmt.Sprintf("latency_analysis_%s.png", stamp))
		if e.logChart("latency", path, chart.LatencyChart(res.Latency, path, cfg.Chart)) {
			out.LatencyChart = path
		}
		path = filepath.Join(outDir, fmt.Sprintf("bandwidth_analysis_%s.png", stamp))
		if e.logChart("bandwidth", path, chart.BandwidthChart(res.Bandwidth, path, cfg.Chart)) {
			out.BandwidthChart = path
		}
	}

	// 4. Report
	e.Logger.Info("Generating summary report...")
	reportPath := filepath.Join(outDir, fmt.Sprintf("comprehensive_report_%s.txt", stamp))
	if err := writeReport(reportPath, res, now); err != nil {
		return out, fmt.Errorf("failed to write report %s: %w", reportPath, err)
	}
	out.Report = reportPath
	e.Logger.Info("Comprehensive report saved", "path", reportPath)

	// 5. Exports
	rows := output.Rows(res)
	if cfg.Exports(config.ExportCSV) {
		path := filepath.Join(outDir, fmt.Sprintf("comparisons_%s.csv", stamp))
		if err := exportCSV(path, rows); err != nil {
			return out, fmt.Errorf("failed to export CSV %s: %w", path, err)
		}
		out.CSV = path
		e.Logger.Info("CSV export saved", "path", path)
	}
	if cfg.Exports(config.ExportJSON) {
		path := filepath.Join(outDir, fmt.Sprintf("comparisons_%s.jsonl", stamp))
		if err := exportJSON(path, rows); err != nil {
			return out, fmt.Errorf("failed to export JSON %s: %w", path, err)
		}
		out.JSON = path
		e.Logger.Info("JSON export saved", "path", path)
	}

	e.Logger.Info("Analysis complete!")
	return out, nil
}

// logChart logs the outcome of one chart render and reports whether a file was written.
func (e *Engine) logChart(kind, path string, err error) bool {
	switch {
	case err == nil:
		e.Logger.Info("Chart saved", "kind", kind, "path", path)
		return true
	case errors.Is(err, chart.ErrNoData):
		e.Logger.Info("No data available for charting", "kind", kind)
	default:
		e.Logger.Error("Failed to render chart", "kind", kind, "path", path, "error", err)
	}
	return false
}

func writeReport(path string, res analysis.Result, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Write(f, res, now); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exportCSV(path string, rows []output.Row) error {
	w, err := output.NewCSVWriter(path)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}

func exportJSON(path string, rows []output.Row) error {
	w, err := output.NewJSONWriter(path)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
