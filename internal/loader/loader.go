/*
PURPOSE:
  Reads the per-test result files written by the measurement scripts into
  a model.Dataset (baseline run + VPN run) for a single test type.

REQUIREMENTS:
  User-specified:
  - Results live under <results>/baseline and <results>/vpn.
  - One file per test, named <test_name>_<test_type><ext>.
  - ping_* files are latency tests, iperf_* files are bandwidth tests.
  - Bad files are skipped with a warning; the load never aborts for them.

  Implementation-discovered:
  - The test scripts write empty files when a test could not run. These
    are skipped silently.
  - Records are validated against an explicit schema (schema.go) so that
    downstream code can trust every field.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli (list-tests)
  - Produces: internal/model.Dataset

ERROR HANDLING:
  - Per-file problems are returned as *RecordError warnings and logged.
  - A missing run directory is a warning, not an error.

IMPLEMENTATION RULES:
  - No global state: directory, test type and logger are Loader fields.

USAGE:
  l := loader.New("../results", "latest")
  ds, warnings := l.Load()

SELF-HEALING INSTRUCTIONS:
  - If the scripts change their file naming, update Discover().

RELATED FILES:
  - internal/loader/schema.go
  - internal/model/types.go

MAINTENANCE:
  - Update when new test families (prefixes) are added.
*/

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/daryltucker/vpn-analyzer/internal/model"
	"github.com/daryltucker/vpn-analyzer/internal/output"
)

// DefaultExt is the extension the measurement scripts give result files.
const DefaultExt = ".txt"

// Run identifies one side of the comparison.
type Run string

const (
	RunBaseline Run = "baseline"
	RunVPN      Run = "vpn"
)

// RecordError describes a result file that could not be used.
type RecordError struct {
	Run  Run
	Test string
	Path string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s test %q (%s): %v", e.Run, e.Test, e.Path, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// TestFile is a discovered result file.
type TestFile struct {
	Run  Run
	Name string
	Path string
}

// Loader reads result files for one test type.
type Loader struct {
	ResultsDir string
	TestType   string
	Ext        string
	Logger     *slog.Logger
}

// New creates a Loader using the default file extension and logger.
func New(resultsDir, testType string) *Loader {
	return &Loader{
		ResultsDir: resultsDir,
		TestType:   testType,
		Ext:        DefaultExt,
		Logger:     output.Logger,
	}
}

func (l *Loader) runDir(run Run) string {
	return filepath.Join(l.ResultsDir, string(run))
}

// Discover lists the result files of a run matching the loader's test type,
// sorted by test name.
func (l *Loader) Discover(run Run) ([]TestFile, error) {
	dir := l.runDir(run)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	suffix := "_" + l.TestType + l.Ext
	var files []TestFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), suffix)
		if name == "" {
			continue
		}
		files = append(files, TestFile{
			Run:  run,
			Name: name,
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Load reads both runs. Every file that could not be used is returned as
// a warning and logged; the dataset holds everything else.
func (l *Loader) Load() (model.Dataset, []error) {
	ds := model.Dataset{TestType: l.TestType}
	var warnings []error

	var w []error
	ds.Baseline, w = l.loadRun(RunBaseline)
	warnings = append(warnings, w...)
	ds.VPN, w = l.loadRun(RunVPN)
	warnings = append(warnings, w...)

	return ds, warnings
}

func (l *Loader) loadRun(run Run) (model.RunData, []error) {
	data := model.NewRunData()

	files, err := l.Discover(run)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%s directory %s does not exist", run, l.runDir(run))
		} else {
			err = fmt.Errorf("failed to read %s directory: %w", run, err)
		}
		l.Logger.Warn("Skipping run", "run", run, "error", err)
		return data, []error{err}
	}

	var warnings []error
	for _, f := range files {
		if err := l.loadFile(f, data); err != nil {
			recErr := &RecordError{Run: run, Test: f.Name, Path: f.Path, Err: err}
			l.Logger.Warn("Could not load result file", "run", run, "test", f.Name, "path", f.Path, "error", err)
			warnings = append(warnings, recErr)
		}
	}

	l.Logger.Debug("Loaded run", "run", run, "latency", len(data.Latency), "bandwidth", len(data.Bandwidth))
	return data, warnings
}

func (l *Loader) loadFile(f TestFile, into model.RunData) error {
	isLatency := strings.HasPrefix(f.Name, model.LatencyPrefix)
	isBandwidth := strings.HasPrefix(f.Name, model.BandwidthPrefix)
	if !isLatency && !isBandwidth {
		l.Logger.Debug("Ignoring result file of unknown kind", "run", f.Run, "test", f.Name)
		return nil
	}

	content, err := os.ReadFile(f.Path)
	if err != nil {
		return err
	}
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		l.Logger.Debug("Skipping empty result file", "run", f.Run, "test", f.Name)
		return nil
	}

	if isLatency {
		rec, err := ParseLatency(content)
		if err != nil {
			return err
		}
		into.Latency[f.Name] = rec
		return nil
	}

	rec, err := ParseBandwidth(content)
	if err != nil {
		return err
	}
	into.Bandwidth[f.Name] = rec
	return nil
}
