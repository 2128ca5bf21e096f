/*
PURPOSE:
  Prints the end-of-run summary to stdout.

REQUIREMENTS:
  User-specified:
  - Test counts per family and the overall rating.

  Implementation-discovered:
  - Rating colored by tier; lipgloss drops colors when stdout is not a terminal.

ARCHITECTURE INTEGRATION:
  - Called by: analyze.go
*/

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/daryltucker/vpn-analyzer/internal/engine"
	"github.com/daryltucker/vpn-analyzer/internal/model"
)

var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	colorAmber  = lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FFA500"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#FF4672"}
	colorSubtle = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}

	headingStyle = lipgloss.NewStyle().Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
)

func ratingStyle(r model.Rating) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch r {
	case model.RatingExcellent:
		return s.Foreground(colorGreen)
	case model.RatingGood:
		return s.Foreground(colorAmber)
	default:
		return s.Foreground(colorRed)
	}
}

// printSummary writes the end-of-run overview shown after the log lines.
func printSummary(w io.Writer, out *engine.Outcome) {
	res := out.Result

	fmt.Fprintln(w, headingStyle.Render("Analysis Summary"))
	fmt.Fprintf(w, "Latency Analysis: %d tests analyzed\n", len(res.Latency))
	fmt.Fprintf(w, "Bandwidth Analysis: %d tests analyzed\n", len(res.Bandwidth))
	if n := len(res.Skipped); n > 0 {
		fmt.Fprintf(w, "Excluded: %d tests\n", n)
	}
	if n := len(out.Warnings); n > 0 {
		fmt.Fprintf(w, "Unreadable result files: %d\n", n)
	}

	if res.Assessment != nil {
		fmt.Fprintf(w, "Overall Rating: %s\n", ratingStyle(res.Assessment.Rating).Render(string(res.Assessment.Rating)))
	} else {
		fmt.Fprintln(w, "Overall Rating: insufficient data")
	}

	for _, p := range []string{out.LatencyChart, out.BandwidthChart, out.Report, out.CSV, out.JSON} {
		if p != "" {
			fmt.Fprintln(w, pathStyle.Render(p))
		}
	}
}
