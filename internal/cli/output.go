package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jcleary/toctidy/internal/rewrite"
)

var (
	// successStyle for the summary line
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// dimStyle for per-paragraph log lines
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// pathStyle for the output file path
	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))
)

func printDim(w io.Writer, s string) {
	fmt.Fprintln(w, dimStyle.Render(s))
}

func printReport(w io.Writer, outputPath string, report *rewrite.Report) {
	for _, line := range report.Lines() {
		printDim(w, "  "+line)
	}
	fmt.Fprintln(w, successStyle.Render(report.Summary()))
	fmt.Fprintln(w, "output: "+pathStyle.Render(outputPath))
}
