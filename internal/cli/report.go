package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"ArchiveCatalog/internal/domain"
)

var (
	// successStyle for clean-run indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for recovered warnings
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// errorStyle for missing-file counts
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// dimStyle for muted detail lines
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// reportDiagnostics prints the accumulated warnings of a run. Warnings
// never abort a run, so this is informational only.
func reportDiagnostics(w io.Writer, diags []domain.Diagnostic) {
	if len(diags) == 0 {
		fmt.Fprintln(w, successStyle.Render("catalogue complete, no warnings"))
		return
	}

	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d warnings", len(diags))))
	for _, d := range diags {
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render(string(d.Kind)), d.String())
	}
}
