package console

import (
	"fmt"
	"io"
	"strings"

	"monreview/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Print renders the review report to the writer in a highly compact format.
func Print(w io.Writer, report output.Report) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "MONITOREO "+strings.ToUpper(report.SiteName), colorReset)

	for _, sec := range report.Sections {
		// Section Header
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)

		if len(sec.Items) == 0 {
			fmt.Fprintf(w, "  (sin clientes)\n")
			continue
		}

		for _, it := range sec.Items {
			// Compact Title (max 22 chars)
			title := it.Title
			if len(title) > 22 {
				title = title[:19] + "..."
			}

			marker := markerFor(it)

			// Dots leader
			dots := strings.Repeat("·", 24-len(title))

			status := it.Status
			if status == "" {
				status = "pendiente"
			}
			fmt.Fprintf(w, "  %s%s %s%s\n", title, colorCyan+dots+colorReset, status, marker)

			if it.Note != "" {
				note := it.Note
				if len(note) > 60 {
					note = note[:57] + "..."
				}
				fmt.Fprintf(w, "      %s\n", note)
			}
			if len(it.Missing) > 0 {
				fmt.Fprintf(w, "      %sfalta: %s%s\n", colorYellow, strings.Join(it.Missing, ", "), colorReset)
			}
		}
	}

	// Single-line Summary
	fmt.Fprintf(w, "%s─ Resumen%s: %d OK | %d con problemas\n\n",
		colorCyan, colorReset, report.OKCount, report.ProblemCount)
}

func markerFor(it output.Item) string {
	switch {
	case it.Status == "OK":
		return fmt.Sprintf(" %s✓%s", colorGreen, colorReset)
	case len(it.Missing) > 0:
		return fmt.Sprintf(" %s!%s", colorYellow, colorReset)
	case it.Status == "":
		return fmt.Sprintf(" %s?%s", colorYellow, colorReset)
	default:
		return fmt.Sprintf(" %sX%s", colorRed, colorReset)
	}
}
