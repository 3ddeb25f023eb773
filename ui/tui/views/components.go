package views

import (
	"monreview/internal/monitor"
	"monreview/ui/tui/state"
	"monreview/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Checkbox renders the selection marker for an OK-list row.
func Checkbox(selected bool) string {
	if selected {
		return lipgloss.NewStyle().Foreground(styles.OKColor).Render("[✓]")
	}
	return "[ ]"
}

// Chips renders a collapsed card's metadata chips on one line.
func Chips(fields []monitor.Field) string {
	if len(fields) == 0 {
		return ""
	}
	var parts []string
	for _, f := range fields {
		parts = append(parts, styles.ChipStyle.Render(f.Label+": "+f.Value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// NoticeLine renders the current notification, if any.
func NoticeLine(s state.AppState) string {
	if s.Notice == "" {
		return ""
	}
	if s.NoticeIsErr {
		return styles.NoticeErrStyle.Render(s.Notice)
	}
	return styles.NoticeStyle.Render(s.Notice)
}
