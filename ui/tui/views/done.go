package views

import (
	"monreview/ui/tui/state"
	"monreview/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type DoneView struct{}

func (v DoneView) Render(s state.AppState, props ViewProps) string {
	msg := s.Notice
	if msg == "" {
		msg = "Monitoreo guardado correctamente."
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(styles.OKColor).Render("✓ "+msg),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("#666")).Render("[Enter] Volver al menú • [Q] Salir"),
	)

	return lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, content)
}
