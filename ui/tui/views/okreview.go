package views

import (
	"fmt"

	"monreview/ui/tui/state"
	"monreview/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type OKReviewView struct{}

// Render draws the phase-1 page: the client list with checkboxes, the search
// box and the OK/problem counters.
func (v OKReviewView) Render(s state.AppState, props ViewProps) string {
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		styles.TitleStyle.Render("Monitoreo "+s.Site.DisplayName()),
		fmt.Sprintf(" Cargado: %s", s.LastLoaded.Format("15:04:05")),
	)

	search := lipgloss.NewStyle().PaddingLeft(2).Render("Buscar: " + props.SearchView)

	var rows []string
	for i, it := range props.Visible {
		_, selected := props.Selected[it.ID]

		line := fmt.Sprintf("%s %s", Checkbox(selected), it.Title())
		style := lipgloss.NewStyle().PaddingLeft(2)
		if i == props.ListCursor {
			style = style.Bold(true).Foreground(BrandColor)
			line = "› " + line
		} else {
			line = "  " + line
		}

		zoneID := fmt.Sprintf("okrow_%d", it.ID)
		rows = append(rows, zone.Mark(zoneID, style.Render(line)))
	}
	if len(rows) == 0 {
		rows = append(rows, CopyStyle.Render("Sin clientes que coincidan con la búsqueda."))
	}
	list := lipgloss.JoinVertical(lipgloss.Left, rows...)

	counters := lipgloss.NewStyle().PaddingLeft(2).Render(fmt.Sprintf(
		"%s  %s",
		lipgloss.NewStyle().Foreground(styles.OKColor).Render(fmt.Sprintf("OK: %d", props.Report.OKCount)),
		lipgloss.NewStyle().Foreground(styles.ErrColor).Render(fmt.Sprintf("Con problemas: %d", props.Report.ProblemCount)),
	))

	chart := ""
	if props.ChartView != "" {
		chart = lipgloss.NewStyle().PaddingLeft(2).Render(props.ChartView)
	}

	primary := "[Enter] Guardar monitoreo"
	if props.Report.ProblemCount > 0 {
		primary = "[Enter] Revisar problemas"
	}
	if s.Submitting {
		primary = props.SpinnerView + " Guardando..."
	}
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("#666")).PaddingLeft(2).Render(
		"[Espacio] Marcar OK • [a] Marcar visibles • [n] Limpiar • [/] Buscar • " + primary + " • [b] Menú",
	)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		search,
		list,
		"",
		counters,
		chart,
		NoticeLine(s),
		footer,
	))
}
